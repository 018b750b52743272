package domain

// LineItem is one product entry in a cart together with its requested
// quantity. Quantity is always >= 1 while the item is in the cart.
type LineItem struct {
	Product  Product
	Quantity int
}

// Cart is an ordered sequence of line items keyed by product name.
// Insertion order is preserved and a product appears at most once:
// adding an already-present product increments its quantity instead.
//
// A Cart is owned by a single session and is not safe for concurrent
// use on its own; callers serializing access per session is enough.
type Cart struct {
	OwnerID string

	items []LineItem
}

func NewCart(ownerID string) *Cart {
	return &Cart{OwnerID: ownerID}
}

// AddOrIncrement adds the product with quantity 1, or increments the
// existing line item for it. Returns the resulting quantity.
func (c *Cart) AddOrIncrement(p Product) int {
	if i := c.indexOf(p.Name); i >= 0 {
		c.items[i].Quantity++
		return c.items[i].Quantity
	}

	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
	return 1
}

// Increment raises the quantity of the named line item by one.
func (c *Cart) Increment(productName string) (int, error) {
	i := c.indexOf(productName)
	if i < 0 {
		return 0, ErrLineItemNotFound
	}

	c.items[i].Quantity++
	return c.items[i].Quantity, nil
}

// Decrement lowers the quantity of the named line item by one. Taking
// the last unit removes the line item entirely, so the cart never holds
// a zero-quantity line; the returned quantity is 0 in that case.
func (c *Cart) Decrement(productName string) (int, error) {
	i := c.indexOf(productName)
	if i < 0 {
		return 0, ErrLineItemNotFound
	}

	if c.items[i].Quantity > 1 {
		c.items[i].Quantity--
		return c.items[i].Quantity, nil
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	return 0, nil
}

// SetQuantity sets the quantity of the named line item directly.
// Quantities below 1 are rejected with ErrInvalidQuantity rather than
// silently clamped or treated as removal.
func (c *Cart) SetQuantity(productName string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	i := c.indexOf(productName)
	if i < 0 {
		return ErrLineItemNotFound
	}

	c.items[i].Quantity = quantity
	return nil
}

// Remove deletes the named line item regardless of quantity. Removing
// an absent product is a no-op, reported by the return value.
func (c *Cart) Remove(productName string) bool {
	i := c.indexOf(productName)
	if i < 0 {
		return false
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Clear removes all line items.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Snapshot returns a copy of the current line items that does not alias
// the cart's internal state. Mutating the cart afterwards leaves the
// returned slice unchanged, which keeps built order summaries frozen.
func (c *Cart) Snapshot() []LineItem {
	return append([]LineItem(nil), c.items...)
}

func (c *Cart) indexOf(productName string) int {
	for i, item := range c.items {
		if item.Product.Name == productName {
			return i
		}
	}

	return -1
}
