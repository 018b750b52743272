package domain

// OrderDateLayout is how order and delivery dates are rendered.
const OrderDateLayout = "02 Jan 2006"

// OrderSummary is a frozen record of a completed checkout. Items is a
// textual snapshot of the cart lines ("<name> x <quantity>"), not live
// references; the summary never changes after creation.
type OrderSummary struct {
	ID         string
	Date       string
	DeliveryBy string
	Total      Money
	Items      []string
}
