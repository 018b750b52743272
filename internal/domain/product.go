package domain

type Category string

const (
	// CategoryAll is a filter-only pseudo-category; no product carries it.
	CategoryAll      Category = "All"
	CategorySkincare Category = "Skincare"
	CategoryMakeup   Category = "Makeup"
	CategoryClothing Category = "Clothing"
)

// Product is an immutable catalog record. Name is the uniqueness key
// within a catalog.
type Product struct {
	Name        string
	Category    Category
	Description string
	Price       Money
}
