// Package catalog holds the static product list the shop sells. The
// catalog is loaded once, read-only afterwards, and product names are
// unique within it.
package catalog

import (
	"github.com/nikolayk812/shopnest/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Default returns the demo catalog in display order.
func Default() []domain.Product {
	return []domain.Product{
		{Name: "Red Matte Lipstick", Category: domain.CategoryMakeup, Description: "Flat 30% off - Bestseller", Price: gbp("7.99")},
		{Name: "Organic Skincare Combo", Category: domain.CategorySkincare, Description: "Buy 1 Get 1 Free", Price: gbp("12.50")},
		{Name: "Hydrating Face Cream", Category: domain.CategorySkincare, Description: "Best for dry skin", Price: gbp("9.75")},
		{Name: "Floral Summer Dress", Category: domain.CategoryClothing, Description: "Trending now", Price: gbp("24.99")},
		{Name: "Eyeliner Pen", Category: domain.CategoryMakeup, Description: "Smudge-proof & long-lasting", Price: gbp("5.49")},
		{Name: "Denim Jacket", Category: domain.CategoryClothing, Description: "Casual & stylish", Price: gbp("32.99")},
		{Name: "Body Lotion", Category: domain.CategorySkincare, Description: "Deep hydration formula", Price: gbp("6.25")},
	}
}

// Categories lists the selectable category filters, "All" first.
func Categories() []domain.Category {
	return []domain.Category{
		domain.CategoryAll,
		domain.CategorySkincare,
		domain.CategoryMakeup,
		domain.CategoryClothing,
	}
}

// Filter returns the products matching the category, preserving order.
// CategoryAll matches everything.
func Filter(products []domain.Product, category domain.Category) []domain.Product {
	if category == "" || category == domain.CategoryAll {
		return products
	}

	var filtered []domain.Product
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// Find looks a product up by its name.
func Find(products []domain.Product, name string) (domain.Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}

	return domain.Product{}, false
}

func gbp(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.GBP)
}
