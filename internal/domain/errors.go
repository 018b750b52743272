package domain

import "errors"

var (
	ErrLineItemNotFound = errors.New("line item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrEmptyCart        = errors.New("cart is empty")
)
