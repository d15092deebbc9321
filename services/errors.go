package services

import "errors"

// Advisory errors surfaced to the client as notices. Every failure is
// same-severity; handlers only map these onto HTTP status codes.
var (
	ErrNotLoggedIn        = errors.New("please log in to continue")
	ErrInvalidCredentials = errors.New("please check your email and password")
	ErrEmptyCart          = errors.New("your cart is empty")
	ErrEmptyAddress       = errors.New("please provide a delivery address")
	ErrOrderNotFound      = errors.New("order not found")
	ErrFoodNotFound       = errors.New("food not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidSpiceLevel  = errors.New("spice level must be between 0 and 5")
)
