package service

import "errors"

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateSale     = errors.New("duplicate sale")
	ErrInvalidSale       = errors.New("inventory id and a positive quantity sold are required")
	ErrVendorNotFound    = errors.New("vendor not found")
)
