package fee

import "errors"

var (
	ErrEmptyCart               = errors.New("cart has no lines")
	ErrMissingCustomerLocation = errors.New("customer location is required")
)
