package payment

import "errors"

var (
	ErrMissingEmail          = errors.New("payer email is required")
	ErrMissingUserID         = errors.New("user id is required")
	ErrInvalidReference      = errors.New("invalid transaction reference")
	ErrUpstreamGateway       = errors.New("payment gateway error")
	ErrAuthorizationMismatch = errors.New("transaction belongs to a different user")
	ErrOrderNotFound         = errors.New("order not found")
)
