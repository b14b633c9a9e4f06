package delivery

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidStatus     = errors.New("invalid delivery status")
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrOrderNotFound     = errors.New("order not found")
)
