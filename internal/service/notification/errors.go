package notification

import "errors"

var (
	ErrInvalidEvent    = errors.New("invalid order status event")
	ErrUndefinedStatus = errors.New("no notification for order status")
)
