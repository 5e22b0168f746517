package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidMaterialCost   = errors.New("invalid material cost")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrUnknownPolicy         = errors.New("unknown transition policy")

	ErrOrderNotFound        = errors.New("order not found")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrTerminalStatus       = errors.New("order is already in terminal status")
)
