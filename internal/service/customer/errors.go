package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrPhoneTaken       = errors.New("phone number already exists")
)
