package design

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDesignID       = errors.New("invalid design id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidPrice          = errors.New("invalid price")

	ErrDesignNotFound = errors.New("design not found")
)
