package sms

import "errors"

var ErrEmptyPhone = errors.New("empty recipient phone")
