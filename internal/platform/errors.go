package platform

import (
	"errors"
)

var (
	// ErrManufacturerNotFound is returned when no manufacturer name matches product brand.
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	// ErrMalformedPrice is returned when price or cost is not a decimal number.
	ErrMalformedPrice = errors.New("malformed price")
)
