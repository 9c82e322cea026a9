package catalog

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrPlateTaken      = errors.New("license plate already registered")
)
