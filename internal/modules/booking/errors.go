package booking

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidDateRange   = errors.New("end date is before start date")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrVehicleUnavailable = errors.New("vehicle is under maintenance")
	ErrScheduleConflict   = errors.New("dates overlap an active booking")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
