package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel is returned when the appointment is not cancellable
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotComplete is returned when the appointment is not pending
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrInvalidInput is returned on malformed filters or parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
