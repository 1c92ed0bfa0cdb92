package clients

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrClientHasAppointments is returned when deletion would orphan appointments
	ErrClientHasAppointments = errors.New("client has appointments")

	// ErrInvalidInput is returned on malformed client data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
