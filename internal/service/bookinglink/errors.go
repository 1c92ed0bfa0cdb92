package bookinglink

import "errors"

var (
	// ErrInvalidToken is returned when the token does not decode to a link payload
	ErrInvalidToken = errors.New("invalid booking link token")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
