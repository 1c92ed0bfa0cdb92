package settings

import "errors"

var (
	// ErrProfileNotConfigured is returned before the first profile save
	ErrProfileNotConfigured = errors.New("profile not configured")

	// ErrInvalidInput is returned on malformed settings data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
