package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
