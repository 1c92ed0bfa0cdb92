package cashflow

import "errors"

var (
	// ErrInvalidInput is returned on malformed entries or filters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
