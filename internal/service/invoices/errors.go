package invoices

import "errors"

var (
	// ErrInvoiceNotFound is returned when the invoice does not exist
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrClientNotFound is returned when the billed client does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrCannotCharge is returned when the invoice status forbids charging
	ErrCannotCharge = errors.New("invoice cannot be charged")

	// ErrCannotPay is returned when the invoice status forbids payment
	ErrCannotPay = errors.New("invoice cannot be paid")

	// ErrCannotCancel is returned when the invoice status forbids cancellation
	ErrCannotCancel = errors.New("invoice cannot be cancelled")

	// ErrNoPixKey is returned when the profile has no PIX key configured
	ErrNoPixKey = errors.New("profile has no pix key")

	// ErrInvalidInput is returned on malformed invoice data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
