package domain

import "time"

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice represents a charge issued to a client. Issuing an invoice
// produces a PIX payload from the merchant profile; paying it records a
// cash flow income entry.
type Invoice struct {
	ID          int64
	ClientID    int64
	Number      string // sequential display number, e.g. "ORC-2026-0042"
	Description string
	Amount      float64
	Status      InvoiceStatus
	DueDate     *time.Time
	PaidAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeIssued returns true if a PIX charge can be generated for the invoice
func (i *Invoice) CanBeIssued() bool {
	return i.Status == InvoiceStatusDraft || i.Status == InvoiceStatusIssued
}

// CanBePaid returns true if the invoice can be marked as paid
func (i *Invoice) CanBePaid() bool {
	return i.Status == InvoiceStatusIssued || i.Status == InvoiceStatusDraft
}

// CanBeCancelled returns true if the invoice can be cancelled
func (i *Invoice) CanBeCancelled() bool {
	return i.Status == InvoiceStatusDraft || i.Status == InvoiceStatusIssued
}

// InvoicesFilter defines the filters for listing invoices
type InvoicesFilter struct {
	ClientID *int64
	Status   *InvoiceStatus
}
