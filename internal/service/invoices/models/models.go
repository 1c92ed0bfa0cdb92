package models

import (
	"errors"
	"strings"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

var (
	// ErrEmptyDescription is returned when the invoice description is blank
	ErrEmptyDescription = errors.New("invoice description is required")

	// ErrInvalidAmount is returned when the amount is not positive
	ErrInvalidAmount = errors.New("invoice amount must be positive")

	// ErrInvalidStatus is returned on an unknown status string
	ErrInvalidStatus = errors.New("invalid invoice status")
)

// CreateInvoiceRequest is the payload for creating an invoice.
type CreateInvoiceRequest struct {
	ClientID    int64      `json:"clientId"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Validate checks the payload.
func (r *CreateInvoiceRequest) Validate() error {
	if r.ClientID <= 0 {
		return errors.New("client id is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ToDomain converts the payload into the domain model.
func (r *CreateInvoiceRequest) ToDomain() *domain.Invoice {
	return &domain.Invoice{
		ClientID:    r.ClientID,
		Description: strings.TrimSpace(r.Description),
		Amount:      r.Amount,
		Status:      domain.InvoiceStatusDraft,
		DueDate:     r.DueDate,
	}
}

// ListInvoicesRequest filters the invoice listing.
type ListInvoicesRequest struct {
	ClientID *int64  `json:"clientId,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ToDomainFilter converts the request into the storage filter.
func (r *ListInvoicesRequest) ToDomainFilter() (domain.InvoicesFilter, error) {
	filter := domain.InvoicesFilter{ClientID: r.ClientID}

	if r.Status != nil {
		status, err := ToDomainInvoiceStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// InvoiceResponse is the invoice DTO.
type InvoiceResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	Number      string  `json:"number"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate,omitempty"` // "2026-09-30"
	PaidAt      *string `json:"paidAt,omitempty"`  // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InvoiceListResponse is the invoice listing DTO.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ChargeResponse carries everything needed to collect an invoice: the raw
// PIX copy-and-paste payload, a QR code image URL and, when the client has a
// phone, a WhatsApp link with the charge message pre-filled.
type ChargeResponse struct {
	InvoiceID    int64   `json:"invoiceId"`
	Number       string  `json:"number"`
	Amount       float64 `json:"amount"`
	PixPayload   string  `json:"pixPayload"`
	QRCodeURL    string  `json:"qrCodeUrl"`
	WhatsAppLink *string `json:"whatsAppLink,omitempty"`
}

// FromDomainInvoice converts the domain model into the DTO.
func FromDomainInvoice(i *domain.Invoice) *InvoiceResponse {
	if i == nil {
		return nil
	}

	resp := &InvoiceResponse{
		ID:          i.ID,
		ClientID:    i.ClientID,
		Number:      i.Number,
		Description: i.Description,
		Amount:      i.Amount,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}

	if i.DueDate != nil {
		dueStr := i.DueDate.Format(domain.DateFormat)
		resp.DueDate = &dueStr
	}
	if i.PaidAt != nil {
		paidStr := i.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidStr
	}

	return resp
}

// FromDomainInvoiceList converts a list of domain models into the DTO.
func FromDomainInvoiceList(invoices []*domain.Invoice) *InvoiceListResponse {
	resp := &InvoiceListResponse{
		Invoices: make([]InvoiceResponse, 0, len(invoices)),
	}

	for _, invoice := range invoices {
		if i := FromDomainInvoice(invoice); i != nil {
			resp.Invoices = append(resp.Invoices, *i)
		}
	}

	return resp
}

// ToDomainInvoiceStatus converts a status string with validation.
func ToDomainInvoiceStatus(status string) (domain.InvoiceStatus, error) {
	s := domain.InvoiceStatus(status)

	switch s {
	case domain.InvoiceStatusDraft, domain.InvoiceStatusIssued,
		domain.InvoiceStatusPaid, domain.InvoiceStatusCancelled:
		return s, nil
	}

	return "", ErrInvalidStatus
}
