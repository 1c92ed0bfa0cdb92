package models

import (
	"errors"
	"strings"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

var (
	// ErrEmptyDescription is returned when the entry description is blank
	ErrEmptyDescription = errors.New("entry description is required")

	// ErrInvalidAmount is returned when the amount is not positive
	ErrInvalidAmount = errors.New("entry amount must be positive")

	// ErrInvalidType is returned on an unknown entry type
	ErrInvalidType = errors.New("invalid entry type")
)

// CreateEntryRequest is the payload for recording a cash flow entry.
type CreateEntryRequest struct {
	Type        string    `json:"type"` // "income" or "expense"
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// Validate checks the payload.
func (r *CreateEntryRequest) Validate() error {
	if _, err := ToDomainCashFlowType(r.Type); err != nil {
		return err
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
func (r *CreateEntryRequest) ToDomain() *domain.CashFlowEntry {
	entryType, _ := ToDomainCashFlowType(r.Type)

	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}

	return &domain.CashFlowEntry{
		Type:        entryType,
		Category:    strings.TrimSpace(r.Category),
		Description: strings.TrimSpace(r.Description),
		Amount:      r.Amount,
		Date:        date,
	}
}

// ListEntriesRequest filters the entry listing.
type ListEntriesRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Type      *string    `json:"type,omitempty"`
}

// ToDomainFilter converts the request into the storage filter.
func (r *ListEntriesRequest) ToDomainFilter() (domain.CashFlowFilter, error) {
	filter := domain.CashFlowFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Type != nil {
		entryType, err := ToDomainCashFlowType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &entryType
	}

	return filter, nil
}

// EntryResponse is the cash flow entry DTO.
type EntryResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // "2026-09-14"
	InvoiceID   *int64  `json:"invoiceId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// EntryListResponse is the entry listing DTO.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// SummaryResponse aggregates a period.
type SummaryResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// FromDomainEntry converts the domain model into the DTO.
func FromDomainEntry(e *domain.CashFlowEntry) *EntryResponse {
	if e == nil {
		return nil
	}

	return &EntryResponse{
		ID:          e.ID,
		Type:        string(e.Type),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format(domain.DateFormat),
		InvoiceID:   e.InvoiceID,
		CreatedAt:   e.CreatedAt,
	}
}

// FromDomainEntryList converts a list of domain models into the DTO.
func FromDomainEntryList(entries []*domain.CashFlowEntry) *EntryListResponse {
	resp := &EntryListResponse{
		Entries: make([]EntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		if e := FromDomainEntry(entry); e != nil {
			resp.Entries = append(resp.Entries, *e)
		}
	}

	return resp
}

// FromDomainSummary converts the aggregate into the DTO.
func FromDomainSummary(s *domain.CashFlowSummary) *SummaryResponse {
	return &SummaryResponse{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
	}
}

// ToDomainCashFlowType converts a type string with validation.
func ToDomainCashFlowType(entryType string) (domain.CashFlowType, error) {
	t := domain.CashFlowType(entryType)

	switch t {
	case domain.CashFlowIncome, domain.CashFlowExpense:
		return t, nil
	}

	return "", ErrInvalidType
}
