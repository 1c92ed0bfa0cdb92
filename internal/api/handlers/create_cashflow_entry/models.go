package create_cashflow_entry

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow/models"
)

// CreateEntryRequest HTTP request model
type CreateEntryRequest struct {
	Type        string  `json:"type"` // "income" or "expense"
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        *string `json:"date,omitempty"` // "2026-09-14", defaults to today
}

// ToServiceRequest parses the date and builds the service request.
func (r *CreateEntryRequest) ToServiceRequest() (*models.CreateEntryRequest, error) {
	req := &models.CreateEntryRequest{
		Type:        r.Type,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}
