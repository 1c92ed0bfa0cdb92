package create_invoice

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/internal/service/invoices/models"
)

// CreateInvoiceRequest HTTP request model
type CreateInvoiceRequest struct {
	ClientID    int64   `json:"clientId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     *string `json:"dueDate,omitempty"` // "2026-09-30"
}

// ToServiceRequest parses the due date and builds the service request.
func (r *CreateInvoiceRequest) ToServiceRequest() (*models.CreateInvoiceRequest, error) {
	req := &models.CreateInvoiceRequest{
		ClientID:    r.ClientID,
		Description: r.Description,
		Amount:      r.Amount,
	}

	if r.DueDate != nil {
		dueDate, err := time.Parse(domain.DateFormat, *r.DueDate)
		if err != nil {
			return nil, err
		}
		req.DueDate = &dueDate
	}

	return req, nil
}
