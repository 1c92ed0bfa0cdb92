package charge_invoice

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/service/invoices/models"
)

type InvoiceService interface {
	GenerateCharge(ctx context.Context, id int64) (*models.ChargeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
