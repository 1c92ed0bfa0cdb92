package create_cashflow_entry

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow/models"
)

type CashFlowService interface {
	CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
