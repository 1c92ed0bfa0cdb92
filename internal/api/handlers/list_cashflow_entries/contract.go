package list_cashflow_entries

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow/models"
)

type CashFlowService interface {
	List(ctx context.Context, req *models.ListEntriesRequest) (*models.EntryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
