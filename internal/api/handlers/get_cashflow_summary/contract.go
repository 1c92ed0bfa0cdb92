package get_cashflow_summary

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow/models"
)

type CashFlowService interface {
	Summary(ctx context.Context, req *models.ListEntriesRequest) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
