package cashflow

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// CashFlowRepository is the cash flow storage.
type CashFlowRepository interface {
	Create(ctx context.Context, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error)
	List(ctx context.Context, filter domain.CashFlowFilter) ([]*domain.CashFlowEntry, error)
	Summarize(ctx context.Context, filter domain.CashFlowFilter) (*domain.CashFlowSummary, error)
}

// Logger is the structured logger of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
