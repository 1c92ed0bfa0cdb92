package invoices

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// InvoiceRepository is the invoices storage.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoicesFilter) ([]*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
}

// ClientRepository resolves the billed client.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// ProfileRepository supplies the merchant identity for the PIX payload.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
}

// CashFlowRepository records the income entry of a paid invoice.
type CashFlowRepository interface {
	Create(ctx context.Context, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error)
}

// TransactionManager ties the payment status change and its cash flow entry
// together.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the structured logger of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
