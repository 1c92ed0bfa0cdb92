package pay_invoice

import "context"

type InvoiceService interface {
	MarkPaid(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
