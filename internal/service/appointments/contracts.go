package appointments

import (
	"context"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// AppointmentRepository is the appointments storage.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// SlotCache invalidates cached slot grids after writes.
type SlotCache interface {
	Invalidate(date time.Time)
}

// EventPublisher emits appointment lifecycle events.
type EventPublisher interface {
	AppointmentCancelled(ctx context.Context, appointment *domain.Appointment) error
}

// Logger is the structured logger of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
