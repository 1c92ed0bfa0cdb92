package create_appointment

import (
	"context"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// AppointmentRepository is the appointment storage used by the usecase.
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// ClientRepository checks that the client being booked exists.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// ScheduleRepository loads the professional's work schedule.
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WorkSchedule, error)
}

// TransactionManager runs the conflict check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotCache invalidates the cached slot grid of the booked day.
type SlotCache interface {
	Invalidate(date time.Time)
}

// EventPublisher emits appointment lifecycle events.
type EventPublisher interface {
	AppointmentCreated(ctx context.Context, appointment *domain.Appointment) error
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
