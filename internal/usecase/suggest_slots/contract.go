package suggest_slots

import (
	"context"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// AppointmentRepository loads the active appointments of the scan window.
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository loads the professional's work schedule.
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WorkSchedule, error)
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
