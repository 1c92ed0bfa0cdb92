package get_available_slots

import (
	"context"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// AppointmentRepository is the slice of the appointment storage the usecase
// needs: active appointments of a period.
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository loads the professional's work schedule.
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WorkSchedule, error)
}

// SlotCache caches the computed free slots of a single day.
type SlotCache interface {
	Get(date time.Time) ([]domain.AvailableSlot, bool)
	Store(date time.Time, slots []domain.AvailableSlot)
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
