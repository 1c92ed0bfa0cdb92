package bookinglink

import (
	"context"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// SettingsRepository supplies the schedule and profile embedded in the link.
type SettingsRepository interface {
	GetSchedule(ctx context.Context) (*domain.WorkSchedule, error)
	GetProfile(ctx context.Context) (*domain.Profile, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the structured logger of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
