package settings

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// SettingsRepository is the settings storage.
type SettingsRepository interface {
	GetSchedule(ctx context.Context) (*domain.WorkSchedule, error)
	SaveSchedule(ctx context.Context, schedule *domain.WorkSchedule) error
	GetProfile(ctx context.Context) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
}

// SlotCache is purged when the schedule changes: every cached day grid is
// derived from it.
type SlotCache interface {
	Purge()
}

// Logger is the structured logger of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
