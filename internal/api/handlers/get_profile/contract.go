package get_profile

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/service/settings/models"
)

type SettingsService interface {
	GetProfile(ctx context.Context) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
