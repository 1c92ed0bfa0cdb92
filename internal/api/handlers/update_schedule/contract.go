package update_schedule

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/service/settings/models"
)

type SettingsService interface {
	UpdateSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
