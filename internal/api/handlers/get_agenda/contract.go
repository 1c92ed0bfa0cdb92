package get_agenda

import (
	"context"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/service/appointments/models"
)

type AppointmentService interface {
	BusySlots(ctx context.Context, date time.Time) (*models.BusySlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
