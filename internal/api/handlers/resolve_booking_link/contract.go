package resolve_booking_link

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/service/bookinglink/models"
)

type BookingLinkService interface {
	Resolve(ctx context.Context, token string) (*models.PublicBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
