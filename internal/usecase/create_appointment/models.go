package create_appointment

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// Request is the input of the usecase.
type Request struct {
	ClientID  int64
	Date      time.Time
	StartTime types.TimeString
	Service   string
	Price     float64
	Notes     *string
}

// Response carries the stored appointment.
type Response struct {
	Appointment *domain.Appointment
}
