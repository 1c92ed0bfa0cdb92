package create_appointment

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	createAppointment "github.com/rmarins/MEI-AgendaService/internal/usecase/create_appointment"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID  int64   `json:"clientId"`
	Date      string  `json:"date"`      // "2026-09-14"
	StartTime string  `json:"startTime"` // "10:00"
	Service   string  `json:"service"`
	Price     float64 `json:"price"`
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest parses date and time and builds the usecase request.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:  r.ClientID,
		Date:      date,
		StartTime: startTime,
		Service:   r.Service,
		Price:     r.Price,
		Notes:     r.Notes,
	}, nil
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	ClientID  int64   `json:"clientId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Service   string  `json:"service"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(result *createAppointment.Response) *AppointmentResponse {
	a := result.Appointment

	return &AppointmentResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		Service:   a.Service,
		Price:     a.Price,
		Status:    string(a.Status),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}
