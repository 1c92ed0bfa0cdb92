package domain

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled service for a client.
// Appointments carry no duration of their own: the professional's work
// schedule defines a single slot granularity for the whole agenda.
type Appointment struct {
	ID        int64
	ClientID  int64
	Date      time.Time
	StartTime types.TimeString
	Service   string
	Price     float64
	Status    AppointmentStatus
	Notes     *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still blocks its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending
}

// CanBeCompleted returns true if the appointment can be marked completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusPending
}

// AppointmentsFilter defines the filters for listing appointments
type AppointmentsFilter struct {
	ClientID        *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
