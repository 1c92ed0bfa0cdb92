package models

import (
	"errors"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status string
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// ListAppointmentsRequest filters the appointment listing.
type ListAppointmentsRequest struct {
	ClientID        *int64     `json:"clientId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the storage filter.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		ClientID:        r.ClientID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// AppointmentResponse is the appointment DTO.
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	ClientID  int64   `json:"clientId"`
	Date      string  `json:"date"`      // "2026-09-14"
	StartTime string  `json:"startTime"` // "10:00"
	Service   string  `json:"service"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse is the appointment listing DTO.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// BusySlotResponse is one occupied interval of the day agenda.
type BusySlotResponse struct {
	StartTime string `json:"startTime"`
	Service   string `json:"service"`
	ClientID  int64  `json:"clientId"`
}

// BusySlotsResponse is the day agenda DTO.
type BusySlotsResponse struct {
	Date  string             `json:"date"`
	Slots []BusySlotResponse `json:"slots"`
}

// FromDomainAppointment converts the domain model into the DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		Service:   a.Service,
		Price:     a.Price,
		Status:    string(a.Status),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList converts a list of domain models into the DTO.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if a := FromDomainAppointment(appointment); a != nil {
			resp.Appointments = append(resp.Appointments, *a)
		}
	}

	return resp
}

// ToDomainAppointmentStatus converts a status string with validation.
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusCompleted, domain.StatusCancelled:
		return s, nil
	}

	return "", ErrInvalidStatus
}
