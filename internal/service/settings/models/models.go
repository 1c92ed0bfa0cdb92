package models

import (
	"errors"
	"strings"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

var (
	// ErrEmptyName is returned when the profile name is blank
	ErrEmptyName = errors.New("profile name is required")

	// ErrEmptyCity is returned when the profile city is blank
	ErrEmptyCity = errors.New("profile city is required")
)

// ScheduleRequest is the payload for saving the work schedule.
type ScheduleRequest struct {
	StartHour           int   `json:"startHour"`
	EndHour             int   `json:"endHour"`
	SlotDurationMinutes int   `json:"slotDurationMinutes"`
	WorkDays            []int `json:"workDays"` // 0=Sunday .. 6=Saturday
}

// ToDomain converts the payload into the domain model.
func (r *ScheduleRequest) ToDomain() *domain.WorkSchedule {
	workDays := make([]time.Weekday, 0, len(r.WorkDays))
	for _, d := range r.WorkDays {
		workDays = append(workDays, time.Weekday(d))
	}

	return &domain.WorkSchedule{
		StartHour:           r.StartHour,
		EndHour:             r.EndHour,
		SlotDurationMinutes: r.SlotDurationMinutes,
		WorkDays:            workDays,
	}
}

// ScheduleResponse is the work schedule DTO.
type ScheduleResponse struct {
	StartHour           int   `json:"startHour"`
	EndHour             int   `json:"endHour"`
	SlotDurationMinutes int   `json:"slotDurationMinutes"`
	WorkDays            []int `json:"workDays"`
	IsDefault           bool  `json:"isDefault"` // true until the professional saves a schedule
}

// FromDomainSchedule converts the domain model into the DTO.
func FromDomainSchedule(s *domain.WorkSchedule, isDefault bool) *ScheduleResponse {
	workDays := make([]int, 0, len(s.WorkDays))
	for _, d := range s.WorkDays {
		workDays = append(workDays, int(d))
	}

	return &ScheduleResponse{
		StartHour:           s.StartHour,
		EndHour:             s.EndHour,
		SlotDurationMinutes: s.SlotDurationMinutes,
		WorkDays:            workDays,
		IsDefault:           isDefault,
	}
}

// ProfileRequest is the payload for saving the merchant profile.
type ProfileRequest struct {
	Name   string  `json:"name"`
	City   string  `json:"city"`
	PixKey string  `json:"pixKey"`
	Phone  *string `json:"phone,omitempty"`
}

// Validate checks the payload.
func (r *ProfileRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(r.City) == "" {
		return ErrEmptyCity
	}
	return nil
}

// ToDomain converts the payload into the domain model.
func (r *ProfileRequest) ToDomain() *domain.Profile {
	return &domain.Profile{
		Name:   strings.TrimSpace(r.Name),
		City:   strings.TrimSpace(r.City),
		PixKey: strings.TrimSpace(r.PixKey),
		Phone:  r.Phone,
	}
}

// ProfileResponse is the merchant profile DTO.
type ProfileResponse struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	PixKey    string  `json:"pixKey"`
	Phone     *string `json:"phone,omitempty"`
	HasPixKey bool    `json:"hasPixKey"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainProfile converts the domain model into the DTO.
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		Name:      p.Name,
		City:      p.City,
		PixKey:    p.PixKey,
		Phone:     p.Phone,
		HasPixKey: p.HasPixKey(),
		UpdatedAt: p.UpdatedAt,
	}
}
