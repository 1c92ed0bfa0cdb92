package create_appointment

import (
	"fmt"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// validateRequest checks the request shape before touching storage.
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if len(req.Service) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: service name too long", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}
	return nil
}

// validateSlot checks that the start time sits on the schedule's slot grid
// and, for today, has not started yet.
func validateSlot(req *Request, schedule *domain.WorkSchedule, now time.Time) error {
	if isDateInPast(req.Date, now) {
		return ErrDateInPast
	}
	if !schedule.IsWorkDay(req.Date.Weekday()) {
		return ErrDayOff
	}

	onGrid := false
	for _, slot := range generateTimeSlots(schedule) {
		if slot == req.StartTime {
			onGrid = true
			break
		}
	}
	if !onGrid {
		return ErrOutsideWorkingHours
	}

	if isSameDay(req.Date, now) && !req.StartTime.IsAfter(types.NewTimeString(now)) {
		return ErrSlotAlreadyStarted
	}

	return nil
}

// generateTimeSlots builds the slot grid of a working day, with the minute
// counter restarting on each hour boundary (the grid the booking pages show).
func generateTimeSlots(schedule *domain.WorkSchedule) []types.TimeString {
	slots := make([]types.TimeString, 0)

	for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
		for minute := 0; minute < 60; minute += schedule.SlotDurationMinutes {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	return slots
}

// countOverlappingAppointments counts active appointments overlapping the
// slot interval, half-open comparison with the schedule's slot duration.
func countOverlappingAppointments(
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) int {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return 0
	}

	count := 0
	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}

		aptEnd, err := apt.StartTime.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		if apt.StartTime.IsBefore(slotEnd) && aptEnd.IsAfter(startTime) {
			count++
		}
	}

	return count
}

// isSameDay reports whether two instants fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether date falls on a day before today.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
