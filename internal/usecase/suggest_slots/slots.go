package suggest_slots

import (
	"fmt"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// generateTimeSlots builds the slot grid of a working day. Same per-hour
// stepping as the available-slots usecase: the minute counter restarts at
// zero on every hour boundary.
func generateTimeSlots(schedule *domain.WorkSchedule) []types.TimeString {
	slots := make([]types.TimeString, 0)

	for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
		for minute := 0; minute < 60; minute += schedule.SlotDurationMinutes {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	return slots
}

// isSlotBusy reports whether the slot overlaps any active appointment, using
// the schedule's slot duration for both intervals (half-open comparison).
func isSlotBusy(slot types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	slotEnd, err := slot.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}

		aptEnd, err := apt.StartTime.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		if apt.StartTime.IsBefore(slotEnd) && aptEnd.IsAfter(slot) {
			return true
		}
	}

	return false
}

// groupByDay indexes appointments by their calendar day.
func groupByDay(appointments []*domain.Appointment) map[string][]*domain.Appointment {
	grouped := make(map[string][]*domain.Appointment)
	for _, apt := range appointments {
		key := apt.Date.Format(domain.DateFormat)
		grouped[key] = append(grouped[key], apt)
	}
	return grouped
}

// startOfDay truncates t to midnight in its location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
