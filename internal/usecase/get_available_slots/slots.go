package get_available_slots

import (
	"fmt"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// generateTimeSlots builds every slot start of a working day, from
// startHour:00 (inclusive) to endHour:00 (exclusive), stepping by the slot
// duration. The minute counter restarts at zero on every hour boundary: with
// a 45-minute duration the grid is :00 and :45 of each hour, not a continuous
// 45-minute progression. Published booking links rely on this grid, so the
// stepping must not change.
func generateTimeSlots(schedule *domain.WorkSchedule) []types.TimeString {
	slots := make([]types.TimeString, 0)

	for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
		for minute := 0; minute < 60; minute += schedule.SlotDurationMinutes {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	return slots
}

// isSlotBusy reports whether the interval [slot, slot+duration) overlaps any
// active appointment. Appointments carry no duration of their own, so the
// schedule's slot duration bounds both sides of the comparison. Half-open
// intervals: slots that merely touch an appointment are free.
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

// filterPastSlots drops slots that already started. Only applied when the
// requested date is today; future days keep the full grid.
func filterPastSlots(slots []types.TimeString, now time.Time) []types.TimeString {
	current := types.NewTimeString(now)

	upcoming := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(current) {
			upcoming = append(upcoming, slot)
		}
	}
	return upcoming
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
