package domain

import "time"

// WorkSchedule represents the professional's recurring weekly availability:
// working hours, slot granularity and work days. Supplied by the settings
// layer; the slot usecases treat it as an immutable value.
type WorkSchedule struct {
	StartHour           int // 0-23, first bookable hour (inclusive)
	EndHour             int // 0-23, end of the working day (exclusive), > StartHour
	SlotDurationMinutes int
	WorkDays            []time.Weekday
}

// IsWorkDay returns true if the schedule covers the given weekday
func (s *WorkSchedule) IsWorkDay(day time.Weekday) bool {
	for _, d := range s.WorkDays {
		if d == day {
			return true
		}
	}
	return false
}

// Validate checks the schedule against the business limits
func (s *WorkSchedule) Validate() error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return ErrInvalidStartHour
	}
	if s.EndHour < 0 || s.EndHour > 23 {
		return ErrInvalidEndHour
	}
	if s.EndHour <= s.StartHour {
		return ErrEndBeforeStart
	}
	if s.SlotDurationMinutes < MinSlotDurationMinutes || s.SlotDurationMinutes > MaxSlotDurationMinutes {
		return ErrInvalidSlotDuration
	}
	for _, d := range s.WorkDays {
		if d < time.Sunday || d > time.Saturday {
			return ErrInvalidWorkDay
		}
	}
	return nil
}

// DefaultWorkSchedule returns the schedule used before the professional
// configures one: Mon-Fri, 08:00-18:00, 60-minute slots.
func DefaultWorkSchedule() *WorkSchedule {
	return &WorkSchedule{
		StartHour:           DefaultStartHour,
		EndHour:             DefaultEndHour,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		WorkDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}
