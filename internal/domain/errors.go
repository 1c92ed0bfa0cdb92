package domain

import "errors"

// Work schedule validation errors
var (
	ErrInvalidStartHour    = errors.New("start hour must be between 0 and 23")
	ErrInvalidEndHour      = errors.New("end hour must be between 0 and 23")
	ErrEndBeforeStart      = errors.New("end hour must be after start hour")
	ErrInvalidSlotDuration = errors.New("slot duration is outside the allowed range")
	ErrInvalidWorkDay      = errors.New("work day must be a valid weekday")
)
