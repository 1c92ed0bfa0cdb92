package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrClientNotFound is returned when the client does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrDayOff is returned when the date is not a work day
	ErrDayOff = errors.New("date is not a work day")

	// ErrOutsideWorkingHours is returned when the start time is not on the slot grid
	ErrOutsideWorkingHours = errors.New("start time is outside working hours")

	// ErrDateInPast is returned when the appointment day already passed
	ErrDateInPast = errors.New("date is in the past")

	// ErrSlotAlreadyStarted is returned for today's slots that already began
	ErrSlotAlreadyStarted = errors.New("slot has already started")

	// ErrSlotTaken is returned when the slot overlaps an active appointment
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrInternal is returned on unexpected usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
