package domain

// Default work schedule values
const (
	DefaultStartHour           = 8
	DefaultEndHour             = 18
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	// SuggestionHorizonDays caps how far ahead suggested slots are searched
	SuggestionHorizonDays = 14

	MaxNotesLength       = 500
	MaxServiceNameLength = 100
	MaxClientNameLength  = 150
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
