package domain

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/pkg/types"
)

// AvailableSlot represents a free interval on a given day
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// SuggestedSlot is an available slot found by the forward day scan, carrying
// the date and a human-readable pt-BR label ("Hoje", "Amanhã", "Seg, 02/09")
type SuggestedSlot struct {
	Date      time.Time
	StartTime types.TimeString
	Label     string
}

// BusySlot is an occupied interval of the day agenda, projected for display
type BusySlot struct {
	StartTime types.TimeString
	Service   string
	ClientID  int64
}
