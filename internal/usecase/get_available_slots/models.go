package get_available_slots

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// Request is the input of the usecase.
type Request struct {
	// Date is the day to compute slots for (time-of-day part ignored)
	Date time.Time
}

// Response carries the free slots of the requested day, in chronological order.
type Response struct {
	Date  time.Time
	Slots []domain.AvailableSlot
}
