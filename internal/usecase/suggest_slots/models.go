package suggest_slots

import "github.com/rmarins/MEI-AgendaService/internal/domain"

// Request is the input of the usecase.
type Request struct {
	// Count is the maximum number of suggestions to return
	Count int
}

// Response carries the soonest free slots found within the scan horizon.
// May hold fewer than Count entries when the horizon runs out.
type Response struct {
	Slots []domain.SuggestedSlot
}
