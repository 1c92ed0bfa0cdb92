package suggest_slots

import (
	"github.com/rmarins/MEI-AgendaService/internal/domain"
	suggestSlots "github.com/rmarins/MEI-AgendaService/internal/usecase/suggest_slots"
)

// SuggestedSlotResponse HTTP model of one suggestion
type SuggestedSlotResponse struct {
	Date      string `json:"date"`      // "2026-09-14"
	StartTime string `json:"startTime"` // "09:30"
	Label     string `json:"label"`     // "Hoje", "Amanhã", "Seg, 14 Set"
}

// SuggestedSlotsResponse HTTP response model
type SuggestedSlotsResponse struct {
	Slots []SuggestedSlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(result *suggestSlots.Response) *SuggestedSlotsResponse {
	resp := &SuggestedSlotsResponse{
		Slots: make([]SuggestedSlotResponse, 0, len(result.Slots)),
	}

	for _, slot := range result.Slots {
		resp.Slots = append(resp.Slots, SuggestedSlotResponse{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			Label:     slot.Label,
		})
	}

	return resp
}
