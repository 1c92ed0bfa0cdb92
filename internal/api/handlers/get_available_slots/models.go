package get_available_slots

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	getAvailableSlots "github.com/rmarins/MEI-AgendaService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model of one free slot
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "09:30"
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string         `json:"date"` // "2026-09-14"
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest parses the date and builds the usecase request.
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(result *getAvailableSlots.Response) *AvailableSlotsResponse {
	resp := &AvailableSlotsResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, 0, len(result.Slots)),
	}

	for _, slot := range result.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		})
	}

	return resp
}
