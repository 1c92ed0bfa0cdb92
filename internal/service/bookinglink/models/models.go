package models

// LinkResponse carries the shareable booking link token.
type LinkResponse struct {
	Token string `json:"token"`
	Path  string `json:"path"` // "/public/booking/{token}"
}

// PublicSchedule is the schedule shape embedded in the token and returned to
// the public page.
type PublicSchedule struct {
	StartHour           int   `json:"startHour"`
	EndHour             int   `json:"endHour"`
	SlotDurationMinutes int   `json:"slotDurationMinutes"`
	WorkDays            []int `json:"workDays"` // 0=Sunday .. 6=Saturday
}

// PublicDay is one upcoming work day with its full slot grid. The public
// page shows the grid only; actual availability is confirmed on booking.
type PublicDay struct {
	Date  string   `json:"date"` // "2026-09-14"
	Slots []string `json:"slots"`
}

// PublicBookingResponse is what the public booking page renders.
type PublicBookingResponse struct {
	ProfessionalName string         `json:"professionalName"`
	Schedule         PublicSchedule `json:"schedule"`
	Days             []PublicDay    `json:"days"`
}
