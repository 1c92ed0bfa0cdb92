package domain

import "time"

// Profile holds the merchant identity of the professional. Name, city and
// PIX key feed the payment payloads embedded in invoice charges.
type Profile struct {
	ID     int64
	Name   string
	City   string
	PixKey string
	Phone  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPixKey returns true if a PIX charge can be generated from the profile
func (p *Profile) HasPixKey() bool {
	return p.PixKey != ""
}
