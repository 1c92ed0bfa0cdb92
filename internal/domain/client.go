package domain

import "time"

// Client represents a customer of the professional
type Client struct {
	ID    int64
	Name  string
	Phone *string
	Email *string
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientsFilter defines the filters for listing clients
type ClientsFilter struct {
	// Name filters by case-insensitive substring match
	Name *string
}
