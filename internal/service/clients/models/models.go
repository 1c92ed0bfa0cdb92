package models

import (
	"strings"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// CreateClientRequest is the payload for registering a client.
type CreateClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// Validate checks the payload against the business limits.
func (r *CreateClientRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > domain.MaxClientNameLength {
		return ErrNameTooLong
	}
	if r.Notes != nil && len(*r.Notes) > domain.MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// ToDomain converts the payload into the domain model.
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		Name:  strings.TrimSpace(r.Name),
		Phone: r.Phone,
		Email: r.Email,
		Notes: r.Notes,
	}
}

// UpdateClientRequest is the payload for editing a client. Nil fields keep
// their current value.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// Validate checks the payload against the business limits.
func (r *UpdateClientRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return ErrEmptyName
		}
		if len(name) > domain.MaxClientNameLength {
			return ErrNameTooLong
		}
	}
	if r.Notes != nil && len(*r.Notes) > domain.MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// ListClientsRequest filters the client listing.
type ListClientsRequest struct {
	Name *string `json:"name,omitempty"` // case-insensitive substring match
}

// ToDomainFilter converts the request into the storage filter.
func (r *ListClientsRequest) ToDomainFilter() domain.ClientsFilter {
	return domain.ClientsFilter{Name: r.Name}
}

// ClientResponse is the client DTO.
type ClientResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse is the client listing DTO.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainClient converts the domain model into the DTO.
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList converts a list of domain models into the DTO.
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}

	for _, client := range clients {
		if c := FromDomainClient(client); c != nil {
			resp.Clients = append(resp.Clients, *c)
		}
	}

	return resp
}
