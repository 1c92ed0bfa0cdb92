package events

import (
	"context"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// NoopPublisher drops events. Used when event publishing is turned off in
// the configuration.
type NoopPublisher struct{}

// NewNoopPublisher creates the disabled publisher.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// AppointmentCreated does nothing.
func (p *NoopPublisher) AppointmentCreated(context.Context, *domain.Appointment) error { return nil }

// AppointmentCancelled does nothing.
func (p *NoopPublisher) AppointmentCancelled(context.Context, *domain.Appointment) error { return nil }

// Close does nothing.
func (p *NoopPublisher) Close() error { return nil }
