package cache

import (
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// NoopSlotCache disables caching. Used when the cache is turned off in the
// configuration.
type NoopSlotCache struct{}

// NewNoopSlotCache creates the disabled cache.
func NewNoopSlotCache() *NoopSlotCache {
	return &NoopSlotCache{}
}

// Get always misses.
func (c *NoopSlotCache) Get(time.Time) ([]domain.AvailableSlot, bool) { return nil, false }

// Store does nothing.
func (c *NoopSlotCache) Store(time.Time, []domain.AvailableSlot) {}

// Invalidate does nothing.
func (c *NoopSlotCache) Invalidate(time.Time) {}

// Purge does nothing.
func (c *NoopSlotCache) Purge() {}
