// Package cache keeps per-day slot grids in an in-process LRU so repeated
// availability lookups for the same date skip the database.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// SlotCache is an LRU of computed free-slot grids keyed by day.
type SlotCache struct {
	entries *lru.Cache[string, []domain.AvailableSlot]
}

// NewSlotCache creates the cache. size is the maximum number of cached days.
func NewSlotCache(size int) (*SlotCache, error) {
	entries, err := lru.New[string, []domain.AvailableSlot](size)
	if err != nil {
		return nil, err
	}
	return &SlotCache{entries: entries}, nil
}

// Get returns the cached grid for the day, if present.
func (c *SlotCache) Get(date time.Time) ([]domain.AvailableSlot, bool) {
	return c.entries.Get(dayKey(date))
}

// Store caches the grid for the day.
func (c *SlotCache) Store(date time.Time, slots []domain.AvailableSlot) {
	c.entries.Add(dayKey(date), slots)
}

// Invalidate drops the cached grid for the day. Called after any write that
// changes the day's occupancy.
func (c *SlotCache) Invalidate(date time.Time) {
	c.entries.Remove(dayKey(date))
}

// Purge drops every cached day. Called when the work schedule changes, since
// that invalidates every grid at once.
func (c *SlotCache) Purge() {
	c.entries.Purge()
}

func dayKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}
