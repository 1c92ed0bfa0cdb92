package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

func TestSlotCache_StoreAndGet(t *testing.T) {
	c, err := NewSlotCache(8)
	require.NoError(t, err)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	slots := []domain.AvailableSlot{
		{StartTime: "09:00", DurationMinutes: 30},
		{StartTime: "09:30", DurationMinutes: 30},
	}

	_, ok := c.Get(date)
	assert.False(t, ok)

	c.Store(date, slots)

	got, ok := c.Get(date)
	require.True(t, ok)
	assert.Equal(t, slots, got)
}

func TestSlotCache_KeyIgnoresTimeOfDay(t *testing.T) {
	c, err := NewSlotCache(8)
	require.NoError(t, err)

	morning := time.Date(2026, 9, 14, 8, 15, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 14, 21, 40, 0, 0, time.UTC)

	c.Store(morning, []domain.AvailableSlot{{StartTime: "10:00", DurationMinutes: 60}})

	_, ok := c.Get(evening)
	assert.True(t, ok)
}

func TestSlotCache_Invalidate(t *testing.T) {
	c, err := NewSlotCache(8)
	require.NoError(t, err)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	c.Store(date, []domain.AvailableSlot{{StartTime: "09:00", DurationMinutes: 30}})

	c.Invalidate(date)

	_, ok := c.Get(date)
	assert.False(t, ok)
}

func TestSlotCache_PurgeDropsAllDays(t *testing.T) {
	c, err := NewSlotCache(8)
	require.NoError(t, err)

	first := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	c.Store(first, []domain.AvailableSlot{{StartTime: "09:00", DurationMinutes: 30}})
	c.Store(second, []domain.AvailableSlot{{StartTime: "10:00", DurationMinutes: 30}})

	c.Purge()

	_, ok := c.Get(first)
	assert.False(t, ok)
	_, ok = c.Get(second)
	assert.False(t, ok)
}
