package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderFireTimeEveOfPickup(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	fireAt, err := reminderFireTime("2026-03-13", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC), fireAt)
}

func TestReminderFireTimeEveAlreadyPassed(t *testing.T) {
	// Booked after 18:00 the evening before the pickup.
	now := time.Date(2026, 3, 12, 19, 30, 0, 0, time.UTC)

	fireAt, err := reminderFireTime("2026-03-13", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Minute), fireAt)
}

func TestReminderFireTimeBadDate(t *testing.T) {
	_, err := reminderFireTime("13/03/2026", time.Now())
	assert.Error(t, err)
}
