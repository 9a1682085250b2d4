package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupTimeSlots(t *testing.T) {
	slots := PickupTimeSlots()
	require.Len(t, slots, 5)
	assert.Equal(t, "slot-9", slots[0].ID)
	assert.Equal(t, "09:00 - 11:00", slots[0].Label)
	assert.Equal(t, "slot-17", slots[4].ID)
	assert.Equal(t, 19, slots[4].End)
}

func TestCatalogLookups(t *testing.T) {
	cat, ok := CategoryByID("phones")
	require.True(t, ok)
	assert.Equal(t, 300.0, cat.Rate)
	assert.Equal(t, 50, cat.Points)

	_, ok = CategoryByID("nonsense")
	assert.False(t, ok)

	svc, ok := ServiceByID("data-destruction")
	require.True(t, ok)
	assert.Equal(t, 500.0, svc.Fee)

	_, ok = SlotByID("slot-8")
	assert.False(t, ok)
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{
		StatusPending, StatusScheduled, StatusConfirmed,
		StatusInTransit, StatusCompleted, StatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BookingStatus("shipped").Valid())
}
