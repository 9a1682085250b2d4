package pickupRepo

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"ezero/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stampsOldestFirst(n int) []recordStamp {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	entries := make([]recordStamp, n)
	for i := range entries {
		entries[i] = recordStamp{
			ID:        fmt.Sprintf("BK-%04d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return entries
}

func TestStaleRecordIDsUnderCap(t *testing.T) {
	assert.Nil(t, staleRecordIDs(stampsOldestFirst(utils.PickupHistoryCap), utils.PickupHistoryCap))
	assert.Nil(t, staleRecordIDs(nil, utils.PickupHistoryCap))
}

func TestStaleRecordIDsEvictsOldestBeyondCap(t *testing.T) {
	entries := stampsOldestFirst(utils.PickupHistoryCap + 1)

	stale := staleRecordIDs(entries, utils.PickupHistoryCap)
	require.Len(t, stale, 1)
	assert.Equal(t, "BK-0000", stale[0])
}

func TestStaleRecordIDsKeepsNewestRegardlessOfOrder(t *testing.T) {
	entries := stampsOldestFirst(120)
	rand.New(rand.NewSource(7)).Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	stale := staleRecordIDs(entries, utils.PickupHistoryCap)
	require.Len(t, stale, 70)

	evicted := make(map[string]bool, len(stale))
	for _, id := range stale {
		evicted[id] = true
	}
	// The 70 oldest go, the 50 newest survive.
	for i := 0; i < 70; i++ {
		assert.True(t, evicted[fmt.Sprintf("BK-%04d", i)], "expected BK-%04d to be evicted", i)
	}
	for i := 70; i < 120; i++ {
		assert.False(t, evicted[fmt.Sprintf("BK-%04d", i)], "expected BK-%04d to survive", i)
	}
}
