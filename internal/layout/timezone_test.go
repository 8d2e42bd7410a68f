package layout

import (
	"testing"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebase_PreservesWallClock(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	departure := time.Date(2026, 6, 2, 9, 0, 0, 0, tokyo)
	rebased := Rebase(departure, newYork)

	h, m, _ := rebased.Clock()
	assert.Equal(t, 9, h, "9 AM Tokyo stays in the 9 AM row, not UTC-shifted")
	assert.Equal(t, 0, m)
	assert.Equal(t, newYork, rebased.Location())

	// The positioned offset matches a native 9 AM local time.
	localNine := time.Date(2026, 6, 2, 9, 0, 0, 0, newYork)
	assert.Equal(t, geometry.YOffset(localNine, 60), geometry.YOffset(rebased, 60))
}

func TestRebase_SameLocationNoop(t *testing.T) {
	at := time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, at, Rebase(at, time.UTC))
	assert.Equal(t, at, Rebase(at, nil))
}

func TestRebaseItem_InvertedAfterRebaseSwaps(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	losAngeles, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// Eastbound trans-pacific leg: lands at an earlier wall-clock time
	// than it departs. Rebasing both endpoints into one zone inverts the
	// range, which must come back well formed.
	w := domain.ActivityWrapper{
		ID:   "leg-1",
		Kind: domain.KindTransportation,
		Item: domain.ScheduledItem{
			ID:    "leg-1",
			Kind:  domain.KindTransportation,
			Start: time.Date(2026, 6, 2, 17, 0, 0, 0, tokyo),
			End:   time.Date(2026, 6, 2, 11, 0, 0, 0, losAngeles),
		},
	}

	rebased := RebaseItem(w, losAngeles)

	assert.False(t, rebased.Item.End.Before(rebased.Item.Start))
	// Original wrapper untouched.
	assert.Equal(t, tokyo, w.Item.Start.Location())
}
