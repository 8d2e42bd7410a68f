package layout

import (
	"testing"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeWrapper(id string, start, end time.Time) domain.ActivityWrapper {
	return domain.ActivityWrapper{
		ID:   id,
		Kind: domain.KindActivity,
		Item: domain.ScheduledItem{ID: id, Kind: domain.KindActivity, Start: start, End: end},
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestResolveOverlaps_NoOverlapFullWidth(t *testing.T) {
	items := []domain.ActivityWrapper{
		makeWrapper("a", at(9, 0), at(10, 0)),
		makeWrapper("b", at(10, 0), at(11, 0)),
		makeWrapper("c", at(14, 0), at(15, 0)),
	}

	p := ResolveOverlaps(items)

	require.Len(t, p, 3)
	for i := range p {
		assert.Equal(t, 0, p[i].Column, "item %s", items[i].ID)
		assert.Equal(t, 1, p[i].ColumnCount, "item %s", items[i].ID)
	}
}

func TestResolveOverlaps_PairSharesCluster(t *testing.T) {
	items := []domain.ActivityWrapper{
		makeWrapper("a", at(9, 0), at(10, 30)),
		makeWrapper("b", at(10, 0), at(11, 0)),
	}

	p := ResolveOverlaps(items)

	assert.Equal(t, Placement{Column: 0, ColumnCount: 2}, p[0])
	assert.Equal(t, Placement{Column: 1, ColumnCount: 2}, p[1])
}

func TestResolveOverlaps_ClusterCountIsUniform(t *testing.T) {
	// Chain a-b-c overlaps transitively; c never touches a, but all three
	// share one cluster and one ColumnCount. d stands alone afterwards.
	items := []domain.ActivityWrapper{
		makeWrapper("a", at(9, 0), at(10, 0)),
		makeWrapper("b", at(9, 30), at(11, 0)),
		makeWrapper("c", at(10, 15), at(11, 30)),
		makeWrapper("d", at(13, 0), at(14, 0)),
	}

	p := ResolveOverlaps(items)

	assert.Equal(t, 2, p[0].ColumnCount)
	assert.Equal(t, 2, p[1].ColumnCount)
	assert.Equal(t, 2, p[2].ColumnCount)
	// c reuses column 0 once a has ended.
	assert.Equal(t, 0, p[0].Column)
	assert.Equal(t, 1, p[1].Column)
	assert.Equal(t, 0, p[2].Column)
	assert.Equal(t, Placement{Column: 0, ColumnCount: 1}, p[3])
}

func TestResolveOverlaps_SameColumnNeverIntersects(t *testing.T) {
	items := []domain.ActivityWrapper{
		makeWrapper("a", at(9, 0), at(12, 0)),
		makeWrapper("b", at(9, 30), at(10, 30)),
		makeWrapper("c", at(10, 0), at(11, 0)),
		makeWrapper("d", at(10, 45), at(12, 30)),
		makeWrapper("e", at(11, 15), at(13, 0)),
	}

	p := ResolveOverlaps(items)

	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if p[i].Column != p[j].Column {
				continue
			}
			a, b := items[i].Item, items[j].Item
			assert.False(t, a.Intersects(b.Start, b.End),
				"items %s and %s share column %d but overlap", a.ID, b.ID, p[i].Column)
		}
	}
}

func TestResolveOverlaps_Deterministic(t *testing.T) {
	items := []domain.ActivityWrapper{
		makeWrapper("a", at(9, 0), at(11, 0)),
		makeWrapper("b", at(9, 0), at(10, 0)), // identical start, later in input
		makeWrapper("c", at(9, 0), at(9, 45)),
	}

	first := ResolveOverlaps(items)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, ResolveOverlaps(items), "layout must be stable across re-renders")
	}
	// Ties broken by input position: a before b before c.
	assert.Equal(t, 0, first[0].Column)
	assert.Equal(t, 1, first[1].Column)
	assert.Equal(t, 2, first[2].Column)
	for i := range first {
		assert.Equal(t, 3, first[i].ColumnCount)
	}
}

func TestResolveOverlaps_ZeroDurationClaimsColumn(t *testing.T) {
	items := []domain.ActivityWrapper{
		makeWrapper("a", at(9, 0), at(9, 0)),
		makeWrapper("b", at(9, 5), at(9, 30)),
	}

	p := ResolveOverlaps(items)

	assert.NotEqual(t, p[0].Column, p[1].Column, "widened zero-duration item must not stack")
	assert.Equal(t, 2, p[0].ColumnCount)
}

func TestResolveOverlaps_Empty(t *testing.T) {
	assert.Empty(t, ResolveOverlaps(nil))
}
