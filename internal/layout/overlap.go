package layout

import (
	"sort"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/geometry"
)

// Placement is the column assignment for one item within a day.
// Items sharing a Column never overlap in time; ColumnCount is uniform
// across every item of the same overlap cluster, so the whole cluster
// renders at width = available / ColumnCount.
type Placement struct {
	Column      int
	ColumnCount int
}

// ResolveOverlaps partitions the items of one visible day into display
// columns. The returned slice is parallel to the input.
//
// Assignment is deterministic: items are ordered by start time with ties
// broken by input position, then each takes the lowest-numbered column whose
// occupants have all ended. Afterwards items are grouped into connected
// overlap clusters and every member of a cluster gets the cluster's maximum
// column index plus one as its ColumnCount. An item with no overlap keeps
// ColumnCount 1 and renders full width.
func ResolveOverlaps(items []domain.ActivityWrapper) []Placement {
	n := len(items)
	placements := make([]Placement, n)
	if n == 0 {
		return placements
	}

	// Zero-duration items are widened to the snap interval before
	// placement so they still claim a column.
	starts := make([]time.Time, n)
	ends := make([]time.Time, n)
	for i, w := range items {
		starts[i] = w.Item.Start
		ends[i] = w.Item.End
		if !ends[i].After(starts[i]) {
			ends[i] = starts[i].Add(geometry.SnapInterval)
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return starts[order[a]].Before(starts[order[b]])
	})

	// Greedy interval-graph coloring: lowest free column wins.
	var columnEnds []time.Time
	for _, idx := range order {
		assigned := -1
		for col, end := range columnEnds {
			if !end.After(starts[idx]) {
				assigned = col
				break
			}
		}
		if assigned == -1 {
			assigned = len(columnEnds)
			columnEnds = append(columnEnds, time.Time{})
		}
		columnEnds[assigned] = ends[idx]
		placements[idx].Column = assigned
	}

	// Sweep the same order to cut maximal clusters: a cluster ends where
	// the next item starts at or after everything seen so far has ended.
	clusterStart := 0
	clusterMaxEnd := ends[order[0]]
	flush := func(from, to int) {
		maxCol := 0
		for _, idx := range order[from:to] {
			if placements[idx].Column > maxCol {
				maxCol = placements[idx].Column
			}
		}
		for _, idx := range order[from:to] {
			placements[idx].ColumnCount = maxCol + 1
		}
	}
	for pos := 1; pos < n; pos++ {
		idx := order[pos]
		if !starts[idx].Before(clusterMaxEnd) {
			flush(clusterStart, pos)
			clusterStart = pos
			clusterMaxEnd = ends[idx]
			continue
		}
		if ends[idx].After(clusterMaxEnd) {
			clusterMaxEnd = ends[idx]
		}
	}
	flush(clusterStart, n)

	return placements
}
