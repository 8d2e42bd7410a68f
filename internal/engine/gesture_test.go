package engine

import (
	"testing"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gestureDay = time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

func TestGesture_DragCommitFlow(t *testing.T) {
	vm, sink := newTestVM(t)

	// Press at the 9:00 row, drag down to 10:30.
	vm.PointerDown(gestureDay, Point{X: 10, Y: 9 * 60})
	assert.Equal(t, PhaseDragging, vm.Phase())

	vm.PointerMove(Point{X: 10, Y: 10*60 + 30})
	draft := vm.Draft()
	require.NotNil(t, draft)
	require.NotNil(t, draft.End)
	assert.True(t, draft.Start.Equal(time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)))
	assert.True(t, draft.End.Equal(time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC)))

	vm.PointerUp(Point{X: 10, Y: 10*60 + 30})
	assert.Equal(t, PhasePendingType, vm.Phase())
	assert.Empty(t, sink.creations, "no intent before a kind is chosen")

	vm.ChooseKind(domain.KindActivity)
	assert.Equal(t, PhaseIdle, vm.Phase())
	require.Len(t, sink.creations, 1)
	got := sink.creations[0]
	assert.Equal(t, domain.KindActivity, got.Kind)
	assert.True(t, got.Start.Equal(time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)))
	assert.True(t, got.End.Equal(time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC)))
	assert.Nil(t, vm.Draft(), "committed draft is discarded")
}

func TestGesture_CancelLeavesNoTrace(t *testing.T) {
	vm, sink := newTestVM(t)

	vm.PointerDown(gestureDay, Point{X: 0, Y: 9 * 60})
	vm.PointerMove(Point{X: 0, Y: 11 * 60})
	vm.PointerUp(Point{X: 0, Y: 11 * 60})
	require.Equal(t, PhasePendingType, vm.Phase())

	vm.CancelCreation()

	assert.Equal(t, PhaseIdle, vm.Phase())
	assert.Nil(t, vm.Draft(), "cancelled gesture leaks no draft")
	assert.Empty(t, sink.creations)
	assert.Empty(t, sink.selections)
}

func TestGesture_TapWithoutTapToCreate(t *testing.T) {
	vm, sink := newTestVM(t)

	vm.PointerDown(gestureDay, Point{X: 5, Y: 9 * 60})
	// Pointer never travels past the threshold.
	vm.PointerMove(Point{X: 6, Y: 9*60 + 2})
	vm.PointerUp(Point{X: 6, Y: 9*60 + 2})

	assert.Equal(t, PhaseIdle, vm.Phase(), "tap on empty cell is a no-op")
	assert.Empty(t, sink.creations)
}

func TestGesture_TapToCreateEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowsTapToCreate = true
	trip := domain.TripContext{EarliestInstant: gestureDay}
	sink := &recordingSink{}
	vm := New(trip, cfg, time.UTC, sink, nil)

	vm.PointerDown(gestureDay, Point{X: 5, Y: 14 * 60})
	vm.PointerUp(Point{X: 5, Y: 14 * 60})

	require.Equal(t, PhasePendingType, vm.Phase())
	draft := vm.Draft()
	require.NotNil(t, draft.End)
	assert.Equal(t, time.Hour, draft.End.Sub(draft.Start), "tap pends a default one-hour range")
}

func TestGesture_EndClampedToMinimumDuration(t *testing.T) {
	vm, _ := newTestVM(t)

	vm.PointerDown(gestureDay, Point{X: 0, Y: 9 * 60})
	// Drag upward, far past the distance threshold.
	vm.PointerMove(Point{X: 0, Y: 7 * 60})

	draft := vm.Draft()
	require.NotNil(t, draft.End)
	assert.True(t, draft.End.Equal(draft.Start.Add(MinDraftDuration)),
		"end clamps to start + 15m, got %v", draft.End)
}

func TestGesture_TransitionsGuardedByPhase(t *testing.T) {
	vm, sink := newTestVM(t)

	// Out-of-state inputs are ignored rather than corrupting the draft.
	vm.PointerMove(Point{X: 0, Y: 100})
	vm.PointerUp(Point{X: 0, Y: 100})
	vm.ChooseKind(domain.KindLodging)
	assert.Equal(t, PhaseIdle, vm.Phase())
	assert.Empty(t, sink.creations)

	vm.PointerDown(gestureDay, Point{X: 0, Y: 9 * 60})
	vm.ChooseKind(domain.KindLodging) // not pending yet
	assert.Equal(t, PhaseDragging, vm.Phase())
	assert.Empty(t, sink.creations)

	// A second pointer-down mid-gesture cannot restart the machine.
	before := vm.Draft()
	vm.PointerDown(gestureDay, Point{X: 50, Y: 20 * 60})
	assert.Equal(t, before.Start, vm.Draft().Start)
}

func TestGesture_IdempotentAcrossCancelledRun(t *testing.T) {
	vm, sink := newTestVM(t)

	vm.PointerDown(gestureDay, Point{X: 0, Y: 9 * 60})
	vm.PointerMove(Point{X: 0, Y: 12 * 60})
	vm.PointerUp(Point{X: 0, Y: 12 * 60})
	vm.CancelCreation()

	// The machine accepts a fresh gesture exactly as if nothing happened.
	vm.PointerDown(gestureDay, Point{X: 0, Y: 15 * 60})
	assert.Equal(t, PhaseDragging, vm.Phase())
	assert.True(t, vm.Draft().Start.Equal(time.Date(2026, 6, 2, 15, 0, 0, 0, time.UTC)))
	vm.CancelCreation()
	assert.Empty(t, sink.creations)
}

func TestPreviewRange(t *testing.T) {
	vm, _ := newTestVM(t)

	_, _, ok := vm.PreviewRange()
	assert.False(t, ok, "no preview outside a gesture")

	vm.PointerDown(gestureDay, Point{X: 0, Y: 9 * 60})
	start, end, ok := vm.PreviewRange()
	require.True(t, ok)
	assert.Equal(t, MinDraftDuration, end.Sub(start), "pre-drag preview shows the minimum range")

	vm.PointerMove(Point{X: 0, Y: 11 * 60})
	_, end, _ = vm.PreviewRange()
	assert.True(t, end.Equal(time.Date(2026, 6, 2, 11, 0, 0, 0, time.UTC)))
}
