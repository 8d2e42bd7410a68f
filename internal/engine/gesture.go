package engine

import (
	"math"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/geometry"
)

// GesturePhase names the states of the drag-creation machine. Committed and
// Cancelled are terminal for a gesture and collapse straight back to Idle,
// so they never appear as observable phases.
type GesturePhase string

const (
	PhaseIdle        GesturePhase = "idle"
	PhaseDragging    GesturePhase = "dragging"
	PhasePendingType GesturePhase = "pending_type_selection"
)

// MinDraftDuration is the floor a draft's range is clamped to while
// dragging, matching the snap grid.
const MinDraftDuration = geometry.SnapInterval

// Point is a pointer position in renderer units.
type Point struct {
	X, Y float64
}

func (p Point) distanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// CreationDraft is the in-progress, uncommitted time range produced by a
// drag gesture. End stays nil until the pointer travels past the minimum
// drag distance.
type CreationDraft struct {
	Day    time.Time
	Anchor Point
	Start  time.Time
	End    *time.Time
}

type gestureState struct {
	phase GesturePhase
	draft *CreationDraft
}

// Phase returns the machine's current state.
func (vm *ViewModel) Phase() GesturePhase {
	if vm.gesture.phase == "" {
		return PhaseIdle
	}
	return vm.gesture.phase
}

// Draft returns a copy of the in-flight draft, or nil outside a gesture.
// At most one draft is ever in flight.
func (vm *ViewModel) Draft() *CreationDraft {
	if vm.gesture.draft == nil {
		return nil
	}
	d := *vm.gesture.draft
	return &d
}

// PointerDown starts a drag on an empty cell of day. Only Idle accepts it;
// pointer-down in any other phase is ignored, which makes double-fire
// sequences from the input layer unreachable.
func (vm *ViewModel) PointerDown(day time.Time, p Point) {
	if vm.Phase() != PhaseIdle {
		return
	}
	vm.gesture = gestureState{
		phase: PhaseDragging,
		draft: &CreationDraft{
			Day:    startOfDay(day),
			Anchor: p,
			Start:  geometry.SnapTimeFor(p.Y, day, vm.cfg.HourHeight),
		},
	}
}

// PointerMove extends the draft while dragging. The end time only appears
// once the pointer has travelled MinDragDistance from the anchor, and is
// clamped so End >= Start + MinDraftDuration.
func (vm *ViewModel) PointerMove(p Point) {
	if vm.Phase() != PhaseDragging {
		return
	}
	draft := vm.gesture.draft
	if draft.End == nil && p.distanceTo(draft.Anchor) < vm.cfg.MinDragDistance {
		return
	}
	end := geometry.SnapTimeFor(p.Y, draft.Day, vm.cfg.HourHeight)
	if min := draft.Start.Add(MinDraftDuration); end.Before(min) {
		end = min
	}
	draft.End = &end
}

// PointerUp completes the drag. A real drag moves to PendingTypeSelection,
// where the renderer shows the kind chooser. A tap (no travel) is a no-op
// unless the surface allows tap-to-create, in which case it pends a default
// one-hour range.
func (vm *ViewModel) PointerUp(p Point) {
	if vm.Phase() != PhaseDragging {
		return
	}
	draft := vm.gesture.draft
	if draft.End == nil {
		if !vm.cfg.AllowsTapToCreate {
			vm.resetGesture()
			return
		}
		end := draft.Start.Add(time.Hour)
		draft.End = &end
	}
	vm.gesture.phase = PhasePendingType
}

// ChooseKind commits the pending draft: the creation intent goes to the
// host and the machine resets. Only PendingTypeSelection accepts it.
func (vm *ViewModel) ChooseKind(kind domain.ItemKind) {
	if vm.Phase() != PhasePendingType {
		return
	}
	draft := vm.gesture.draft
	vm.resetGesture()
	vm.sink.HandleCreationIntent(CreationIntentEvent{
		Kind:  kind,
		Start: draft.Start,
		End:   *draft.End,
	})
}

// CancelCreation discards the in-flight draft with no event. Valid from
// Dragging and PendingTypeSelection; a no-op in Idle.
func (vm *ViewModel) CancelCreation() {
	vm.resetGesture()
}

func (vm *ViewModel) resetGesture() {
	vm.gesture = gestureState{phase: PhaseIdle}
}

// PreviewRange returns the live [start, end) the renderer draws as the drag
// preview rectangle, with the minimum duration applied when the drag has
// not yet produced an end.
func (vm *ViewModel) PreviewRange() (start, end time.Time, ok bool) {
	if vm.Phase() != PhaseDragging && vm.Phase() != PhasePendingType {
		return time.Time{}, time.Time{}, false
	}
	draft := vm.gesture.draft
	start = draft.Start
	if draft.End != nil {
		return start, *draft.End, true
	}
	return start, start.Add(MinDraftDuration), true
}
