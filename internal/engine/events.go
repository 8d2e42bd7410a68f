package engine

import (
	"time"

	"github.com/jhale/tripgrid/internal/domain"
)

// SelectionEvent reports a tap on an existing item. The host navigates to
// the item's detail view; the engine does nothing further.
type SelectionEvent struct {
	ItemID string
}

// CreationIntentEvent reports a completed drag + type-selection flow. The
// host opens its creation form and persists the result.
type CreationIntentEvent struct {
	Kind  domain.ItemKind
	Start time.Time
	End   time.Time
}

// PeriodChangedEvent is informational, for host-level breadcrumbs/titles.
type PeriodChangedEvent struct {
	Mode       domain.DisplayMode
	AnchorDate time.Time
}

// Sink receives the events the engine emits back to the host.
type Sink interface {
	HandleSelection(SelectionEvent)
	HandleCreationIntent(CreationIntentEvent)
	HandlePeriodChanged(PeriodChangedEvent)
}

// NoopSink discards all events.
type NoopSink struct{}

func (NoopSink) HandleSelection(SelectionEvent)           {}
func (NoopSink) HandleCreationIntent(CreationIntentEvent) {}
func (NoopSink) HandlePeriodChanged(PeriodChangedEvent)   {}
