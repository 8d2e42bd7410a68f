package cli

import "github.com/jhale/tripgrid/internal/engine"

// eventBuffer implements engine.Sink. Engine callbacks fire synchronously
// inside Update, so the buffer just queues them for the model to drain in
// the same pass; nothing crosses goroutines.
type eventBuffer struct {
	selections []engine.SelectionEvent
	creations  []engine.CreationIntentEvent
	periods    []engine.PeriodChangedEvent
}

func (b *eventBuffer) HandleSelection(e engine.SelectionEvent) {
	b.selections = append(b.selections, e)
}

func (b *eventBuffer) HandleCreationIntent(e engine.CreationIntentEvent) {
	b.creations = append(b.creations, e)
}

func (b *eventBuffer) HandlePeriodChanged(e engine.PeriodChangedEvent) {
	b.periods = append(b.periods, e)
}

func (b *eventBuffer) drain() (sel []engine.SelectionEvent, cre []engine.CreationIntentEvent) {
	sel, cre = b.selections, b.creations
	b.selections, b.creations, b.periods = nil, nil, nil
	return sel, cre
}
