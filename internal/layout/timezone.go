// Package layout resolves visual overlap between concurrently running items,
// classifies full-day items and computes their multi-day spans, and rebases
// stored instants into the display timezone.
package layout

import (
	"time"

	"github.com/jhale/tripgrid/internal/domain"
)

// Rebase re-interprets t's wall-clock reading under loc: the year, month,
// day, hour, minute and second read from t in its own location are assembled
// into a new instant in loc. This is deliberately not a UTC-offset shift. A
// flight departing 09:00 Tokyo time must sit in the 9 AM row on a New York
// device, because the feature is "what time did the traveler experience",
// not "what simultaneous instant".
func Rebase(t time.Time, loc *time.Location) time.Time {
	if loc == nil || t.Location() == loc {
		return t
	}
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), loc)
}

// RebaseItem returns a copy of w whose item Start and End are rebased into
// loc. Wrappers are immutable, so the engine rebases into fresh copies once
// per render pass and hands those to geometry.
func RebaseItem(w domain.ActivityWrapper, loc *time.Location) domain.ActivityWrapper {
	w.Item.Start = Rebase(w.Item.Start, loc)
	w.Item.End = Rebase(w.Item.End, loc)
	if w.Item.End.Before(w.Item.Start) {
		// Rebasing two differently-zoned endpoints can invert a short
		// range (eastbound red-eye legs). Keep the range well formed.
		w.Item.Start, w.Item.End = w.Item.End, w.Item.Start
	}
	return w
}
