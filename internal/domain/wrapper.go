package domain

// ActivityWrapper is the uniform, immutable handle the layout engine computes
// against. Wrappers are rebuilt per render pass from the host's current item
// list; an edit produces a new wrapper from updated source data, never a
// mutation of an existing one.
type ActivityWrapper struct {
	ID   string
	Kind ItemKind
	Item ScheduledItem
}

// Wrap normalizes a flat item list into wrappers, preserving input order.
// Reversed time ranges are swapped (see Normalize); nothing is dropped.
func Wrap(items []ScheduledItem, obs QualityObserver) []ActivityWrapper {
	wrapped := make([]ActivityWrapper, 0, len(items))
	for _, it := range items {
		Normalize(&it, obs)
		wrapped = append(wrapped, ActivityWrapper{ID: it.ID, Kind: it.Kind, Item: it})
	}
	return wrapped
}

// Normalize repairs a malformed item in place. An item with End before Start
// has the two swapped rather than being dropped: a dropped item would make a
// real reservation invisible, which is worse than showing it backwards. Each
// swap is reported to the observer as a data-quality signal.
func Normalize(item *ScheduledItem, obs QualityObserver) {
	if item.End.Before(item.Start) {
		item.Start, item.End = item.End, item.Start
		if obs != nil {
			obs.ObserveQuality(QualityEvent{
				ItemID: item.ID,
				Kind:   item.Kind,
				Issue:  IssueReversedRange,
			})
		}
	}
}
