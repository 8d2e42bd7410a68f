package domain

import "time"

// Trip is the host-side container for a set of scheduled items.
type Trip struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TripContext is the slice of trip state the layout engine consumes: the
// name for header pass-through and the scheduled extent used to seed the
// navigation anchor. Trips are frequently planned for future or past dates,
// so views anchor to the trip's own timeline, not device "today".
type TripContext struct {
	Name            string
	EarliestInstant time.Time
	LatestInstant   time.Time
}

// ContextFor derives a TripContext from a trip and its items. With no items
// the extent falls back to now, so an empty trip still opens somewhere.
func ContextFor(trip *Trip, items []ScheduledItem, now time.Time) TripContext {
	tc := TripContext{Name: trip.Name, EarliestInstant: now, LatestInstant: now}
	for i, it := range items {
		if i == 0 || it.Start.Before(tc.EarliestInstant) {
			tc.EarliestInstant = it.Start
		}
		if i == 0 || it.End.After(tc.LatestInstant) {
			tc.LatestInstant = it.End
		}
	}
	return tc
}
