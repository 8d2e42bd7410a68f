package domain

import "time"

// ScheduledItem is the uniform shape for everything that occupies time on a
// trip: lodging stays, transportation legs and generic activities. The three
// kinds share one struct discriminated by Kind; kind-specific data hangs off
// optional detail pointers, set only for the matching kind.
type ScheduledItem struct {
	ID   string
	Kind ItemKind
	Name string

	// Start and End carry their originating time.Location. A flight that
	// departs 09:00 Tokyo time has Start.Location() == Asia/Tokyo, and the
	// wall clock read from Start is what the traveler experienced. Cross
	// timezone legs have different locations on Start and End.
	Start time.Time
	End   time.Time

	// Cost is passed through for display; the layout engine never reads it.
	Cost *Money

	Transport *TransportDetail // Kind == KindTransportation only
	Lodging   *LodgingDetail   // Kind == KindLodging only

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Money is an optional monetary amount attached to an item.
type Money struct {
	Amount   float64
	Currency string
}

// TransportDetail carries transportation-specific fields.
type TransportDetail struct {
	Mode    TransportMode
	Origin  string
	Dest    string
}

// LodgingDetail carries lodging-specific fields.
type LodgingDetail struct {
	Address string
}

// Duration returns End minus Start.
func (s *ScheduledItem) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Intersects reports whether the item's [Start, End) range overlaps the
// half-open range [from, to).
func (s *ScheduledItem) Intersects(from, to time.Time) bool {
	return s.Start.Before(to) && from.Before(s.End)
}
