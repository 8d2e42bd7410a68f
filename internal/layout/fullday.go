package layout

import (
	"time"

	"github.com/jhale/tripgrid/internal/domain"
)

// FullDayThresholds are the tunable cutoffs for full-day classification.
// The numbers are heuristic tolerance, not load-bearing invariants: short
// red-eye flights must stay timed, long tours and multi-day road trips must
// become bars. They are configuration, not constants.
type FullDayThresholds struct {
	// MidnightStartMin is the minimum duration for an item starting at
	// local midnight to count as full-day.
	MidnightStartMin time.Duration
	// AbsoluteMin is the duration beyond which any item counts as
	// full-day regardless of start time.
	AbsoluteMin time.Duration
}

// DefaultThresholds returns the stock 8h/16h cutoffs.
func DefaultThresholds() FullDayThresholds {
	return FullDayThresholds{
		MidnightStartMin: 8 * time.Hour,
		AbsoluteMin:      16 * time.Hour,
	}
}

func (t FullDayThresholds) orDefaults() FullDayThresholds {
	d := DefaultThresholds()
	if t.MidnightStartMin <= 0 {
		t.MidnightStartMin = d.MidnightStartMin
	}
	if t.AbsoluteMin <= 0 {
		t.AbsoluteMin = d.AbsoluteMin
	}
	return t
}

// IsFullDay classifies an item as a full-day bar versus a time-positioned
// block. Lodging is always full-day: a stay is a day-granularity fact no
// matter the actual check-in and check-out instants. Anything else is
// full-day when it starts exactly at local midnight and runs at least the
// midnight threshold, when it exceeds the absolute threshold, or when its
// local start and end dates differ. The three conditions are independent.
func IsFullDay(item *domain.ScheduledItem, thresholds FullDayThresholds) bool {
	if item.Kind == domain.KindLodging {
		return true
	}
	th := thresholds.orDefaults()
	dur := item.Duration()

	h, m, s := item.Start.Clock()
	startsAtMidnight := h == 0 && m == 0 && s == 0
	if startsAtMidnight && dur >= th.MidnightStartMin {
		return true
	}
	if dur >= th.AbsoluteMin {
		return true
	}

	sy, sm, sd := item.Start.Date()
	ey, em, ed := item.End.Date()
	return sy != ey || sm != em || sd != ed
}

// Span describes the horizontal run of date columns a full-day bar occupies
// within the visible window.
type Span struct {
	FirstIndex int
	LastIndex  int
	// StartsBeforeVisible marks that the item began before the first
	// visible date; the renderer draws a continuation marker instead of
	// a start label. EndsAfterVisible is the symmetric flag at the right
	// edge.
	StartsBeforeVisible bool
	EndsAfterVisible    bool
}

// SpanColumns intersects the item's [Start, End) with the visible date list
// and returns the contiguous column run its bar must stretch across. The
// second return is false when the item does not intersect the window at all.
// visibleDates must be consecutive local midnights in ascending order.
func SpanColumns(item *domain.ScheduledItem, visibleDates []time.Time) (Span, bool) {
	if len(visibleDates) == 0 {
		return Span{}, false
	}
	windowStart := visibleDates[0]
	windowEnd := visibleDates[len(visibleDates)-1].AddDate(0, 0, 1)
	if !item.Intersects(windowStart, windowEnd) {
		return Span{}, false
	}

	span := Span{FirstIndex: 0, LastIndex: len(visibleDates) - 1}
	for i, date := range visibleDates {
		next := date.AddDate(0, 0, 1)
		if item.Intersects(date, next) {
			span.FirstIndex = i
			break
		}
	}
	for i := len(visibleDates) - 1; i >= 0; i-- {
		date := visibleDates[i]
		if item.Intersects(date, date.AddDate(0, 0, 1)) {
			span.LastIndex = i
			break
		}
	}
	span.StartsBeforeVisible = item.Start.Before(windowStart)
	span.EndsAfterVisible = item.End.After(windowEnd)
	return span, true
}
