// Package geometry maps times of day to vertical offsets within a fixed
// 24-hour column and back. All functions are pure and operate on the wall
// clock of the time they are given; timezone conversion happens upstream
// (see layout.Rebase) before any geometry call.
package geometry

import (
	"math"
	"time"
)

const (
	// DefaultHourHeight is the default vertical size of one hour.
	DefaultHourHeight = 60.0

	// SnapInterval is the grid increment drag-created times snap to.
	SnapInterval = 15 * time.Minute

	// minHourHeight keeps degenerate configuration from collapsing the
	// column to zero or inverting it.
	minHourHeight = 1.0

	// MinBarHeight is the smallest height a rendered block may occupy, so
	// zero-duration items stay visible and hit-testable.
	MinBarHeight = 4.0
)

// clampHourHeight normalizes a configured hour height to a usable value.
func clampHourHeight(hourHeight float64) float64 {
	if math.IsNaN(hourHeight) || math.IsInf(hourHeight, 0) || hourHeight < minHourHeight {
		return minHourHeight
	}
	return hourHeight
}

// DayHeight returns the full height of a 24-hour column.
func DayHeight(hourHeight float64) float64 {
	return 24 * clampHourHeight(hourHeight)
}

// YOffset returns the vertical offset of t's wall-clock time of day.
// The value is continuous: a 10:37 start renders at 10:37, never snapped.
func YOffset(t time.Time, hourHeight float64) float64 {
	hh := clampHourHeight(hourHeight)
	h, m, s := t.Clock()
	return (float64(h) + float64(m)/60 + float64(s)/3600) * hh
}

// HeightFor returns the rendered height of the range [start, end) within one
// day column, clamped so degenerate ranges still occupy MinBarHeight.
func HeightFor(start, end time.Time, hourHeight float64) float64 {
	h := YOffset(end, hourHeight) - YOffset(start, hourHeight)
	if math.IsNaN(h) || h < MinBarHeight {
		return MinBarHeight
	}
	return h
}

// TimeFor is the inverse of YOffset: it maps a vertical offset within day's
// column back to an instant on that day, in day's location. The result is
// continuous; use SnapTimeFor for gesture input.
func TimeFor(y float64, day time.Time, hourHeight float64) time.Time {
	hh := clampHourHeight(hourHeight)
	if math.IsNaN(y) || y < 0 {
		y = 0
	}
	if max := DayHeight(hh); y > max {
		y = max
	}
	seconds := y / hh * 3600
	year, month, d := day.Date()
	midnight := time.Date(year, month, d, 0, 0, 0, 0, day.Location())
	return midnight.Add(time.Duration(seconds * float64(time.Second)))
}

// SnapTimeFor maps a vertical offset to the nearest SnapInterval boundary on
// day. Used to turn drag positions into predictable creation times.
func SnapTimeFor(y float64, day time.Time, hourHeight float64) time.Time {
	return TimeFor(y, day, hourHeight).Round(SnapInterval)
}
