package engine

import (
	"github.com/jhale/tripgrid/internal/geometry"
	"github.com/jhale/tripgrid/internal/layout"
)

const (
	// NarrowDayCount is the week-mode column count for phone-class
	// viewports; WideDayCount for tablet-class.
	NarrowDayCount = 3
	WideDayCount   = 7

	defaultScrollHour = 6
)

// Config is the host-supplied engine configuration.
type Config struct {
	// HourHeight is the vertical size of one hour in renderer units.
	HourHeight float64
	// VisibleDayCount is the number of date columns week mode shows.
	VisibleDayCount int
	// AllowsTapToCreate lets a plain tap on an empty cell open the
	// creation flow with a default one-hour range.
	AllowsTapToCreate bool
	// MinDragDistance is the pointer travel below which a gesture is a
	// tap, not a drag.
	MinDragDistance float64
	// DefaultScrollHour is the auto-scroll target when a period has no
	// scheduled items.
	DefaultScrollHour int
	// FullDay holds the tunable full-day classification thresholds.
	FullDay layout.FullDayThresholds
}

// DefaultConfig returns the stock configuration: 60-unit hours, a wide
// 7-day week, no tap-to-create.
func DefaultConfig() Config {
	return Config{
		HourHeight:        geometry.DefaultHourHeight,
		VisibleDayCount:   WideDayCount,
		AllowsTapToCreate: false,
		MinDragDistance:   8,
		DefaultScrollHour: defaultScrollHour,
		FullDay:           layout.DefaultThresholds(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HourHeight <= 0 {
		c.HourHeight = d.HourHeight
	}
	if c.VisibleDayCount <= 0 {
		c.VisibleDayCount = d.VisibleDayCount
	}
	if c.MinDragDistance <= 0 {
		c.MinDragDistance = d.MinDragDistance
	}
	if c.DefaultScrollHour <= 0 {
		c.DefaultScrollHour = d.DefaultScrollHour
	}
	return c
}
