// Package engine owns the calendar view model: display mode, navigation,
// per-period item filtering, the drag-creation state machine and the one-shot
// initial-scroll task. It is single-threaded by contract: one ViewModel is
// exclusively owned by one rendering context, and every method runs
// synchronously on that context's event loop. Hosts needing two simultaneous
// calendars own two independent instances.
package engine

import (
	"math"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/layout"
)

// ViewModel drives one calendar surface.
type ViewModel struct {
	cfg  Config
	trip domain.TripContext
	loc  *time.Location
	sink Sink
	obs  domain.QualityObserver

	mode     domain.DisplayMode
	baseDate time.Time // midnight in loc, seeded from the trip's earliest instant
	offset   int

	// wrappers are already rebased into loc; geometry reads them directly.
	wrappers []domain.ActivityWrapper

	gesture       gestureState
	scrollPending bool
	closed        bool
}

// New builds a ViewModel anchored to the trip's own timeline. The base date
// comes from the trip's earliest scheduled instant, not device "today":
// trips are routinely planned for future or past dates and the view must
// open somewhere relevant.
func New(trip domain.TripContext, cfg Config, loc *time.Location, sink Sink, obs domain.QualityObserver) *ViewModel {
	if loc == nil {
		loc = time.Local
	}
	if sink == nil {
		sink = NoopSink{}
	}
	if obs == nil {
		obs = domain.NoopQualityObserver{}
	}
	vm := &ViewModel{
		cfg:      cfg.withDefaults(),
		trip:     trip,
		loc:      loc,
		sink:     sink,
		obs:      obs,
		mode:     domain.ModeWeek,
		baseDate: startOfDay(layout.Rebase(trip.EarliestInstant, loc)),
	}
	vm.armAutoScroll()
	return vm
}

// Config returns the effective configuration.
func (vm *ViewModel) Config() Config { return vm.cfg }

// Trip returns the trip context for header pass-through.
func (vm *ViewModel) Trip() domain.TripContext { return vm.trip }

// Location returns the display timezone.
func (vm *ViewModel) Location() *time.Location { return vm.loc }

// SetItems replaces the engine's item list. Items are normalized, wrapped
// and rebased into the display zone. Replacing items mid-period must not
// re-trigger the auto-scroll, so the one-shot stays as it was.
func (vm *ViewModel) SetItems(items []domain.ScheduledItem) {
	wrapped := domain.Wrap(items, vm.obs)
	vm.wrappers = make([]domain.ActivityWrapper, 0, len(wrapped))
	for _, w := range wrapped {
		vm.wrappers = append(vm.wrappers, layout.RebaseItem(w, vm.loc))
	}
}

// Items returns the rebased wrappers in input order.
func (vm *ViewModel) Items() []domain.ActivityWrapper { return vm.wrappers }

// ── mode & navigation ────────────────────────────────────────────────────────

// Mode returns the active display mode.
func (vm *ViewModel) Mode() domain.DisplayMode { return vm.mode }

// SetMode switches display mode. The navigation offset resets to zero and
// the previous mode's scroll position is not preserved; the auto-scroll
// one-shot re-arms.
func (vm *ViewModel) SetMode(mode domain.DisplayMode) {
	if mode == vm.mode {
		return
	}
	vm.mode = mode
	vm.offset = 0
	vm.armAutoScroll()
	vm.emitPeriodChanged()
}

// Offset returns the zero-based navigation offset in whole periods.
func (vm *ViewModel) Offset() int { return vm.offset }

// Next advances one whole period (day, VisibleDayCount days, or month).
func (vm *ViewModel) Next() { vm.shift(1) }

// Prev steps back one whole period.
func (vm *ViewModel) Prev() { vm.shift(-1) }

func (vm *ViewModel) shift(delta int) {
	vm.offset += delta
	vm.armAutoScroll()
	vm.emitPeriodChanged()
}

// GoToDate moves the visible period to contain date, keeping the mode.
func (vm *ViewModel) GoToDate(date time.Time) {
	target := startOfDay(layout.Rebase(date, vm.loc))
	switch vm.mode {
	case domain.ModeDay:
		vm.offset = daysBetween(startOfDay(vm.baseDate), target)
	case domain.ModeWeek:
		vm.offset = floorDiv(daysBetween(startOfDay(vm.baseDate), target), vm.cfg.VisibleDayCount)
	case domain.ModeMonth:
		base := vm.baseDate
		vm.offset = (target.Year()-base.Year())*12 + int(target.Month()) - int(base.Month())
	}
	vm.armAutoScroll()
	vm.emitPeriodChanged()
}

// PeriodStart returns the first visible date (local midnight) of the
// current period.
func (vm *ViewModel) PeriodStart() time.Time {
	switch vm.mode {
	case domain.ModeDay:
		return vm.baseDate.AddDate(0, 0, vm.offset)
	case domain.ModeMonth:
		first := time.Date(vm.baseDate.Year(), vm.baseDate.Month(), 1, 0, 0, 0, 0, vm.loc)
		return first.AddDate(0, vm.offset, 0)
	default:
		return vm.baseDate.AddDate(0, 0, vm.offset*vm.cfg.VisibleDayCount)
	}
}

// VisibleDates returns the local midnights of the visible period: one for
// day mode, VisibleDayCount for week mode, every day of the month for
// month mode.
func (vm *ViewModel) VisibleDates() []time.Time {
	start := vm.PeriodStart()
	switch vm.mode {
	case domain.ModeDay:
		return []time.Time{start}
	case domain.ModeMonth:
		return datesFrom(start, start.AddDate(0, 1, -1).Day())
	default:
		return datesFrom(start, vm.cfg.VisibleDayCount)
	}
}

// MonthGridDates returns the month-mode grid padded to whole weeks starting
// on Monday, for the month and compact renderers.
func (vm *ViewModel) MonthGridDates() []time.Time {
	start := vm.PeriodStart()
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, vm.loc)
	lead := (int(first.Weekday()) + 6) % 7 // Monday-based
	gridStart := first.AddDate(0, 0, -lead)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	cells := lead + daysInMonth
	if rem := cells % 7; rem != 0 {
		cells += 7 - rem
	}
	return datesFrom(gridStart, cells)
}

// ── per-period filtering & layout ────────────────────────────────────────────

// ItemsOn returns every wrapper whose rebased [Start, End) intersects the
// given local date, input order preserved.
func (vm *ViewModel) ItemsOn(date time.Time) []domain.ActivityWrapper {
	from := startOfDay(date)
	to := from.AddDate(0, 0, 1)
	var out []domain.ActivityWrapper
	for _, w := range vm.wrappers {
		if w.Item.Intersects(from, to) {
			out = append(out, w)
		}
	}
	return out
}

// TimedItemsOn returns the items that render as time-positioned blocks on
// the given date, excluding full-day items.
func (vm *ViewModel) TimedItemsOn(date time.Time) []domain.ActivityWrapper {
	var out []domain.ActivityWrapper
	for _, w := range vm.ItemsOn(date) {
		if !layout.IsFullDay(&w.Item, vm.cfg.FullDay) {
			out = append(out, w)
		}
	}
	return out
}

// PlacedItem pairs a wrapper with its resolved column placement.
type PlacedItem struct {
	Wrapper   domain.ActivityWrapper
	Placement layout.Placement
}

// TimedPlacementsOn resolves overlap columns for the timed items of one day.
func (vm *ViewModel) TimedPlacementsOn(date time.Time) []PlacedItem {
	timed := vm.TimedItemsOn(date)
	placements := layout.ResolveOverlaps(timed)
	out := make([]PlacedItem, len(timed))
	for i := range timed {
		out[i] = PlacedItem{Wrapper: timed[i], Placement: placements[i]}
	}
	return out
}

// SpannedItem pairs a full-day wrapper with its visible column span.
type SpannedItem struct {
	Wrapper domain.ActivityWrapper
	Span    layout.Span
}

// FullDaySpans returns the full-day bars intersecting the visible period,
// each with the contiguous column run it stretches across.
func (vm *ViewModel) FullDaySpans() []SpannedItem {
	dates := vm.VisibleDates()
	var out []SpannedItem
	for _, w := range vm.wrappers {
		if !layout.IsFullDay(&w.Item, vm.cfg.FullDay) {
			continue
		}
		span, ok := layout.SpanColumns(&w.Item, dates)
		if !ok {
			continue
		}
		out = append(out, SpannedItem{Wrapper: w, Span: span})
	}
	return out
}

// SelectItem emits a selection event for a tapped existing item. Taps on
// items never enter the creation machine.
func (vm *ViewModel) SelectItem(itemID string) {
	vm.sink.HandleSelection(SelectionEvent{ItemID: itemID})
}

func (vm *ViewModel) emitPeriodChanged() {
	vm.sink.HandlePeriodChanged(PeriodChangedEvent{Mode: vm.mode, AnchorDate: vm.PeriodStart()})
}

// ── helpers ──────────────────────────────────────────────────────────────────

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func datesFrom(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// daysBetween counts whole calendar days from midnight a to midnight b,
// rounding so DST-shortened days still count as one.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
