package engine

import (
	"testing"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every event the engine emits.
type recordingSink struct {
	selections []SelectionEvent
	creations  []CreationIntentEvent
	periods    []PeriodChangedEvent
}

func (s *recordingSink) HandleSelection(e SelectionEvent)           { s.selections = append(s.selections, e) }
func (s *recordingSink) HandleCreationIntent(e CreationIntentEvent) { s.creations = append(s.creations, e) }
func (s *recordingSink) HandlePeriodChanged(e PeriodChangedEvent)   { s.periods = append(s.periods, e) }

func makeItem(id string, kind domain.ItemKind, start, end time.Time) domain.ScheduledItem {
	return domain.ScheduledItem{ID: id, Kind: kind, Name: id, Start: start, End: end}
}

func newTestVM(t *testing.T, items ...domain.ScheduledItem) (*ViewModel, *recordingSink) {
	t.Helper()
	earliest := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	latest := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	for i, it := range items {
		if i == 0 || it.Start.Before(earliest) {
			earliest = it.Start
		}
		if i == 0 || it.End.After(latest) {
			latest = it.End
		}
	}
	trip := domain.TripContext{Name: "Test Trip", EarliestInstant: earliest, LatestInstant: latest}
	sink := &recordingSink{}
	vm := New(trip, DefaultConfig(), time.UTC, sink, domain.NoopQualityObserver{})
	vm.SetItems(items)
	return vm, sink
}

func TestNew_AnchorsToTripStart(t *testing.T) {
	vm, _ := newTestVM(t,
		makeItem("a", domain.KindActivity,
			time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)))

	// Base date is the trip's earliest instant, not device today.
	assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), vm.PeriodStart())
	assert.Equal(t, domain.ModeWeek, vm.Mode())
}

func TestSetMode_ResetsOffset(t *testing.T) {
	vm, sink := newTestVM(t)
	vm.Next()
	vm.Next()
	require.Equal(t, 2, vm.Offset())

	vm.SetMode(domain.ModeDay)

	assert.Equal(t, 0, vm.Offset())
	assert.Equal(t, domain.ModeDay, vm.Mode())
	require.NotEmpty(t, sink.periods)
	assert.Equal(t, domain.ModeDay, sink.periods[len(sink.periods)-1].Mode)
}

func TestSetMode_SameModeNoEvent(t *testing.T) {
	vm, sink := newTestVM(t)
	vm.SetMode(domain.ModeWeek)
	assert.Empty(t, sink.periods)
}

func TestVisibleDates_PerMode(t *testing.T) {
	vm, _ := newTestVM(t,
		makeItem("a", domain.KindActivity,
			time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)))

	vm.SetMode(domain.ModeDay)
	assert.Len(t, vm.VisibleDates(), 1)

	vm.SetMode(domain.ModeWeek)
	dates := vm.VisibleDates()
	require.Len(t, dates, WideDayCount)
	assert.Equal(t, dates[0].AddDate(0, 0, 1), dates[1], "dates are consecutive")

	vm.SetMode(domain.ModeMonth)
	assert.Len(t, vm.VisibleDates(), 30, "June has 30 days")
}

func TestVisibleDates_NarrowWeek(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VisibleDayCount = NarrowDayCount
	trip := domain.TripContext{
		Name:            "t",
		EarliestInstant: time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
	}
	vm := New(trip, cfg, time.UTC, nil, nil)
	assert.Len(t, vm.VisibleDates(), 3)
}

func TestNavigation_AdvancesWholePeriods(t *testing.T) {
	vm, _ := newTestVM(t,
		makeItem("a", domain.KindActivity,
			time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)))

	start := vm.PeriodStart()
	vm.Next()
	assert.Equal(t, start.AddDate(0, 0, WideDayCount), vm.PeriodStart())
	vm.Prev()
	vm.Prev()
	assert.Equal(t, start.AddDate(0, 0, -WideDayCount), vm.PeriodStart())

	vm.SetMode(domain.ModeMonth)
	assert.Equal(t, time.June, vm.PeriodStart().Month())
	vm.Next()
	assert.Equal(t, time.July, vm.PeriodStart().Month())
}

func TestGoToDate(t *testing.T) {
	vm, _ := newTestVM(t,
		makeItem("a", domain.KindActivity,
			time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)))
	vm.SetMode(domain.ModeDay)

	vm.GoToDate(time.Date(2026, 6, 15, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), vm.PeriodStart())

	vm.GoToDate(time.Date(2026, 5, 28, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 5, 28, 0, 0, 0, 0, time.UTC), vm.PeriodStart())
}

func TestItemsOn_FiltersToDate(t *testing.T) {
	vm, _ := newTestVM(t,
		makeItem("stay", domain.KindLodging,
			time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)),
		makeItem("walk", domain.KindActivity,
			time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC)),
		makeItem("later", domain.KindActivity,
			time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 8, 10, 0, 0, 0, time.UTC)))

	day2 := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	on := vm.ItemsOn(day2)
	require.Len(t, on, 2)
	assert.Equal(t, "stay", on[0].ID)
	assert.Equal(t, "walk", on[1].ID)

	timed := vm.TimedItemsOn(day2)
	require.Len(t, timed, 1, "the lodging stay is full-day, not timed")
	assert.Equal(t, "walk", timed[0].ID)
}

func TestMonthGridDates_WholeWeeks(t *testing.T) {
	vm, _ := newTestVM(t,
		makeItem("a", domain.KindActivity,
			time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)))
	vm.SetMode(domain.ModeMonth)

	grid := vm.MonthGridDates()
	require.NotEmpty(t, grid)
	assert.Equal(t, 0, len(grid)%7, "grid pads to whole weeks")
	assert.Equal(t, time.Monday, grid[0].Weekday())
	// June 1 2026 is a Monday, so the grid starts on it exactly.
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), grid[0])
	assert.Len(t, grid, 35)
}

func TestSelectItem_EmitsSelection(t *testing.T) {
	vm, sink := newTestVM(t)
	vm.SelectItem("item-7")
	require.Len(t, sink.selections, 1)
	assert.Equal(t, "item-7", sink.selections[0].ItemID)
	assert.Equal(t, PhaseIdle, vm.Phase(), "selection never enters the creation machine")
}

func TestSetItems_NormalizesReversedRanges(t *testing.T) {
	vm, _ := newTestVM(t)
	start := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	vm.SetItems([]domain.ScheduledItem{
		{ID: "rev", Kind: domain.KindActivity, Start: start.Add(2 * time.Hour), End: start},
	})

	items := vm.Items()
	require.Len(t, items, 1, "malformed items degrade, never disappear")
	assert.True(t, items[0].Item.Start.Before(items[0].Item.End))
}
