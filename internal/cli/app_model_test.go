package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/engine"
	"github.com/jhale/tripgrid/internal/repository"
	"github.com/jhale/tripgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 1 2026 is a Monday, which keeps the week header predictable.
var testAnchor = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &App{
		Trips: repository.NewSQLiteTripRepo(database),
		Items: repository.NewSQLiteItemRepo(database),
		Config: engine.Config{
			HourHeight:      2, // rows per hour
			VisibleDayCount: 7,
			MinDragDistance: 1,
		},
		Loc:     time.UTC,
		Quality: domain.NoopQualityObserver{},
	}
}

func newTestCalendar(t *testing.T) (calendarModel, *App, *domain.Trip) {
	t.Helper()
	app := testApp(t)
	ctx := context.Background()

	trip := testutil.NewTrip("Japan 2026")
	require.NoError(t, app.Trips.Create(ctx, trip))

	breakfast := testutil.NewItem(domain.KindActivity, "Breakfast",
		testAnchor.Add(9*time.Hour), testAnchor.Add(10*time.Hour+30*time.Minute))
	require.NoError(t, app.Items.Create(ctx, trip.ID, breakfast))

	items, err := app.Items.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)

	m := newCalendarModel(app, trip, items)
	return m, app, trip
}

func resize(t *testing.T, m calendarModel, w, h int) calendarModel {
	t.Helper()
	model, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return model.(calendarModel)
}

func press(m calendarModel, x, y int) (calendarModel, tea.Cmd) {
	model, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return model.(calendarModel), cmd
}

func TestCalendarModel_InitialAutoScrollFiresOnce(t *testing.T) {
	m, _, _ := newTestCalendar(t)

	// Short enough that 09:00 is off-screen, so the scroll is observable.
	model, cmd := m.Update(tea.WindowSizeMsg{Width: 90, Height: 20})
	m = model.(calendarModel)
	require.NotNil(t, cmd)

	model, _ = m.Update(cmd())
	m = model.(calendarModel)
	// Earliest timed item starts at 09:00; two rows per hour.
	assert.Equal(t, 18, m.grid.YOffset)

	// A second delivery is a no-op: the one-shot has been consumed.
	m.grid.SetYOffset(0)
	model, _ = m.Update(autoScrollMsg{})
	m = model.(calendarModel)
	assert.Equal(t, 0, m.grid.YOffset)
}

func TestCalendarModel_ModeKeysSwitchViews(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 40)

	assert.Contains(t, m.View(), "Jun 1 – Jun 7 2026")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	m = model.(calendarModel)
	assert.Contains(t, m.View(), "June 2026")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m = model.(calendarModel)
	assert.Contains(t, m.View(), "Jun 1 2026")
}

func TestCalendarModel_NavigationShiftsPeriod(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 40)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = model.(calendarModel)
	assert.Contains(t, m.View(), "Jun 8 – Jun 14 2026")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = model.(calendarModel)
	assert.Contains(t, m.View(), "Jun 1 – Jun 7 2026")
}

func TestCalendarModel_WeekViewRendersItem(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 60)

	view := m.View()
	assert.Contains(t, view, "Breakfast")
	assert.Contains(t, view, "Mon 01")
	assert.Contains(t, view, "Japan 2026")
}

func TestCalendarModel_ClickSelectsItem(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 40)

	// No full-day items, so the grid starts at row 2. Breakfast occupies
	// rows 18–20 of column 0 (Jun 1): click row 18 → screen y 20.
	m, _ = press(m, gutterWidth+1, 20)
	assert.Contains(t, m.status, "Breakfast")
}

func TestCalendarModel_DragOpensKindMenu(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 40)

	// Column 1 is Jun 2 (empty). Screen y 20 → grid row 18 → 09:00.
	x := gutterWidth + 13
	m, _ = press(m, x, 20)
	require.Equal(t, engine.PhaseDragging, m.vm.Phase())

	model, _ := m.Update(tea.MouseMsg{X: x, Y: 23, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = model.(calendarModel)

	model, _ = m.Update(tea.MouseMsg{X: x, Y: 23, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = model.(calendarModel)

	require.Equal(t, engine.PhasePendingType, m.vm.Phase())
	require.IsType(t, &kindMenu{}, m.overlay)
	assert.Contains(t, m.overlay.View(), "New item")
	assert.Contains(t, m.overlay.View(), "09:00 – 10:30")
}

func TestCalendarModel_KindChoiceOpensAddForm(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 40)

	x := gutterWidth + 13
	m, _ = press(m, x, 20)
	model, _ := m.Update(tea.MouseMsg{X: x, Y: 23, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = model.(calendarModel)
	model, _ = m.Update(tea.MouseMsg{X: x, Y: 23, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = model.(calendarModel)

	model, _ = m.Update(kindChosenMsg{kind: domain.KindActivity})
	m = model.(calendarModel)

	assert.Equal(t, engine.PhaseIdle, m.vm.Phase())
	assert.IsType(t, &addForm{}, m.overlay)
}

func TestCalendarModel_KindMenuCancelLeavesNoDraft(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 40)

	x := gutterWidth + 13
	m, _ = press(m, x, 20)
	model, _ := m.Update(tea.MouseMsg{X: x, Y: 23, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = model.(calendarModel)
	model, _ = m.Update(tea.MouseMsg{X: x, Y: 23, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = model.(calendarModel)

	model, _ = m.Update(kindChosenMsg{})
	m = model.(calendarModel)

	assert.Nil(t, m.overlay)
	assert.Nil(t, m.vm.Draft())
	assert.Equal(t, engine.PhaseIdle, m.vm.Phase())
}

func TestCalendarModel_ItemSavedReloadsItems(t *testing.T) {
	m, app, trip := newTestCalendar(t)
	m = resize(t, m, 90, 60)

	dinner := testutil.NewItem(domain.KindActivity, "Dinner",
		testAnchor.Add(19*time.Hour), testAnchor.Add(21*time.Hour))
	require.NoError(t, app.Items.Create(context.Background(), trip.ID, dinner))

	model, cmd := m.Update(itemSavedMsg{})
	m = model.(calendarModel)
	require.NotNil(t, cmd)

	model, _ = m.Update(cmd())
	m = model.(calendarModel)
	assert.Len(t, m.vm.Items(), 2)
	assert.Contains(t, m.View(), "Dinner")
}

func TestCalendarModel_CompactCalendarToggle(t *testing.T) {
	m, _, _ := newTestCalendar(t)
	m = resize(t, m, 90, 40)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = model.(calendarModel)
	require.NotNil(t, m.compact)
	assert.Contains(t, m.View(), "Mo Tu We Th Fr Sa Su")

	// Enter jumps the main view to the cursor date.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(calendarModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(calendarModel)
	assert.Nil(t, m.compact)
	assert.Contains(t, m.View(), "Jun 8 – Jun 14 2026")
}

func TestCalendarModel_FullDayLaneRendersSpan(t *testing.T) {
	m, app, trip := newTestCalendar(t)

	hotel := testutil.NewItem(domain.KindLodging, "Park Hyatt",
		testAnchor.Add(14*time.Hour), testAnchor.AddDate(0, 0, 2).Add(11*time.Hour))
	require.NoError(t, app.Items.Create(context.Background(), trip.ID, hotel))

	items, err := app.Items.ListByTrip(context.Background(), trip.ID)
	require.NoError(t, err)
	m.vm.SetItems(items)
	m = resize(t, m, 90, 60)

	view := m.View()
	assert.Contains(t, view, "Park Hyatt")
	assert.False(t, strings.Contains(view, "◀ "), "span starts inside the window")
}
