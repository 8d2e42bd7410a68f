package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/engine"
)

// overlayModel is a modal surface drawn over the calendar: the kind
// chooser, the add form.
type overlayModel interface {
	Update(msg tea.Msg) (overlayModel, tea.Cmd)
	View() string
}

// autoScrollMsg triggers the one-shot initial scroll. It is posted as a
// command after a layout pass so the grid has real dimensions to scroll
// within; the engine's one-shot makes duplicate deliveries harmless.
type autoScrollMsg struct{}

// itemsReloadedMsg carries a fresh item list from the repository.
type itemsReloadedMsg struct {
	items []domain.ScheduledItem
	err   error
}

// calendarModel is the root bubbletea Model for the calendar TUI. It owns
// exactly one engine.ViewModel; the engine's sink events are buffered and
// drained within the same Update pass.
type calendarModel struct {
	app    *App
	trip   *domain.Trip
	vm     *engine.ViewModel
	events *eventBuffer

	hourRows      int
	width, height int
	grid          viewport.Model

	overlay  overlayModel
	compact  *compactCal
	status   string
	selected string
	err      error
}

func newCalendarModel(app *App, trip *domain.Trip, items []domain.ScheduledItem) calendarModel {
	events := &eventBuffer{}
	tripCtx := domain.ContextFor(trip, items, time.Now())
	vm := engine.New(tripCtx, app.Config, app.Loc, events, app.Quality)
	vm.SetItems(items)

	hourRows := int(vm.Config().HourHeight)
	if hourRows < 1 {
		hourRows = 1
	}

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = hourRows

	return calendarModel{
		app:      app,
		trip:     trip,
		vm:       vm,
		events:   events,
		hourRows: hourRows,
		grid:     vp,
	}
}

func autoScrollCmd() tea.Cmd {
	return func() tea.Msg { return autoScrollMsg{} }
}

func (m calendarModel) reloadItemsCmd() tea.Cmd {
	app, tripID := m.app, m.trip.ID
	return func() tea.Msg {
		items, err := app.Items.ListByTrip(context.Background(), tripID)
		return itemsReloadedMsg{items: items, err: err}
	}
}

func (m calendarModel) Init() tea.Cmd { return nil }

// ── layout metrics ───────────────────────────────────────────────────────────

func (m *calendarModel) geo() weekGeometry {
	return computeWeekGeometry(m.vm, m.width, m.hourRows)
}

// gridTop is the number of rows above the scrollable grid area.
func (m *calendarModel) gridTop(geo weekGeometry) int {
	return 2 + geo.laneRows // title + date header + full-day lanes
}

func (m *calendarModel) resizeGrid() {
	geo := m.geo()
	h := m.height - m.gridTop(geo) - 1 // status bar
	if h < 1 {
		h = 1
	}
	m.grid.Width = m.width
	m.grid.Height = h
}

// ── update ───────────────────────────────────────────────────────────────────

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeGrid()
		return m, autoScrollCmd()

	case autoScrollMsg:
		if m.vm.Mode() == domain.ModeMonth {
			return m, nil
		}
		if hour, ok := m.vm.TakeAutoScroll(); ok {
			// The viewport clamps offsets against its content, so the grid
			// has to be rendered before the scroll lands.
			m.grid.SetContent(renderTimedGrid(m.vm, m.geo()))
			m.grid.SetYOffset(hour * m.hourRows)
		}
		return m, nil

	case itemsReloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.vm.SetItems(msg.items)
		return m, nil

	case kindChosenMsg:
		m.overlay = nil
		if msg.kind == "" {
			m.vm.CancelCreation()
			m.status = "Cancelled."
			return m, nil
		}
		m.vm.ChooseKind(msg.kind)
		return m.drainEvents()

	case itemSavedMsg:
		m.overlay = nil
		if errors.Is(msg.err, errCancelled) {
			m.status = "Cancelled."
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Item added."
		return m, m.reloadItemsCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.overlay != nil {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m calendarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if msg.String() == "ctrl+c" {
			m.vm.Close()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	if m.compact != nil {
		return m.handleCompactKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.vm.Close()
		return m, tea.Quit
	case "d":
		m.vm.SetMode(domain.ModeDay)
		m.resizeGrid()
		return m, autoScrollCmd()
	case "w":
		m.vm.SetMode(domain.ModeWeek)
		m.resizeGrid()
		return m, autoScrollCmd()
	case "m":
		m.vm.SetMode(domain.ModeMonth)
		return m, nil
	case "left", "h":
		m.vm.Prev()
		m.resizeGrid()
		return m, autoScrollCmd()
	case "right", "l":
		m.vm.Next()
		m.resizeGrid()
		return m, autoScrollCmd()
	case "t":
		m.vm.GoToDate(time.Now())
		m.resizeGrid()
		return m, autoScrollCmd()
	case "c":
		m.compact = newCompactCal(m.vm)
		return m, nil
	case "esc":
		m.vm.CancelCreation()
		m.selected = ""
		return m, nil
	}

	// Everything else scrolls the grid.
	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m calendarModel) handleCompactKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.vm.Close()
		return m, tea.Quit
	case "esc", "c":
		m.compact = nil
	case "left", "h":
		m.compact.move(-1)
	case "right", "l":
		m.compact.move(1)
	case "up", "k":
		m.compact.move(-7)
	case "down", "j":
		m.compact.move(7)
	case "enter":
		m.vm.GoToDate(m.compact.cursor)
		m.compact = nil
		m.resizeGrid()
		return m, autoScrollCmd()
	}
	return m, nil
}

func (m calendarModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil || m.compact != nil {
		return m, nil
	}

	switch m.vm.Mode() {
	case domain.ModeMonth:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if date, ok := monthDateAt(m.vm, m.width, m.height-2, msg.X, msg.Y-1); ok {
				m.vm.SetMode(domain.ModeDay)
				m.vm.GoToDate(date)
				m.resizeGrid()
				return m, autoScrollCmd()
			}
		}
		return m, nil
	}

	geo := m.geo()
	top := m.gridTop(geo)

	// Wheel scrolling anywhere over the grid.
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	// Full-day lane taps.
	laneY := msg.Y - 2
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		laneY >= 0 && laneY < geo.laneRows && msg.X >= gutterWidth {
		if id, ok := fullDayItemAt(m.vm, geo, msg.X-gutterWidth, laneY); ok {
			m.vm.SelectItem(id)
			return m.drainEvents()
		}
		return m, nil
	}

	gx := msg.X - gutterWidth
	gy := msg.Y - top + m.grid.YOffset
	if gx < 0 || msg.Y < top {
		return m, nil
	}
	col := gx / geo.colWidth
	if col >= len(geo.dates) {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, ok := itemAt(m.vm, geo, gx, gy); ok {
			// Tapping an existing item selects; it never starts a draft.
			m.vm.SelectItem(id)
			return m.drainEvents()
		}
		m.vm.PointerDown(geo.dates[col], engine.Point{X: float64(gx), Y: float64(gy)})
		return m, nil

	case tea.MouseActionMotion:
		m.vm.PointerMove(engine.Point{X: float64(gx), Y: float64(gy)})
		return m, nil

	case tea.MouseActionRelease:
		m.vm.PointerUp(engine.Point{X: float64(gx), Y: float64(gy)})
		if m.vm.Phase() == engine.PhasePendingType {
			start, end, _ := m.vm.PreviewRange()
			m.overlay = newKindMenu(start.Format("Mon Jan 2, 15:04") + " – " + end.Format("15:04"))
		}
		return m, nil
	}
	return m, nil
}

// drainEvents folds buffered engine events into model state: selections
// surface in the status line, creation intents open the add form.
func (m calendarModel) drainEvents() (tea.Model, tea.Cmd) {
	selections, creations := m.events.drain()
	var cmds []tea.Cmd
	for _, sel := range selections {
		m.selected = sel.ItemID
		for _, w := range m.vm.Items() {
			if w.ID == sel.ItemID {
				m.status = fmt.Sprintf("%s %s  %s – %s", w.Kind.Icon(), w.Item.Name,
					w.Item.Start.Format("Mon 15:04"), w.Item.End.Format("Mon 15:04"))
			}
		}
	}
	for _, intent := range creations {
		form := newAddForm(m.app, m.trip.ID, intent)
		m.overlay = form
		cmds = append(cmds, form.Init())
	}
	return m, tea.Batch(cmds...)
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m calendarModel) View() string {
	if m.width == 0 {
		return "loading…"
	}

	if m.overlay != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlay.View())
	}
	if m.compact != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.compact.render(time.Now()))
	}

	var b strings.Builder
	b.WriteString(m.titleLine())
	b.WriteByte('\n')

	switch m.vm.Mode() {
	case domain.ModeMonth:
		b.WriteString(renderMonthView(m.vm, m.width, m.height-2, time.Now()))
	default:
		geo := m.geo()
		if m.vm.Mode() == domain.ModeDay {
			b.WriteString(renderDayHeader(m.vm, geo, time.Now()))
		} else {
			b.WriteString(renderDateHeader(geo, time.Now()))
		}
		b.WriteByte('\n')
		for _, lane := range renderFullDayLanes(m.vm, geo) {
			b.WriteString(lane)
			b.WriteByte('\n')
		}
		m.grid.SetContent(renderTimedGrid(m.vm, geo))
		b.WriteString(m.grid.View())
	}

	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	return b.String()
}

func (m calendarModel) titleLine() string {
	title := styleTitle.Render(m.trip.Name)
	period := styleHeader.Render(m.periodLabel())
	mode := styleDim.Render("[" + string(m.vm.Mode()) + "]")
	return title + "  " + period + "  " + mode
}

func (m calendarModel) periodLabel() string {
	start := m.vm.PeriodStart()
	switch m.vm.Mode() {
	case domain.ModeDay:
		return start.Format("Jan 2 2006")
	case domain.ModeMonth:
		return start.Format("January 2006")
	default:
		dates := m.vm.VisibleDates()
		last := dates[len(dates)-1]
		return start.Format("Jan 2") + " – " + last.Format("Jan 2 2006")
	}
}

func (m calendarModel) statusLine() string {
	help := "d/w/m: mode · ←/→: period · t: today · c: calendar · q: quit"
	if m.err != nil {
		return styleDim.Render(help) + "  " + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error())
	}
	if m.status != "" {
		return styleDim.Render(help) + "  " + m.status
	}
	return styleDim.Render(help)
}
