package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jhale/tripgrid/internal/engine"
	"github.com/jhale/tripgrid/internal/geometry"
)

// The week view: a header row of date labels, a lane block of full-day bars
// spanning date columns, and the scrollable timed grid underneath. The day
// view is the same composition with a single date column.

const gutterWidth = 6

// weekGeometry is the frame-stable layout the mouse hit-testing needs.
type weekGeometry struct {
	dates    []time.Time
	colWidth int
	laneRows int
	hourRows int
}

func computeWeekGeometry(vm *engine.ViewModel, width, hourRows int) weekGeometry {
	dates := vm.VisibleDates()
	colWidth := (width - gutterWidth) / len(dates)
	if colWidth < 1 {
		colWidth = 1
	}
	return weekGeometry{
		dates:    dates,
		colWidth: colWidth,
		laneRows: len(packLanes(vm.FullDaySpans())),
		hourRows: hourRows,
	}
}

// renderDateHeader renders the date labels across the top of the grid.
func renderDateHeader(geo weekGeometry, today time.Time) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for _, date := range geo.dates {
		label := date.Format("Mon 02")
		if sameDate(date, today) {
			b.WriteString(lipglossWidth(styleHeader.Foreground(colorToday), label, geo.colWidth))
		} else {
			b.WriteString(lipglossWidth(styleHeader, label, geo.colWidth))
		}
	}
	return b.String()
}

// packLanes stacks full-day spans into horizontal lanes: each span takes the
// first lane where its column run does not collide with an earlier span.
func packLanes(spans []engine.SpannedItem) [][]engine.SpannedItem {
	var lanes [][]engine.SpannedItem
next:
	for _, s := range spans {
		for i, lane := range lanes {
			collision := false
			for _, other := range lane {
				if s.Span.FirstIndex <= other.Span.LastIndex && other.Span.FirstIndex <= s.Span.LastIndex {
					collision = true
					break
				}
			}
			if !collision {
				lanes[i] = append(lanes[i], s)
				continue next
			}
		}
		lanes = append(lanes, []engine.SpannedItem{s})
	}
	return lanes
}

// renderFullDayLanes renders the full-day bars, one row per lane. Bars run
// contiguously across their date columns; window-clipped ends swap their
// time label for a continuation marker.
func renderFullDayLanes(vm *engine.ViewModel, geo weekGeometry) []string {
	lanes := packLanes(vm.FullDaySpans())
	rows := make([]string, 0, len(lanes))
	for _, lane := range lanes {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", gutterWidth))
		cursor := 0
		for _, s := range lane {
			if gap := s.Span.FirstIndex - cursor; gap > 0 {
				b.WriteString(strings.Repeat(" ", gap*geo.colWidth))
			}
			barWidth := (s.Span.LastIndex - s.Span.FirstIndex + 1) * geo.colWidth
			label := s.Wrapper.Kind.Icon() + " " + s.Wrapper.Item.Name
			if s.Span.StartsBeforeVisible {
				label = "◀ " + label
			} else {
				label = label + " " + s.Wrapper.Item.Start.Format("15:04")
			}
			if s.Span.EndsAfterVisible {
				label = label + " ▶"
			}
			b.WriteString(barStyle(s.Wrapper.Kind).Render(fitText(label, barWidth)))
			cursor = s.Span.LastIndex + 1
		}
		rows = append(rows, b.String())
	}
	return rows
}

// renderTimedGrid renders the scrollable 24-hour grid body for the visible
// dates, with the drag preview painted into its column.
func renderTimedGrid(vm *engine.ViewModel, geo weekGeometry) string {
	gutter := hourGutter(geo.hourRows, gutterWidth)
	columns := make([][]string, len(geo.dates))
	for i, date := range geo.dates {
		spec := columnSpec{
			date:     date,
			placed:   vm.TimedPlacementsOn(date),
			width:    geo.colWidth,
			hourRows: geo.hourRows,
			preview:  previewFor(vm, date, geo.hourRows),
		}
		columns[i] = renderColumn(spec)
	}

	total := 24 * geo.hourRows
	var b strings.Builder
	for r := 0; r < total; r++ {
		b.WriteString(gutter[r])
		for i := range columns {
			b.WriteString(columns[i][r])
		}
		if r < total-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// previewFor maps the in-flight draft onto date's column, if it lands there.
func previewFor(vm *engine.ViewModel, date time.Time, hourRows int) *previewBlock {
	draft := vm.Draft()
	if draft == nil || !sameDate(draft.Day, date) {
		return nil
	}
	start, end, ok := vm.PreviewRange()
	if !ok {
		return nil
	}
	hh := float64(hourRows)
	startRow := int(geometry.YOffset(start, hh))
	endRow := int(geometry.YOffset(end, hh))
	if end.Day() != start.Day() {
		endRow = 24 * hourRows
	}
	if endRow <= startRow {
		endRow = startRow + 1
	}
	return &previewBlock{
		startRow: startRow,
		endRow:   endRow,
		label:    start.Format("15:04") + " – " + end.Format("15:04"),
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// lipglossWidth renders text at a fixed cell width with the given style.
func lipglossWidth(style lipgloss.Style, text string, w int) string {
	return style.Render(fitText(text, w))
}

// itemAt resolves which item sits under a grid-area pointer position, used
// for tap-to-select. x and row are grid-local (gutter and scroll already
// removed).
func itemAt(vm *engine.ViewModel, geo weekGeometry, x, row int) (string, bool) {
	col := x / geo.colWidth
	if col < 0 || col >= len(geo.dates) {
		return "", false
	}
	date := geo.dates[col]
	return hitTestColumn(vm.TimedPlacementsOn(date), date, geo.hourRows, geo.colWidth, x%geo.colWidth, row)
}

// fullDayItemAt resolves which full-day bar sits under a lane-area pointer.
func fullDayItemAt(vm *engine.ViewModel, geo weekGeometry, x, lane int) (string, bool) {
	lanes := packLanes(vm.FullDaySpans())
	if lane < 0 || lane >= len(lanes) {
		return "", false
	}
	col := x / geo.colWidth
	for _, s := range lanes[lane] {
		if col >= s.Span.FirstIndex && col <= s.Span.LastIndex {
			return s.Wrapper.ID, true
		}
	}
	return "", false
}
