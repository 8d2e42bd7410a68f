package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jhale/tripgrid/internal/engine"
)

// The month view: a 7-wide grid of date cells, each showing its day number
// and a few item chips. Cells outside the anchored month render dimmed.

func renderMonthView(vm *engine.ViewModel, width, height int, today time.Time) string {
	grid := vm.MonthGridDates()
	weeks := len(grid) / 7
	cellW := width / 7
	if cellW < 4 {
		cellW = 4
	}
	cellH := (height - 1) / weeks
	if cellH < 2 {
		cellH = 2
	}
	month := vm.PeriodStart().Month()

	var b strings.Builder
	b.WriteString(renderWeekdayHeader(cellW))
	b.WriteByte('\n')

	for w := 0; w < weeks; w++ {
		cells := make([][]string, 7)
		for d := 0; d < 7; d++ {
			cells[d] = renderMonthCell(vm, grid[w*7+d], month, cellW, cellH, today)
		}
		for r := 0; r < cellH; r++ {
			for d := 0; d < 7; d++ {
				b.WriteString(cells[d][r])
			}
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderWeekdayHeader(cellW int) string {
	var b strings.Builder
	for d := 0; d < 7; d++ {
		// Monday-based, matching the grid.
		name := time.Weekday((d + 1) % 7).String()[:3]
		b.WriteString(styleHeader.Render(fitText(name, cellW)))
	}
	return b.String()
}

func renderMonthCell(vm *engine.ViewModel, date time.Time, month time.Month, cellW, cellH int, today time.Time) []string {
	rows := make([]string, cellH)

	dayStyle := styleHeader
	if date.Month() != month {
		dayStyle = styleDim
	}
	if sameDate(date, today) {
		dayStyle = lipgloss.NewStyle().Foreground(colorToday).Bold(true)
	}
	rows[0] = dayStyle.Render(fitText(fmt.Sprintf("%2d", date.Day()), cellW))

	items := vm.ItemsOn(date)
	chipRows := cellH - 1
	for r := 0; r < chipRows; r++ {
		if r == chipRows-1 && len(items) > chipRows {
			rows[r+1] = styleDim.Render(fitText(fmt.Sprintf("+%d more", len(items)-chipRows+1), cellW))
			continue
		}
		if r < len(items) {
			w := items[r]
			rows[r+1] = kindStyle(w.Kind).Render(fitText(w.Kind.Icon()+" "+w.Item.Name, cellW-1)) + " "
			continue
		}
		rows[r+1] = strings.Repeat(" ", cellW)
	}
	return rows
}

// monthDateAt maps a month-view pointer position back to its date, for
// click-to-navigate into day mode.
func monthDateAt(vm *engine.ViewModel, width, height, x, y int) (time.Time, bool) {
	grid := vm.MonthGridDates()
	weeks := len(grid) / 7
	cellW := width / 7
	if cellW < 4 {
		cellW = 4
	}
	cellH := (height - 1) / weeks
	if cellH < 2 {
		cellH = 2
	}
	if y < 1 {
		return time.Time{}, false
	}
	row := (y - 1) / cellH
	col := x / cellW
	if col > 6 {
		col = 6
	}
	idx := row*7 + col
	if row < 0 || col < 0 || idx >= len(grid) {
		return time.Time{}, false
	}
	return grid[idx], true
}
