package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jhale/tripgrid/internal/engine"
)

// The compact calendar: a mini month grid used as a date picker on narrow
// layouts. Days with scheduled items carry a marker dot; the cursor moves
// with the arrow keys and enter jumps the main view to the chosen date.

type compactCal struct {
	vm     *engine.ViewModel
	cursor time.Time
}

func newCompactCal(vm *engine.ViewModel) *compactCal {
	return &compactCal{vm: vm, cursor: vm.PeriodStart()}
}

func (c *compactCal) move(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
}

func (c *compactCal) render(today time.Time) string {
	first := time.Date(c.cursor.Year(), c.cursor.Month(), 1, 0, 0, 0, 0, c.cursor.Location())
	lead := (int(first.Weekday()) + 6) % 7
	gridStart := first.AddDate(0, 0, -lead)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	cells := lead + daysInMonth
	if rem := cells % 7; rem != 0 {
		cells += 7 - rem
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(c.cursor.Format("January 2006")))
	b.WriteByte('\n')
	b.WriteString(styleDim.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteByte('\n')

	for i := 0; i < cells; i++ {
		date := gridStart.AddDate(0, 0, i)
		label := fmt.Sprintf("%2d", date.Day())
		style := lipgloss.NewStyle()
		switch {
		case sameDate(date, c.cursor):
			style = style.Reverse(true)
		case sameDate(date, today):
			style = style.Foreground(colorToday).Bold(true)
		case date.Month() != c.cursor.Month():
			style = styleDim
		}
		b.WriteString(style.Render(label))
		if len(c.vm.ItemsOn(date)) > 0 {
			b.WriteString(styleHeader.Render("·"))
		} else {
			b.WriteByte(' ')
		}
		if i%7 == 6 {
			b.WriteByte('\n')
		}
	}
	b.WriteString(styleDim.Render("enter: go · esc: close"))
	return b.String()
}
