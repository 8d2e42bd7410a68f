package cli

import (
	"strings"
	"time"

	"github.com/jhale/tripgrid/internal/engine"
)

// The day view shares the timed-grid composition with the week view (a
// single wide column), but carries a fuller header: the long-form date and
// the day's full-day items listed as bars above the grid.

func renderDayHeader(vm *engine.ViewModel, geo weekGeometry, today time.Time) string {
	date := geo.dates[0]
	label := date.Format("Monday, January 2 2006")
	if sameDate(date, today) {
		label += "  (today)"
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	b.WriteString(styleHeader.Render(fitText(label, geo.colWidth)))
	return b.String()
}
