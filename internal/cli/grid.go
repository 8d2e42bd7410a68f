package cli

import (
	"math"
	"strings"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/engine"
	"github.com/jhale/tripgrid/internal/geometry"
)

// The grid painter turns one day's placed items into a column of terminal
// rows. Geometry comes straight from the engine: the hour height is a row
// count, YOffset gives the row of a wall-clock time, and overlap placements
// split the column width. Day and week views share it.

// rowExtents returns the half-open row range [startRow, endRow) an item
// occupies within date's 24-hour column, clamped to the column and to a
// one-row minimum so degenerate items stay visible.
func rowExtents(item domain.ScheduledItem, date time.Time, hourRows int) (int, int) {
	total := 24 * hourRows
	hh := float64(hourRows)
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	startRow := 0
	if !item.Start.Before(dayEnd) {
		return 0, 0
	}
	if item.Start.After(dayStart) {
		startRow = int(math.Round(geometry.YOffset(item.Start, hh)))
	}
	endRow := total
	if item.End.Before(dayEnd) {
		endRow = int(math.Round(geometry.YOffset(item.End, hh)))
	}
	if startRow >= total {
		startRow = total - 1
	}
	if endRow <= startRow {
		endRow = startRow + 1
	}
	if endRow > total {
		endRow = total
	}
	return startRow, endRow
}

// columnSpec describes one day column to paint.
type columnSpec struct {
	date     time.Time
	placed   []engine.PlacedItem
	preview  *previewBlock
	width    int
	hourRows int
}

// previewBlock is the live drag rectangle.
type previewBlock struct {
	startRow, endRow int
	label            string
}

type paintedItem struct {
	engine.PlacedItem
	startRow, endRow int
}

// renderColumn paints one day column as a slice of equally wide rows.
func renderColumn(spec columnSpec) []string {
	width := spec.width
	if width < 1 {
		width = 1
	}
	total := 24 * spec.hourRows

	painted := make([]paintedItem, 0, len(spec.placed))
	for _, p := range spec.placed {
		s, e := rowExtents(p.Wrapper.Item, spec.date, spec.hourRows)
		if s == e {
			continue
		}
		painted = append(painted, paintedItem{PlacedItem: p, startRow: s, endRow: e})
	}

	rows := make([]string, total)
	for r := 0; r < total; r++ {
		if spec.preview != nil && r >= spec.preview.startRow && r < spec.preview.endRow {
			label := ""
			if r == spec.preview.startRow {
				label = spec.preview.label
			}
			rows[r] = styleDraft.Render(fitText(label, width))
			continue
		}
		rows[r] = renderGridRow(painted, r, width, spec.hourRows)
	}
	return rows
}

// renderGridRow paints one row: the sub-cells of every item covering it,
// background fill elsewhere.
func renderGridRow(painted []paintedItem, r, width, hourRows int) string {
	count := 0
	for _, p := range painted {
		if r >= p.startRow && r < p.endRow && p.Placement.ColumnCount > count {
			count = p.Placement.ColumnCount
		}
	}
	if count == 0 {
		return backgroundRow(r, width, hourRows)
	}

	subW := width / count
	if subW < 1 {
		subW = 1
		count = width
	}
	var b strings.Builder
	used := 0
	for sub := 0; sub < count && used < width; sub++ {
		w := subW
		if sub == count-1 {
			w = width - used
		}
		seg := fitText("", w)
		styled := false
		for _, p := range painted {
			if p.Placement.Column != sub || r < p.startRow || r >= p.endRow {
				continue
			}
			label := ""
			if r == p.startRow {
				label = p.Wrapper.Kind.Icon() + " " + p.Wrapper.Item.Name
			}
			seg = kindStyle(p.Wrapper.Kind).Render(fitText(label, w))
			styled = true
			break
		}
		if !styled {
			seg = backgroundRow(r, w, hourRows)
		}
		b.WriteString(seg)
		used += w
	}
	return b.String()
}

func backgroundRow(r, width, hourRows int) string {
	if hourRows > 0 && r%hourRows == 0 {
		return styleGrid.Render(strings.Repeat("┄", width))
	}
	return strings.Repeat(" ", width)
}

// hourGutter renders the time labels column for a day grid.
func hourGutter(hourRows, gutterWidth int) []string {
	rows := make([]string, 24*hourRows)
	for r := range rows {
		if r%hourRows == 0 {
			label := time.Date(0, 1, 1, r/hourRows, 0, 0, 0, time.UTC).Format("15:04")
			rows[r] = styleDim.Render(fitText(label, gutterWidth))
		} else {
			rows[r] = strings.Repeat(" ", gutterWidth)
		}
	}
	return rows
}

// hitTestColumn finds the item under a pointer position within one day
// column, honoring the sub-column split.
func hitTestColumn(placed []engine.PlacedItem, date time.Time, hourRows, width, x, row int) (string, bool) {
	count := 0
	var covering []paintedItem
	for _, p := range placed {
		s, e := rowExtents(p.Wrapper.Item, date, hourRows)
		if row < s || row >= e {
			continue
		}
		covering = append(covering, paintedItem{PlacedItem: p, startRow: s, endRow: e})
		if p.Placement.ColumnCount > count {
			count = p.Placement.ColumnCount
		}
	}
	if count == 0 || width < 1 {
		return "", false
	}
	subW := width / count
	if subW < 1 {
		subW = 1
	}
	idx := x / subW
	if idx >= count {
		idx = count - 1
	}
	for _, p := range covering {
		if p.Placement.Column == idx {
			return p.Wrapper.ID, true
		}
	}
	return "", false
}

// fitText truncates or pads s to exactly w cells.
func fitText(s string, w int) string {
	if w < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > w {
		runes = runes[:w]
	}
	return string(runes) + strings.Repeat(" ", w-len(runes))
}
