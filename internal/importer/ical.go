// Package importer converts iCalendar payloads into scheduled items.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/jhale/tripgrid/internal/domain"
)

// ErrNoEvents is returned when a calendar parses but contains no VEVENTs.
var ErrNoEvents = errors.New("calendar contains no events")

// Result reports one import pass: the converted items plus per-event skips.
type Result struct {
	Items   []domain.ScheduledItem
	Skipped []SkippedEvent
}

// SkippedEvent records a VEVENT that could not be converted.
type SkippedEvent struct {
	UID    string
	Reason string
}

// Import parses an .ics payload and converts every VEVENT into a scheduled
// item. Events that cannot be converted are skipped and reported, never
// failing the whole import. The kind comes from the CATEGORIES property
// when it names a known kind; everything else imports as an activity.
func Import(r io.Reader) (*Result, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}
	events := cal.Events()
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	res := &Result{}
	for _, ev := range events {
		item, reason := convertEvent(ev)
		if item == nil {
			res.Skipped = append(res.Skipped, SkippedEvent{UID: eventUID(ev), Reason: reason})
			continue
		}
		res.Items = append(res.Items, *item)
	}
	return res, nil
}

func eventUID(ev *ical.VEvent) string {
	if p := ev.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return ""
}

func convertEvent(ev *ical.VEvent) (*domain.ScheduledItem, string) {
	summary := ""
	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}
	if summary == "" {
		return nil, "missing SUMMARY"
	}

	allDay := isAllDay(ev)
	start, err := ev.GetStartAt()
	if err != nil {
		if !allDay {
			return nil, "missing or unparseable DTSTART"
		}
		if start, err = ev.GetAllDayStartAt(); err != nil {
			return nil, "missing or unparseable DTSTART"
		}
	}
	end, err := ev.GetEndAt()
	if err != nil {
		if allDay {
			if end, err = ev.GetAllDayEndAt(); err != nil {
				// DATE events without DTEND last one day.
				end = start.AddDate(0, 0, 1)
			}
		} else {
			end = start
		}
	}

	start = applyTZID(ev, ical.ComponentPropertyDtStart, start)
	end = applyTZID(ev, ical.ComponentPropertyDtEnd, end)
	if allDay {
		start = midnightOf(start)
		end = midnightOf(end)
		if !end.After(start) {
			end = start.AddDate(0, 0, 1)
		}
	}

	kind := kindFromCategories(ev)
	now := time.Now().UTC()
	item := &domain.ScheduledItem{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      summary,
		Start:     start,
		End:       end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch kind {
	case domain.KindLodging:
		item.Lodging = &domain.LodgingDetail{Address: locationOf(ev)}
	case domain.KindTransportation:
		item.Transport = &domain.TransportDetail{}
	}
	return item, ""
}

// isAllDay detects DATE-valued DTSTART (VALUE=DATE or no time part).
func isAllDay(ev *ical.VEvent) bool {
	p := ev.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// applyTZID re-reads t in the event's TZID location when one is declared,
// keeping the stored-timezone fidelity the layout engine depends on.
func applyTZID(ev *ical.VEvent, prop ical.ComponentProperty, t time.Time) time.Time {
	p := ev.GetProperty(prop)
	if p == nil {
		return t
	}
	tzs, ok := p.ICalParameters["TZID"]
	if !ok || len(tzs) == 0 {
		return t
	}
	loc, err := time.LoadLocation(tzs[0])
	if err != nil {
		return t
	}
	return t.In(loc)
}

func kindFromCategories(ev *ical.VEvent) domain.ItemKind {
	for _, p := range ev.GetProperties(ical.ComponentPropertyCategories) {
		for _, cat := range strings.Split(p.Value, ",") {
			cat = strings.ToLower(strings.TrimSpace(cat))
			switch cat {
			case "lodging", "hotel", "accommodation":
				return domain.KindLodging
			case "transportation", "transport", "travel", "flight", "train":
				return domain.KindTransportation
			}
		}
	}
	return domain.KindActivity
}

func locationOf(ev *ical.VEvent) string {
	if p := ev.GetProperty(ical.ComponentPropertyLocation); p != nil {
		return p.Value
	}
	return ""
}

func midnightOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
