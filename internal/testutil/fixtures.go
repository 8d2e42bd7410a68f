package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhale/tripgrid/internal/domain"
)

// NewTrip builds a trip fixture.
func NewTrip(name string) *domain.Trip {
	now := time.Now().UTC()
	return &domain.Trip{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewItem builds a scheduled item fixture of the given kind and range.
func NewItem(kind domain.ItemKind, name string, start, end time.Time) *domain.ScheduledItem {
	now := time.Now().UTC()
	item := &domain.ScheduledItem{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		Start:     start,
		End:       end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch kind {
	case domain.KindTransportation:
		item.Transport = &domain.TransportDetail{Mode: domain.TransportFlight}
	case domain.KindLodging:
		item.Lodging = &domain.LodgingDetail{}
	}
	return item
}
