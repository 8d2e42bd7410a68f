package repository

import (
	"context"

	"github.com/jhale/tripgrid/internal/domain"
)

// TripRepo persists trips.
type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	GetByName(ctx context.Context, name string) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// ItemRepo persists scheduled items.
type ItemRepo interface {
	Create(ctx context.Context, tripID string, item *domain.ScheduledItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduledItem, error)
	ListByTrip(ctx context.Context, tripID string) ([]domain.ScheduledItem, error)
	Update(ctx context.Context, item *domain.ScheduledItem) error
	Delete(ctx context.Context, id string) error
}
