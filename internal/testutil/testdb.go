package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jhale/tripgrid/internal/db"
	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/repository"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns an in-memory SQLite database with the full schema
// applied, closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// SeedTrip creates a trip with the given items and returns it alongside the
// repositories, for tests that start from persisted state.
func SeedTrip(t *testing.T, database *sql.DB, name string, items ...*domain.ScheduledItem) (*domain.Trip, *repository.SQLiteTripRepo, *repository.SQLiteItemRepo) {
	t.Helper()
	ctx := context.Background()
	trips := repository.NewSQLiteTripRepo(database)
	itemRepo := repository.NewSQLiteItemRepo(database)

	trip := NewTrip(name)
	require.NoError(t, trips.Create(ctx, trip))
	for _, item := range items {
		require.NoError(t, itemRepo.Create(ctx, trip.ID, item))
	}
	return trip, trips, itemRepo
}
