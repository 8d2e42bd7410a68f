package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SQLiteTripRepo implements TripRepo using a SQLite database.
type SQLiteTripRepo struct {
	db *sql.DB
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(db *sql.DB) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: db}
}

func (r *SQLiteTripRepo) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM trips WHERE id = ?`, id)
	return scanTrip(row)
}

func (r *SQLiteTripRepo) GetByName(ctx context.Context, name string) (*domain.Trip, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM trips WHERE name = ?`, name)
	return scanTrip(row)
}

func (r *SQLiteTripRepo) List(ctx context.Context) ([]*domain.Trip, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM trips ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var t domain.Trip
	var created, updated string
	if err := row.Scan(&t.ID, &t.Name, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning trip: %w", err)
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, created)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &t, nil
}
