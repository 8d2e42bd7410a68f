package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
)

// itemColumns is the canonical SELECT column list for scheduled_items.
const itemColumns = `id, kind, name, start_at, end_at, start_zone, end_zone,
		cost_amount, cost_currency,
		transport_mode, transport_origin, transport_dest, lodging_address,
		created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db *sql.DB
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(db *sql.DB) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, tripID string, item *domain.ScheduledItem) error {
	startVal, startZone := storeTime(item.Start)
	endVal, endZone := storeTime(item.End)
	var costAmount interface{}
	var costCurrency interface{}
	if item.Cost != nil {
		costAmount = item.Cost.Amount
		costCurrency = item.Cost.Currency
	}
	var mode, origin, dest, address interface{}
	if item.Transport != nil {
		mode = string(item.Transport.Mode)
		origin = nullableString(item.Transport.Origin)
		dest = nullableString(item.Transport.Dest)
	}
	if item.Lodging != nil {
		address = nullableString(item.Lodging.Address)
	}

	query := `INSERT INTO scheduled_items (id, trip_id, kind, name,
		start_at, end_at, start_zone, end_zone,
		cost_amount, cost_currency,
		transport_mode, transport_origin, transport_dest, lodging_address,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		tripID,
		string(item.Kind),
		item.Name,
		startVal, endVal, startZone, endZone,
		costAmount, costCurrency,
		mode, origin, dest, address,
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scheduled item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ScheduledItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM scheduled_items WHERE id = ?`, id)
	return scanItem(row)
}

func (r *SQLiteItemRepo) ListByTrip(ctx context.Context, tripID string) ([]domain.ScheduledItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM scheduled_items WHERE trip_id = ? ORDER BY start_at, id`, tripID)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled items: %w", err)
	}
	defer rows.Close()

	var items []domain.ScheduledItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.ScheduledItem) error {
	startVal, startZone := storeTime(item.Start)
	endVal, endZone := storeTime(item.End)
	query := `UPDATE scheduled_items SET name = ?, start_at = ?, end_at = ?,
		start_zone = ?, end_zone = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.Name, startVal, endVal, startZone, endZone,
		time.Now().UTC().Format(time.RFC3339), item.ID)
	if err != nil {
		return fmt.Errorf("updating scheduled item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scheduled item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanItem(row rowScanner) (*domain.ScheduledItem, error) {
	var item domain.ScheduledItem
	var kind, startVal, endVal, startZone, endZone, created, updated string
	var costAmount sql.NullFloat64
	var costCurrency, mode, origin, dest, address sql.NullString

	err := row.Scan(&item.ID, &kind, &item.Name,
		&startVal, &endVal, &startZone, &endZone,
		&costAmount, &costCurrency,
		&mode, &origin, &dest, &address,
		&created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning scheduled item: %w", err)
	}

	item.Kind = domain.ItemKind(kind)
	if item.Start, err = loadTime(startVal, startZone); err != nil {
		return nil, fmt.Errorf("parsing item start: %w", err)
	}
	if item.End, err = loadTime(endVal, endZone); err != nil {
		return nil, fmt.Errorf("parsing item end: %w", err)
	}
	if costAmount.Valid {
		item.Cost = &domain.Money{Amount: costAmount.Float64, Currency: stringOrEmpty(costCurrency)}
	}
	if mode.Valid {
		item.Transport = &domain.TransportDetail{
			Mode:   domain.TransportMode(mode.String),
			Origin: stringOrEmpty(origin),
			Dest:   stringOrEmpty(dest),
		}
	}
	if address.Valid {
		item.Lodging = &domain.LodgingDetail{Address: address.String}
	}
	item.CreatedAt, _ = time.Parse(time.RFC3339, created)
	item.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &item, nil
}
