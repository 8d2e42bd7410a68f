package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/repository"
	"github.com/spf13/pflag"
)

// registerTripFlag adds the --trip flag every item-scoped command carries.
func registerTripFlag(fs *pflag.FlagSet, ref *string) {
	fs.StringVar(ref, "trip", "", "trip id or name")
}

// resolveTrip looks a trip up by ID first, then by name.
func resolveTrip(ctx context.Context, app *App, ref string) (*domain.Trip, error) {
	if ref == "" {
		return nil, errors.New("trip is required (use --trip <id or name>)")
	}
	trip, err := app.Trips.GetByID(ctx, ref)
	if err == nil {
		return trip, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	trip, err = app.Trips.GetByName(ctx, ref)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("no trip %q", ref)
	}
	return trip, err
}

// parseWhen accepts "2026-06-02T09:00" or "2026-06-02 09:00" in the given
// zone, falling back to a bare date at midnight.
func parseWhen(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want YYYY-MM-DD[THH:MM])", s)
}
