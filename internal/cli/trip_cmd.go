package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhale/tripgrid/internal/domain"
	"github.com/spf13/cobra"
)

func newTripCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage trips",
	}
	cmd.AddCommand(newTripCreateCmd(app), newTripListCmd(app), newTripDeleteCmd(app))
	return cmd
}

func newTripCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			trip := &domain.Trip{
				ID:        uuid.NewString(),
				Name:      args[0],
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := app.Trips.Create(cmd.Context(), trip); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created trip %q (%s)\n", trip.Name, trip.ID)
			return nil
		},
	}
}

func newTripListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(trips) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No trips yet.")
				return nil
			}
			for _, t := range trips {
				items, err := app.Items.ListByTrip(cmd.Context(), t.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%d items)\n", t.ID, t.Name, len(items))
			}
			return nil
		},
	}
}

func newTripDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id or name>",
		Short: "Delete a trip and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := resolveTrip(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.Delete(cmd.Context(), trip.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted trip %q\n", trip.Name)
			return nil
		},
	}
}
