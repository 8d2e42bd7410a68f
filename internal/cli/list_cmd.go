package cli

import (
	"fmt"

	"github.com/jhale/tripgrid/internal/layout"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var tripRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a trip's scheduled items",
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := resolveTrip(cmd.Context(), app, tripRef)
			if err != nil {
				return err
			}
			items, err := app.Items.ListByTrip(cmd.Context(), trip.ID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Trip %q has no items.\n", trip.Name)
				return nil
			}
			for _, item := range items {
				span := "timed"
				if layout.IsFullDay(&item, app.Config.FullDay) {
					span = "full-day"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-14s %-9s %s → %s  %s\n",
					item.Kind.Icon(), item.Kind, span,
					item.Start.Format("2006-01-02 15:04 MST"),
					item.End.Format("2006-01-02 15:04 MST"),
					item.Name)
			}
			return nil
		},
	}

	registerTripFlag(cmd.Flags(), &tripRef)
	_ = cmd.MarkFlagRequired("trip")
	return cmd
}
