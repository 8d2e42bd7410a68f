package cli

import (
	"fmt"
	"os"

	"github.com/jhale/tripgrid/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var tripRef string

	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: "Import scheduled items from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := resolveTrip(cmd.Context(), app, tripRef)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			res, err := importer.Import(f)
			if err != nil {
				return err
			}
			for i := range res.Items {
				if err := app.Items.Create(cmd.Context(), trip.ID, &res.Items[i]); err != nil {
					return fmt.Errorf("saving %q: %w", res.Items[i].Name, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items into %q\n", len(res.Items), trip.Name)
			for _, sk := range res.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %s\n", sk.UID, sk.Reason)
			}
			return nil
		},
	}

	registerTripFlag(cmd.Flags(), &tripRef)
	_ = cmd.MarkFlagRequired("trip")
	return cmd
}
