package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhale/tripgrid/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		tripRef  string
		kindStr  string
		startStr string
		endStr   string
		zoneStr  string
		cost     float64
		currency string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a scheduled item to a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidItemKinds[kindStr] {
				return fmt.Errorf("invalid kind %q (want lodging, transportation or activity)", kindStr)
			}
			trip, err := resolveTrip(cmd.Context(), app, tripRef)
			if err != nil {
				return err
			}

			loc := app.Loc
			if zoneStr != "" {
				if loc, err = time.LoadLocation(zoneStr); err != nil {
					return fmt.Errorf("resolving timezone %q: %w", zoneStr, err)
				}
			}
			start, err := parseWhen(startStr, loc)
			if err != nil {
				return err
			}
			end, err := parseWhen(endStr, loc)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			item := &domain.ScheduledItem{
				ID:        uuid.NewString(),
				Kind:      domain.ItemKind(kindStr),
				Name:      args[0],
				Start:     start,
				End:       end,
				CreatedAt: now,
				UpdatedAt: now,
			}
			domain.Normalize(item, app.Quality)
			if cost > 0 {
				item.Cost = &domain.Money{Amount: cost, Currency: currency}
			}
			switch item.Kind {
			case domain.KindLodging:
				item.Lodging = &domain.LodgingDetail{}
			case domain.KindTransportation:
				item.Transport = &domain.TransportDetail{}
			}

			if err := app.Items.Create(cmd.Context(), trip.ID, item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q %s → %s\n",
				item.Kind, item.Name,
				item.Start.Format("2006-01-02 15:04"),
				item.End.Format("2006-01-02 15:04"))
			return nil
		},
	}

	registerTripFlag(cmd.Flags(), &tripRef)
	cmd.Flags().StringVar(&kindStr, "kind", "activity", "lodging, transportation or activity")
	cmd.Flags().StringVar(&startStr, "start", "", "start time (YYYY-MM-DD[THH:MM])")
	cmd.Flags().StringVar(&endStr, "end", "", "end time (YYYY-MM-DD[THH:MM])")
	cmd.Flags().StringVar(&zoneStr, "zone", "", "IANA timezone for start/end (default: display zone)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "optional cost amount")
	cmd.Flags().StringVar(&currency, "currency", "USD", "cost currency")
	_ = cmd.MarkFlagRequired("trip")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
