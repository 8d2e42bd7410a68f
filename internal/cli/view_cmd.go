package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var tripRef string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("view requires an interactive terminal")
			}

			trip, err := resolveTrip(cmd.Context(), app, tripRef)
			if err != nil {
				return err
			}
			items, err := app.Items.ListByTrip(cmd.Context(), trip.ID)
			if err != nil {
				return err
			}

			model := newCalendarModel(app, trip, items)
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&tripRef, "trip", "t", "", "trip ID or name")
	return cmd
}
