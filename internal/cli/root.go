package cli

import (
	"time"

	"github.com/jhale/tripgrid/internal/domain"
	"github.com/jhale/tripgrid/internal/engine"
	"github.com/jhale/tripgrid/internal/repository"
	"github.com/spf13/cobra"
)

// App holds the repositories and configuration CLI commands run against.
type App struct {
	Trips   repository.TripRepo
	Items   repository.ItemRepo
	Config  engine.Config
	Loc     *time.Location
	Quality domain.QualityObserver
}

// NewRootCmd creates the top-level "tripgrid" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tripgrid",
		Short: "Trip calendar and timeline viewer",
	}

	root.AddCommand(
		newTripCmd(app),
		newAddCmd(app),
		newListCmd(app),
		newImportCmd(app),
		newViewCmd(app),
	)

	return root
}
