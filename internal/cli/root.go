package cli

import (
	"github.com/alexanderramin/ember/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	DeviceUserID string
	CheckIns     service.CheckInService
	Summary      service.SummaryService
	Contacts     service.ContactService

	// IsInteractive reports whether stdin is an interactive terminal;
	// interactive forms are offered only when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "ember" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ember",
		Short: "Daily burnout check-ins and risk trends",
	}

	root.AddCommand(
		newCheckInCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newContactCmd(app),
		newWhoamiCmd(app),
	)

	return root
}
