package cli

import (
	"github.com/mpetrov/lectern/internal/canvas"
	"github.com/mpetrov/lectern/internal/config"
	"github.com/mpetrov/lectern/internal/service"
	"github.com/spf13/cobra"
)

// App holds the configuration and service interfaces the commands run against.
type App struct {
	Config      *config.Config
	Courses     service.CourseService
	Identity    service.IdentityService
	Submissions service.SubmissionService

	// IsInteractive reports whether stdin is a terminal; selection forms
	// refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lectern" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lectern",
		Short:         "Terminal client for your course load",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newWhoamiCmd(app),
		newCoursesCmd(app),
		newAssignmentsCmd(app),
		newShowCmd(app),
		newSubmitCmd(app),
	)

	return root
}

// requireAuth guards commands that talk to the API.
func requireAuth(app *App) error {
	if !app.Config.IsAuthenticated() {
		return canvas.ErrNotAuthenticated
	}
	return nil
}
