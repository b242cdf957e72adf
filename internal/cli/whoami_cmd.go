package cli

import (
	"fmt"

	"github.com/mpetrov/lectern/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who the stored token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			user, err := app.Identity.Whoami(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Bold(user.Name))
			if user.Email != "" {
				fmt.Println(user.Email)
			}
			fmt.Println(formatter.Dim(fmt.Sprintf("%s · user %d", app.Config.BaseURL(), user.ID)))
			return nil
		},
	}
}
