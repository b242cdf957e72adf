package cli

import (
	"fmt"
	"time"

	"github.com/mpetrov/lectern/internal/cli/formatter"
	"github.com/mpetrov/lectern/internal/schedule"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Pick an assignment and show its full details",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}
			if err := requireTerminal(app); err != nil {
				return err
			}

			stop := formatter.Spin("Fetching assignments")
			result, err := app.Courses.FetchAllAssignments(cmd.Context())
			stop()
			if err != nil {
				return err
			}
			if len(result.Assignments) == 0 {
				fmt.Println(formatter.Dim("No assignments found."))
				return nil
			}

			items := result.Assignments
			schedule.SortByDueDate(items)

			picked, err := pickAssignment("Which assignment?", items)
			if err != nil {
				if cancelled(err) {
					return nil
				}
				return err
			}

			colors := formatter.NewColorResolver()
			fmt.Print(formatter.AssignmentDetail(picked, time.Now(), colors))
			return nil
		},
	}
}
