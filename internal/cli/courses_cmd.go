package cli

import (
	"fmt"

	"github.com/mpetrov/lectern/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "courses",
		Aliases: []string{"c"},
		Short:   "List active courses in dashboard order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			stop := formatter.Spin("Fetching courses")
			courses, err := app.Courses.FetchCourses(cmd.Context())
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.CourseList(courses, formatter.NewColorResolver()))
			return nil
		},
	}
}
