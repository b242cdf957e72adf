package cli

import (
	"fmt"

	"github.com/mpetrov/lectern/internal/cli/formatter"
	"github.com/mpetrov/lectern/internal/domain"
	"github.com/spf13/cobra"
)

func newSubmitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [file]",
		Short: "Submit a file to an assignment",
		Long: "Walks through course and assignment selection, then uploads the file via\n" +
			"the three-step submission handshake. Only assignments that accept file\n" +
			"uploads are offered.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}
			if err := requireTerminal(app); err != nil {
				return err
			}

			stop := formatter.Spin("Fetching courses")
			courses, err := app.Courses.FetchCourses(cmd.Context())
			stop()
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Println(formatter.Dim("No active courses."))
				return nil
			}

			colors := formatter.NewColorResolver()
			course, err := pickCourse(courses, colors)
			if err != nil {
				if cancelled(err) {
					return nil
				}
				return err
			}

			stop = formatter.Spin("Fetching assignments")
			assignments, err := app.Courses.FetchCourseAssignments(cmd.Context(), course)
			stop()
			if err != nil {
				return err
			}

			var uploadable []domain.Assignment
			for _, a := range assignments {
				if a.AcceptsUpload() {
					uploadable = append(uploadable, a)
				}
			}
			if len(uploadable) == 0 {
				fmt.Println(formatter.Dim("No assignments in this course accept file uploads."))
				return nil
			}

			assignment, err := pickAssignment("Which assignment?", uploadable)
			if err != nil {
				if cancelled(err) {
					return nil
				}
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				path, err = promptFilePath()
				if err != nil {
					if cancelled(err) {
						return nil
					}
					return err
				}
			}

			stop = formatter.Spin("Uploading")
			file, err := app.Submissions.SubmitFile(cmd.Context(), course.ID, assignment.ID, path)
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s %s to %s\n",
				formatter.StyleGreen.Render("Submitted"),
				formatter.Bold(file.DisplayName),
				assignment.Name)
			return nil
		},
	}

	return cmd
}
