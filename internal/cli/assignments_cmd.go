package cli

import (
	"fmt"
	"time"

	"github.com/mpetrov/lectern/internal/cli/formatter"
	"github.com/mpetrov/lectern/internal/domain"
	"github.com/mpetrov/lectern/internal/schedule"
	"github.com/spf13/cobra"
)

func newAssignmentsCmd(app *App) *cobra.Command {
	var (
		days    int
		weeks   int
		soon    bool
		all     bool
		overdue bool
	)

	cmd := &cobra.Command{
		Use:     "assignments",
		Aliases: []string{"a"},
		Short:   "List assignments grouped by week",
		Long: "Without flags, shows upcoming assignments for the current week plus the\n" +
			"configured number of extra weeks. --soon flattens to everything due within\n" +
			"the look-ahead window; --all and --overdue widen or invert the filter.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			stop := formatter.Spin("Fetching assignments")
			result, err := app.Courses.FetchAllAssignments(cmd.Context())
			stop()
			if err != nil {
				return err
			}

			now := time.Now()
			colors := formatter.NewColorResolver()
			items := result.Assignments

			switch {
			case all:
				schedule.SortByDueDate(items)
				fmt.Print(formatter.AssignmentList(items, now, colors))

			case overdue:
				var late []domain.Assignment
				for _, a := range items {
					if schedule.Overdue(a, now) {
						late = append(late, a)
					}
				}
				schedule.SortByDueDate(late)
				fmt.Print(formatter.AssignmentList(late, now, colors))

			case soon || days > 0:
				window := days
				if window <= 0 {
					window = app.Config.LookaheadDays()
				}
				var due []domain.Assignment
				for _, a := range items {
					if schedule.DueWithin(a, now, window) {
						due = append(due, a)
					}
				}
				schedule.SortByDueDate(due)
				fmt.Print(formatter.AssignmentList(due, now, colors))

			default:
				extra := weeks
				if extra < 0 {
					extra = app.Config.ExtraWeeks()
				}
				startDay := app.Config.WeekStart()

				var upcoming []domain.Assignment
				for _, a := range items {
					if schedule.Due(a, now) {
						upcoming = append(upcoming, a)
					}
				}

				groups := schedule.GroupByWeek(upcoming, now, startDay)
				horizon := schedule.WeekStart(now, startDay).AddDate(0, 0, 7*extra)
				var shown []schedule.WeekGroup
				for _, g := range groups {
					if !g.Start.After(horizon) {
						shown = append(shown, g)
					}
				}
				fmt.Print(formatter.WeekGroups(shown, now, colors))
			}

			fmt.Print(formatter.SkippedNotice(result.SkippedCourses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&soon, "soon", false, "Flat list of work due within the look-ahead window")
	cmd.Flags().IntVar(&days, "days", 0, "Flat list of work due within this many days (implies --soon)")
	cmd.Flags().IntVar(&weeks, "weeks", -1, "Weeks to show beyond the current one")
	cmd.Flags().BoolVar(&all, "all", false, "Every assignment, including undated and past")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "Past-due assignments nobody has submitted")

	return cmd
}
