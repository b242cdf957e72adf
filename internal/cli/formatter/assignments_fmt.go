package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/mpetrov/lectern/internal/domain"
	"github.com/mpetrov/lectern/internal/schedule"
)

// RelativeDue renders a human-friendly distance to a due time.
func RelativeDue(due time.Time, now time.Time) string {
	days := int(math.Round(due.Sub(now).Hours() / 24))
	switch {
	case days < -1:
		return fmt.Sprintf("%dd overdue", -days)
	case days == -1:
		return "due yesterday"
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days < 14:
		return fmt.Sprintf("due in %dd", days)
	}
	return fmt.Sprintf("due in %dw", days/7)
}

// assignmentRow builds one table row: due date colored by urgency, course
// code in the course's display color, then the assignment name and points.
func assignmentRow(a domain.Assignment, now time.Time, colors *ColorResolver) []string {
	due := Dim("no due date")
	rel := ""
	if a.DueAt != nil {
		style := UrgencyStyle(a.DueAt, now)
		due = style.Render(a.DueAt.Format("Mon Jan 2 15:04"))
		rel = style.Render(RelativeDue(*a.DueAt, now))
	}

	points := ""
	if a.Points != nil {
		points = Dim(fmt.Sprintf("%g pts", *a.Points))
	}

	code := a.CourseCode
	if code == "" {
		code = a.CourseName
	}

	return []string{
		InHex(code, colors.ResolveAssignment(a)),
		StyleFg.Render(a.Name),
		due,
		rel,
		points,
	}
}

// AssignmentList renders assignments as a flat table.
func AssignmentList(items []domain.Assignment, now time.Time, colors *ColorResolver) string {
	if len(items) == 0 {
		return Dim("Nothing here.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, assignmentRow(a, now, colors))
	}
	return RenderTable([]string{"Course", "Assignment", "Due", "", "Points"}, rows)
}

// WeekGroups renders week buckets with their labels as section headers.
func WeekGroups(groups []schedule.WeekGroup, now time.Time, colors *ColorResolver) string {
	if len(groups) == 0 {
		return Dim("Nothing due.") + "\n"
	}
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(g.Label))
		b.WriteString("\n")
		b.WriteString(AssignmentList(g.Assignments, now, colors))
	}
	return b.String()
}

// SkippedNotice renders the access-restricted course list, or nothing.
func SkippedNotice(skipped []string) string {
	if len(skipped) == 0 {
		return ""
	}
	return StyleYellow.Render(fmt.Sprintf("Skipped (restricted access): %s", strings.Join(skipped, ", "))) + "\n"
}

// AssignmentDetail renders one assignment in full, with the description
// passed through the markdown renderer.
func AssignmentDetail(a domain.Assignment, now time.Time, colors *ColorResolver) string {
	var b strings.Builder

	b.WriteString(Header(a.Name))
	b.WriteString("\n")
	b.WriteString(InHex(fmt.Sprintf("%s (%s)", a.CourseName, a.CourseCode), colors.ResolveAssignment(a)))
	b.WriteString("\n")

	if a.DueAt != nil {
		style := UrgencyStyle(a.DueAt, now)
		b.WriteString(fmt.Sprintf("%s %s (%s)\n",
			Bold("Due:"),
			style.Render(a.DueAt.Format("Mon Jan 2, 2006 15:04")),
			style.Render(RelativeDue(*a.DueAt, now))))
	} else {
		b.WriteString(Bold("Due:") + " " + Dim("no due date") + "\n")
	}

	if a.Points != nil {
		b.WriteString(fmt.Sprintf("%s %g\n", Bold("Points:"), *a.Points))
	}
	if len(a.SubmissionTypes) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Submit via:"), strings.Join(a.SubmissionTypes, ", ")))
	}

	b.WriteString("\n")
	b.WriteString(RenderDescription(a.Description))
	b.WriteString("\n")
	return b.String()
}

// RenderDescription renders an assignment description for the terminal.
// Descriptions arrive as markup; on renderer failure the raw text is shown
// rather than nothing.
func RenderDescription(desc string) string {
	if strings.TrimSpace(desc) == "" {
		return Dim("(no description)")
	}
	out, err := glamour.Render(desc, "dark")
	if err != nil {
		return desc
	}
	return strings.TrimRight(out, "\n")
}
