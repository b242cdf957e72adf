package formatter

import (
	"strconv"

	"github.com/mpetrov/lectern/internal/domain"
)

// CourseList renders the course table in dashboard order.
func CourseList(courses []domain.Course, colors *ColorResolver) string {
	if len(courses) == 0 {
		return Dim("No active courses.") + "\n"
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		pos := Dim("-")
		if c.Position != domain.DefaultPosition {
			pos = strconv.Itoa(c.Position)
		}
		rows = append(rows, []string{
			pos,
			InHex(c.Code, colors.Resolve(c)),
			StyleFg.Render(c.Name),
			Dim(c.Term),
		})
	}
	return RenderTable([]string{"#", "Code", "Course", "Term"}, rows)
}
