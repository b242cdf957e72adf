package schedule

import (
	"sort"

	"github.com/mpetrov/lectern/internal/domain"
)

// SortByDueDate sorts assignments ascending by due time. Undated items sort
// after every dated one; equal due times (or two undated items) break the
// tie by case-sensitive course name. The sort is stable.
func SortByDueDate(items []domain.Assignment) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		if (a.DueAt == nil) != (b.DueAt == nil) {
			return a.DueAt != nil // dated before undated
		}
		if a.DueAt != nil && !a.DueAt.Equal(*b.DueAt) {
			return a.DueAt.Before(*b.DueAt)
		}
		return a.CourseName < b.CourseName
	})
}

// SortByCoursePositionThenDate orders by dashboard position ascending, then
// due time ascending with undated items last. There is no tertiary key;
// stability preserves input order for full ties.
func SortByCoursePositionThenDate(items []domain.Assignment) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		if a.CoursePosition != b.CoursePosition {
			return a.CoursePosition < b.CoursePosition
		}
		if (a.DueAt == nil) != (b.DueAt == nil) {
			return a.DueAt != nil
		}
		if a.DueAt != nil && !a.DueAt.Equal(*b.DueAt) {
			return a.DueAt.Before(*b.DueAt)
		}
		return false
	})
}
