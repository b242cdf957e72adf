package schedule

import (
	"testing"
	"time"

	"github.com/mpetrov/lectern/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAssignment(name, course string, pos int, due *time.Time) domain.Assignment {
	return domain.Assignment{
		Name:           name,
		CourseName:     course,
		CoursePosition: pos,
		DueAt:          due,
	}
}

func TestSortByDueDate_Ascending(t *testing.T) {
	items := []domain.Assignment{
		makeAssignment("late", "A", 1, dueIn(10*24*time.Hour)),
		makeAssignment("early", "B", 2, dueIn(24*time.Hour)),
		makeAssignment("mid", "C", 3, dueIn(5*24*time.Hour)),
	}

	SortByDueDate(items)

	assert.Equal(t, []string{"early", "mid", "late"},
		[]string{items[0].Name, items[1].Name, items[2].Name})
}

func TestSortByDueDate_UndatedLast(t *testing.T) {
	items := []domain.Assignment{
		makeAssignment("undated", "A", 1, nil),
		makeAssignment("dated", "B", 2, dueIn(24*time.Hour)),
	}

	SortByDueDate(items)

	require.NotNil(t, items[0].DueAt)
	assert.Equal(t, "dated", items[0].Name)
	assert.Equal(t, "undated", items[1].Name)

	// Regardless of input order.
	items = []domain.Assignment{
		makeAssignment("dated", "B", 2, dueIn(24*time.Hour)),
		makeAssignment("undated", "A", 1, nil),
	}
	SortByDueDate(items)
	assert.Equal(t, "dated", items[0].Name)
}

func TestSortByDueDate_CourseNameTiebreak(t *testing.T) {
	due := dueIn(48 * time.Hour)
	items := []domain.Assignment{
		makeAssignment("one", "Zoology", 1, due),
		makeAssignment("two", "Algebra", 2, due),
	}

	SortByDueDate(items)

	assert.Equal(t, "Algebra", items[0].CourseName, "equal due times break by course name")

	// The tie-break is case-sensitive: uppercase sorts before lowercase.
	items = []domain.Assignment{
		makeAssignment("one", "algebra", 1, nil),
		makeAssignment("two", "Zoology", 2, nil),
	}
	SortByDueDate(items)
	assert.Equal(t, "Zoology", items[0].CourseName)
}

func TestSortByDueDate_Stable(t *testing.T) {
	due := dueIn(48 * time.Hour)
	items := []domain.Assignment{
		makeAssignment("first", "Same", 1, due),
		makeAssignment("second", "Same", 1, due),
		makeAssignment("third", "Same", 1, nil),
		makeAssignment("fourth", "Same", 1, nil),
	}

	SortByDueDate(items)

	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
	assert.Equal(t, "third", items[2].Name)
	assert.Equal(t, "fourth", items[3].Name)
}

func TestSortByCoursePositionThenDate(t *testing.T) {
	items := []domain.Assignment{
		makeAssignment("b-early", "B", 2, dueIn(24*time.Hour)),
		makeAssignment("a-late", "A", 1, dueIn(9*24*time.Hour)),
		makeAssignment("a-undated", "A", 1, nil),
		makeAssignment("a-early", "A", 1, dueIn(48*time.Hour)),
	}

	SortByCoursePositionThenDate(items)

	// Position 1 first regardless of date, then within the course by due
	// time with undated last.
	assert.Equal(t, []string{"a-early", "a-late", "a-undated", "b-early"},
		[]string{items[0].Name, items[1].Name, items[2].Name, items[3].Name})
}

func TestSortByCoursePositionThenDate_DefaultPositionLast(t *testing.T) {
	items := []domain.Assignment{
		makeAssignment("unranked", "U", domain.DefaultPosition, dueIn(time.Hour)),
		makeAssignment("ranked", "R", 5, dueIn(10*24*time.Hour)),
	}

	SortByCoursePositionThenDate(items)

	assert.Equal(t, "ranked", items[0].Name)
}

func TestSortByCoursePositionThenDate_FullTieKeepsOrder(t *testing.T) {
	due := dueIn(24 * time.Hour)
	items := []domain.Assignment{
		makeAssignment("first", "A", 1, due),
		makeAssignment("second", "A", 1, due),
	}

	SortByCoursePositionThenDate(items)

	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
}
