// Package schedule holds the pure temporal logic of the client: due-window
// predicates, ordering, and calendar-week grouping. Every function takes the
// reference time explicitly so behavior is deterministic under test.
package schedule

import (
	"time"

	"github.com/mpetrov/lectern/internal/domain"
)

// DueWithin reports whether a is due between now and now plus the given
// number of days. Past-due work is excluded even when it would fall inside
// the window arithmetic. An assignment with no due time is never due soon.
func DueWithin(a domain.Assignment, now time.Time, days int) bool {
	if a.DueAt == nil {
		return false
	}
	if a.DueAt.Before(now) {
		return false
	}
	return !a.DueAt.After(now.Add(time.Duration(days) * 24 * time.Hour))
}

// Overdue reports whether a is past due and still unsubmitted. The
// HasSubmissions flag means "some student submitted", not "this user
// submitted" — the API offers nothing better — so it must only ever act as
// the secondary filter it is here, never as a visibility signal on its own.
func Overdue(a domain.Assignment, now time.Time) bool {
	return a.DueAt != nil && a.DueAt.Before(now) && !a.HasSubmissions
}

// Due reports whether a has a due time that has not passed yet.
func Due(a domain.Assignment, now time.Time) bool {
	return a.DueAt != nil && !a.DueAt.Before(now)
}
