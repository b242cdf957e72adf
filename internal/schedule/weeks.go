package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/mpetrov/lectern/internal/domain"
)

// WeekGroup is one calendar-week bucket of assignments. Windows are
// contiguous and non-overlapping: [Start, Start+6d 23:59:59.999].
type WeekGroup struct {
	Start       time.Time
	End         time.Time
	Label       string
	Assignments []domain.Assignment
}

// WeekStart rounds t down to midnight of the most recent occurrence of
// startDay, inclusive of t itself when it already falls on that weekday.
// Midnight is computed in t's location.
func WeekStart(t time.Time, startDay time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) - int(startDay) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the last represented instant of the week starting at start.
func WeekEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 6).
		Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
}

// FormatWeekRange renders a week window as "Jan 2-8" when both ends share a
// month, or "Jan 28 - Feb 3" when they straddle one.
func FormatWeekRange(start, end time.Time) string {
	if start.Month() == end.Month() {
		if start.Day() == end.Day() {
			return start.Format("Jan 2")
		}
		return fmt.Sprintf("%s-%d", start.Format("Jan 2"), end.Day())
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
}

// WeekLabel names the week starting at start relative to the week containing
// now: the current week and the one after it get called out, everything else
// is just its date range.
func WeekLabel(start, now time.Time, startDay time.Weekday) string {
	rangeStr := FormatWeekRange(start, WeekEnd(start))
	current := WeekStart(now, startDay)
	switch {
	case start.Equal(current):
		return fmt.Sprintf("This Week (%s)", rangeStr)
	case start.Equal(current.AddDate(0, 0, 7)):
		return fmt.Sprintf("Next Week (%s)", rangeStr)
	}
	return rangeStr
}

// GroupByWeek buckets dated assignments into calendar weeks starting on
// startDay. Undated assignments are dropped. Due times arrive in UTC from
// the wire, so they are normalized into now's location first; week
// boundaries must sit at the user's midnight, not UTC's. Groups come back
// sorted by window start; members are ordered by course position then due
// time. The result is deterministic for a fixed input, now, and start day.
func GroupByWeek(items []domain.Assignment, now time.Time, startDay time.Weekday) []WeekGroup {
	buckets := make(map[int64][]domain.Assignment)
	starts := make(map[int64]time.Time)

	for _, a := range items {
		if a.DueAt == nil {
			continue
		}
		ws := WeekStart(a.DueAt.In(now.Location()), startDay)
		key := ws.UnixMilli()
		buckets[key] = append(buckets[key], a)
		starts[key] = ws
	}

	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	groups := make([]WeekGroup, 0, len(keys))
	for _, k := range keys {
		members := buckets[k]
		SortByCoursePositionThenDate(members)
		start := starts[k]
		groups = append(groups, WeekGroup{
			Start:       start,
			End:         WeekEnd(start),
			Label:       WeekLabel(start, now, startDay),
			Assignments: members,
		})
	}
	return groups
}
