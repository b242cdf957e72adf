package formatter

import (
	"strconv"

	"github.com/mpetrov/lectern/internal/domain"
)

// FallbackPalette is the fixed rotation for courses without a custom color.
var FallbackPalette = [6]string{
	"#83a598", // blue
	"#d3869b", // purple
	"#8ec07c", // aqua
	"#fe8019", // orange
	"#fabd2f", // yellow
	"#b8bb26", // green
}

// ColorResolver assigns each course a display color that stays stable for
// the life of one run. Construct one per run and pass it around; it is
// plain map state with no synchronization.
type ColorResolver struct {
	cache map[string]string
}

func NewColorResolver() *ColorResolver {
	return &ColorResolver{cache: make(map[string]string)}
}

// key identifies a course in the cache; the name stands in when the
// upstream gave no identifier.
func key(c domain.Course) string {
	if c.ID != 0 {
		return strconv.FormatInt(c.ID, 10)
	}
	return c.Name
}

// Resolve returns the hex color for a course. A custom color always wins
// and refreshes the cache — even over an earlier fallback choice — so a
// course renders identically for the rest of the run. Courses without a
// custom color get a deterministic palette pick from their cache key.
func (r *ColorResolver) Resolve(c domain.Course) string {
	k := key(c)
	if c.Color != "" {
		r.cache[k] = c.Color
		return c.Color
	}
	if hex, ok := r.cache[k]; ok {
		return hex
	}

	sum := 0
	for _, ch := range k {
		sum += int(ch)
	}
	hex := FallbackPalette[sum%len(FallbackPalette)]
	r.cache[k] = hex
	return hex
}

// ResolveAssignment resolves a color from the denormalized course fields an
// assignment carries.
func (r *ColorResolver) ResolveAssignment(a domain.Assignment) string {
	return r.Resolve(domain.Course{ID: a.CourseID, Name: a.CourseName, Color: a.CourseColor})
}
