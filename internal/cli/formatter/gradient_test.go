package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var gradientNow = time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

func atDays(d float64) *time.Time {
	t := gradientNow.Add(time.Duration(d * 24 * float64(time.Hour)))
	return &t
}

func TestUrgencyHex_BoundaryStops(t *testing.T) {
	cases := []struct {
		name string
		days float64
		want string
	}{
		{"one day out is pure red", 1, "#fb4934"},
		{"seven days out is pure yellow", 7, "#fabd2f"},
		{"thirteen days out is pure green", 13, "#b8bb26"},
		{"under a day stays red", 0.25, "#fb4934"},
		{"overdue stays red", -3, "#fb4934"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UrgencyHex(atDays(tc.days), gradientNow))
		})
	}
}

func TestUrgencyHex_FlatBeyondLastStop(t *testing.T) {
	assert.Equal(t, UrgencyHex(atDays(13), gradientNow), UrgencyHex(atDays(20), gradientNow))
	assert.Equal(t, UrgencyHex(atDays(20), gradientNow), UrgencyHex(atDays(365), gradientNow))
}

func TestUrgencyHex_BlendsBetweenStops(t *testing.T) {
	mid := UrgencyHex(atDays(4), gradientNow)

	assert.Regexp(t, `^#[0-9a-f]{6}$`, mid)
	assert.NotEqual(t, "#fb4934", mid)
	assert.NotEqual(t, "#fabd2f", mid)
}

func TestUrgencyHex_NoDueDateIsNeutralConstant(t *testing.T) {
	assert.Equal(t, NeutralHex, UrgencyHex(nil, gradientNow))

	// Neutral is not the far-future stop.
	assert.NotEqual(t, UrgencyHex(atDays(30), gradientNow), UrgencyHex(nil, gradientNow))
}

func TestUrgencyHex_Pure(t *testing.T) {
	due := atDays(5.5)
	assert.Equal(t, UrgencyHex(due, gradientNow), UrgencyHex(due, gradientNow))
}
