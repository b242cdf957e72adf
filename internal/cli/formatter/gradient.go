package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Gradient anchor stops, matching the static gruvbox styles: red within a
// day of the deadline, yellow around a week out, green past two weeks.
var (
	gradientRed    = rgb{0xfb, 0x49, 0x34}
	gradientYellow = rgb{0xfa, 0xbd, 0x2f}
	gradientGreen  = rgb{0xb8, 0xbb, 0x26}
)

// NeutralHex is the fixed color for work with no due time. It is a constant,
// not a gradient stop, so undated work reads differently from far-future work.
const NeutralHex = "#8ec07c"

type rgb struct{ r, g, b uint8 }

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// lerp blends two colors channel by channel, rounding to the nearest value.
func lerp(a, b rgb, t float64) rgb {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return rgb{ch(a.r, b.r), ch(a.g, b.g), ch(a.b, b.b)}
}

// UrgencyHex maps time-until-due onto the red→yellow→green gradient and
// returns a lowercase "#rrggbb" string. Days until due is a real number, not
// floored, so the blend moves continuously through the day. The function is
// pure: identical inputs always produce identical bytes.
func UrgencyHex(due *time.Time, now time.Time) string {
	if due == nil {
		return NeutralHex
	}
	days := due.Sub(now).Hours() / 24
	switch {
	case days <= 1:
		return gradientRed.hex()
	case days <= 7:
		return lerp(gradientRed, gradientYellow, (days-1)/6).hex()
	case days <= 13:
		return lerp(gradientYellow, gradientGreen, (days-7)/6).hex()
	}
	return gradientGreen.hex()
}

// UrgencyStyle wraps UrgencyHex in a lipgloss style.
func UrgencyStyle(due *time.Time, now time.Time) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(UrgencyHex(due, now)))
}
