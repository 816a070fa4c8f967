// Package contrast picks link and text colors that stay readable on a given background.
package contrast

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MinimumRatio is the WCAG AA threshold for normal text.
const MinimumRatio = 4.5

const (
	// FallbackDark is returned whenever a color cannot be parsed.
	FallbackDark = "#111827"
	// DefaultBackground is assumed when no background is given.
	DefaultBackground = "#ffffff"

	white = "#ffffff"
	black = "#000000"
)

var rgbPattern = regexp.MustCompile(`^rgb\s*\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// Parse reads "#rgb", "#rrggbb" (the "#" is optional) or "rgb(r, g, b)".
func Parse(color string) (RGB, bool) {
	c := strings.ToLower(strings.TrimSpace(color))
	if c == "" {
		return RGB{}, false
	}

	if strings.HasPrefix(c, "rgb") {
		m := rgbPattern.FindStringSubmatch(c)
		if m == nil {
			return RGB{}, false
		}
		var channels [3]uint8
		for i := range channels {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return RGB{}, false
			}
			channels[i] = uint8(v)
		}

		return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
	}

	c = strings.TrimPrefix(c, "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(c, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, true
}

// Luminance returns the relative luminance of c in [0, 1].
func (c RGB) Luminance() float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}

	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio is the contrast ratio between two colors, from 1 to 21.
func Ratio(a, b RGB) float64 {
	l1, l2 := a.Luminance(), b.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Resolve returns desired when it reaches MinimumRatio against background, otherwise
// whichever of white or black contrasts more (white on a tie). Empty inputs default to
// FallbackDark and DefaultBackground; unparsable inputs yield FallbackDark.
func Resolve(desired, background string) string {
	if strings.TrimSpace(background) == "" {
		background = DefaultBackground
	}
	if strings.TrimSpace(desired) == "" {
		desired = FallbackDark
	}

	fg, ok := Parse(desired)
	if !ok {
		return FallbackDark
	}
	bg, ok := Parse(background)
	if !ok {
		return FallbackDark
	}

	if Ratio(fg, bg) >= MinimumRatio {
		return desired
	}

	if Ratio(RGB{R: 255, G: 255, B: 255}, bg) >= Ratio(RGB{}, bg) {
		return white
	}

	return black
}
