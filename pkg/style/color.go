package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Color is an RGBA color with components in [0, 1]. It implements
// image/color.Color, so raster backends can use it directly.
type Color struct {
	R, G, B, A float64
}

// RGBA implements the image/color.Color interface. Components are
// alpha-premultiplied in the range [0, 0xffff] as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	conv := func(v float64) uint32 {
		return uint32(math.Round(clamp01(v) * clamp01(c.A) * 0xffff))
	}
	return conv(c.R), conv(c.G), conv(c.B), uint32(math.Round(clamp01(c.A) * 0xffff))
}

// Hex returns the color as #rrggbb. Alpha is not encoded; SVG carries it
// through separate opacity attributes.
func (c Color) Hex() string {
	to8 := func(v float64) uint8 {
		return uint8(math.Round(clamp01(v) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// rgb8 builds an opaque color from 8-bit components.
func rgb8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// namedColors maps color names to their values. The single-letter entries
// follow the classic matplotlib codes; the rest are standard CSS names.
var namedColors = map[string]Color{
	"b": {R: 0, G: 0, B: 1, A: 1},
	"g": {R: 0, G: 0.5, B: 0, A: 1},
	"r": {R: 1, G: 0, B: 0, A: 1},
	"c": {R: 0, G: 0.75, B: 0.75, A: 1},
	"m": {R: 0.75, G: 0, B: 0.75, A: 1},
	"y": {R: 0.75, G: 0.75, B: 0, A: 1},
	"k": {R: 0, G: 0, B: 0, A: 1},
	"w": {R: 1, G: 1, B: 1, A: 1},

	"black":     rgb8(0x00, 0x00, 0x00),
	"white":     rgb8(0xff, 0xff, 0xff),
	"red":       rgb8(0xff, 0x00, 0x00),
	"green":     rgb8(0x00, 0x80, 0x00),
	"blue":      rgb8(0x00, 0x00, 0xff),
	"brown":     rgb8(0xa5, 0x2a, 0x2a),
	"gray":      rgb8(0x80, 0x80, 0x80),
	"grey":      rgb8(0x80, 0x80, 0x80),
	"orange":    rgb8(0xff, 0xa5, 0x00),
	"purple":    rgb8(0x80, 0x00, 0x80),
	"cyan":      rgb8(0x00, 0xff, 0xff),
	"magenta":   rgb8(0xff, 0x00, 0xff),
	"yellow":    rgb8(0xff, 0xff, 0x00),
	"pink":      rgb8(0xff, 0xc0, 0xcb),
	"olive":     rgb8(0x80, 0x80, 0x00),
	"navy":      rgb8(0x00, 0x00, 0x80),
	"teal":      rgb8(0x00, 0x80, 0x80),
	"lime":      rgb8(0x00, 0xff, 0x00),
	"maroon":    rgb8(0x80, 0x00, 0x00),
	"silver":    rgb8(0xc0, 0xc0, 0xc0),
	"gold":      rgb8(0xff, 0xd7, 0x00),
	"indigo":    rgb8(0x4b, 0x00, 0x82),
	"violet":    rgb8(0xee, 0x82, 0xee),
	"coral":     rgb8(0xff, 0x7f, 0x50),
	"salmon":    rgb8(0xfa, 0x80, 0x72),
	"skyblue":   rgb8(0x87, 0xce, 0xeb),
	"steelblue": rgb8(0x46, 0x82, 0xb4),
	"tomato":    rgb8(0xff, 0x63, 0x47),
	"orchid":    rgb8(0xda, 0x70, 0xd6),
	"slategray": rgb8(0x70, 0x80, 0x90),
	"crimson":   rgb8(0xdc, 0x14, 0x3c),
	"turquoise": rgb8(0x40, 0xe0, 0xd0),
	"tan":       rgb8(0xd2, 0xb4, 0x8c),
	"khaki":     rgb8(0xf0, 0xe6, 0x8c),
	"lavender":  rgb8(0xe6, 0xe6, 0xfa),
}

// ParseColor converts a color string into a Color. Accepted forms, tried in
// order: hex (#rgb, #rrggbb, #rrggbbaa), a known color name, and a
// grayscale float in [0, 1] such as "0.75". Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "empty color")
	}

	if strings.HasPrefix(trimmed, "#") {
		return parseHex(trimmed)
	}

	if c, ok := namedColors[trimmed]; ok {
		return c, nil
	}

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if v < 0 || v > 1 {
			return Color{}, errors.New(errors.ErrCodeInvalidColor, "grayscale value %v outside [0, 1]", v)
		}
		return Color{R: v, G: v, B: v, A: 1}, nil
	}

	return Color{}, errors.New(errors.ErrCodeInvalidColor, "unknown color name: %q", s)
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	var r, g, b, a uint64
	var err error
	a = 0xff

	parse := func(part string) (uint64, error) {
		return strconv.ParseUint(part, 16, 8)
	}

	switch len(digits) {
	case 3:
		// #rgb expands each digit, e.g. #f0a -> #ff00aa.
		var rr, gg, bb uint64
		rr, err = parse(strings.Repeat(digits[0:1], 2))
		if err == nil {
			gg, err = parse(strings.Repeat(digits[1:2], 2))
		}
		if err == nil {
			bb, err = parse(strings.Repeat(digits[2:3], 2))
		}
		r, g, b = rr, gg, bb
	case 6, 8:
		r, err = parse(digits[0:2])
		if err == nil {
			g, err = parse(digits[2:4])
		}
		if err == nil {
			b, err = parse(digits[4:6])
		}
		if err == nil && len(digits) == 8 {
			a, err = parse(digits[6:8])
		}
	default:
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "malformed hex color: %q", s)
	}
	if err != nil {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "malformed hex color: %q", s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}
