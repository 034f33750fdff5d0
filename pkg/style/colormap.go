package style

import (
	"math"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Colormap names a gradient used to turn per-edge numbers into colors.
type Colormap string

const (
	// Viridis is the default colormap: dark purple through teal to yellow,
	// perceptually uniform.
	Viridis Colormap = "viridis"

	// Plasma runs dark blue through magenta to yellow.
	Plasma Colormap = "plasma"

	// Gray is a plain black-to-white ramp.
	Gray Colormap = "gray"
)

// Colormaps lists the supported colormap names in display order.
func Colormaps() []Colormap {
	return []Colormap{Viridis, Plasma, Gray}
}

// Valid reports whether the colormap name is known. The empty string is
// valid and means [Viridis].
func (cm Colormap) Valid() bool {
	switch cm {
	case "", Viridis, Plasma, Gray:
		return true
	}
	return false
}

// Evenly spaced anchor colors; At interpolates linearly between them.
var (
	viridisAnchors = []Color{
		rgb8(0x44, 0x01, 0x54),
		rgb8(0x46, 0x32, 0x7e),
		rgb8(0x36, 0x5c, 0x8d),
		rgb8(0x27, 0x7f, 0x8e),
		rgb8(0x1f, 0xa1, 0x87),
		rgb8(0x4a, 0xc1, 0x6d),
		rgb8(0xa0, 0xda, 0x39),
		rgb8(0xfd, 0xe7, 0x25),
	}
	plasmaAnchors = []Color{
		rgb8(0x0d, 0x08, 0x87),
		rgb8(0x54, 0x02, 0xa3),
		rgb8(0x8b, 0x0a, 0xa5),
		rgb8(0xb9, 0x32, 0x89),
		rgb8(0xdb, 0x5c, 0x68),
		rgb8(0xf4, 0x88, 0x49),
		rgb8(0xfe, 0xbd, 0x2a),
		rgb8(0xf0, 0xf9, 0x21),
	}
)

// At returns the colormap color at position t. Values outside [0, 1] are
// clamped. Unknown colormaps fall back to Viridis.
func (cm Colormap) At(t float64) Color {
	t = clamp01(t)
	switch cm {
	case Gray:
		return Color{R: t, G: t, B: t, A: 1}
	case Plasma:
		return lerpAnchors(plasmaAnchors, t)
	default:
		return lerpAnchors(viridisAnchors, t)
	}
}

func lerpAnchors(anchors []Color, t float64) Color {
	if t >= 1 {
		return anchors[len(anchors)-1]
	}
	scaled := t * float64(len(anchors)-1)
	i := int(math.Floor(scaled))
	frac := scaled - float64(i)
	lo, hi := anchors[i], anchors[i+1]
	return Color{
		R: lo.R + frac*(hi.R-lo.R),
		G: lo.G + frac*(hi.G-lo.G),
		B: lo.B + frac*(hi.B-lo.B),
		A: 1,
	}
}

// MapValues maps per-edge numbers through a colormap. vmin and vmax bound
// the normalization; nil means autoscale to the value range. Values
// outside the bounds clamp to the ends. A zero-width range maps everything
// to the low end of the colormap.
func MapValues(values []float64, cm Colormap, vmin, vmax *float64) ([]Color, error) {
	if !cm.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidColor, "unknown colormap: %q", string(cm))
	}
	if len(values) == 0 {
		return nil, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if vmin != nil {
		lo = *vmin
	}
	if vmax != nil {
		hi = *vmax
	}

	colors := make([]Color, len(values))
	span := hi - lo
	for i, v := range values {
		var t float64
		if span != 0 {
			t = (v - lo) / span
		}
		colors[i] = cm.At(t)
	}
	return colors, nil
}
