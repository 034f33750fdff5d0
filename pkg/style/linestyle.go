package style

import "github.com/edgeviz/edgeviz/pkg/errors"

// LineStyle names a stroke dash pattern.
type LineStyle string

const (
	Solid   LineStyle = "solid"
	Dashed  LineStyle = "dashed"
	Dotted  LineStyle = "dotted"
	DashDot LineStyle = "dashdot"
)

// ParseLineStyle accepts both the long names and the classic short codes
// ("-", "--", ":", "-."). An empty string means solid.
func ParseLineStyle(s string) (LineStyle, error) {
	switch s {
	case "", "-", string(Solid):
		return Solid, nil
	case "--", string(Dashed):
		return Dashed, nil
	case ":", string(Dotted):
		return Dotted, nil
	case "-.", string(DashDot):
		return DashDot, nil
	}
	return "", errors.New(errors.ErrCodeInvalidStyle, "unknown line style: %q", s)
}

// Dashes returns the dash pattern as on/off lengths in drawing units.
// Solid returns nil, which backends interpret as an unbroken stroke.
func (ls LineStyle) Dashes() []float64 {
	switch ls {
	case Dashed:
		return []float64{6, 2}
	case Dotted:
		return []float64{1, 2}
	case DashDot:
		return []float64{6, 2, 1, 2}
	}
	return nil
}

// Widths holds per-edge line widths with cyclic broadcast: edge i uses
// entry i mod len. Empty means width 1 everywhere.
type Widths []float64

// UniformWidth returns a single-entry Widths applying w to every edge.
func UniformWidth(w float64) Widths { return Widths{w} }

// At returns the width for edge i under cyclic broadcast.
func (w Widths) At(i int) float64 {
	if len(w) == 0 {
		return 1
	}
	return w[i%len(w)]
}
