package style

import (
	"github.com/edgeviz/edgeviz/pkg/errors"
)

// Exact failure messages for bad edge-color input. Callers match on the
// INVALID_COLOR code; the text is part of the published behavior.
const (
	msgMixedColors  = "edge color must consist of either color names or numbers"
	msgLengthColors = "edge color must be a single color or a list of exactly m colors where m is the number of edges"
)

type specKind int

const (
	specDefault specKind = iota
	specSingle
	specList
	specValues
)

// ColorSpec describes how edges should be colored: one color for all,
// an explicit per-edge list, or per-edge numbers mapped through a
// colormap. The zero value means the default color (black).
type ColorSpec struct {
	kind   specKind
	names  []string
	values []float64
}

// Uniform returns a spec that colors every edge the same.
func Uniform(name string) ColorSpec {
	return ColorSpec{kind: specSingle, names: []string{name}}
}

// PerEdge returns a spec with one color string per edge.
func PerEdge(names ...string) ColorSpec {
	return ColorSpec{kind: specList, names: names}
}

// ByValue returns a spec that maps one number per edge through a colormap.
func ByValue(values ...float64) ColorSpec {
	return ColorSpec{kind: specValues, values: values}
}

// IsByValue reports whether the spec maps numbers through a colormap.
func (s ColorSpec) IsByValue() bool { return s.kind == specValues }

// IsZero reports whether the spec is the unset default.
func (s ColorSpec) IsZero() bool { return s.kind == specDefault }

// FromAny builds a ColorSpec from a decoded JSON value: a string, a list
// of strings, a list of numbers, or a list of [r,g,b]/[r,g,b,a] component
// tuples. Mixing strings and numbers in one list is rejected with the
// published INVALID_COLOR message.
func FromAny(v any) (ColorSpec, error) {
	switch val := v.(type) {
	case nil:
		return ColorSpec{}, nil
	case string:
		return Uniform(val), nil
	case []any:
		return fromList(val)
	case []string:
		return PerEdge(val...), nil
	case []float64:
		return ByValue(val...), nil
	}
	return ColorSpec{}, errors.New(errors.ErrCodeInvalidColor, msgMixedColors)
}

func fromList(items []any) (ColorSpec, error) {
	var names []string
	var values []float64
	for _, it := range items {
		switch v := it.(type) {
		case string:
			names = append(names, v)
		case float64:
			values = append(values, v)
		case int:
			values = append(values, float64(v))
		case []any:
			name, err := tupleToHex(v)
			if err != nil {
				return ColorSpec{}, err
			}
			names = append(names, name)
		default:
			return ColorSpec{}, errors.New(errors.ErrCodeInvalidColor, msgMixedColors)
		}
	}
	if len(names) > 0 && len(values) > 0 {
		return ColorSpec{}, errors.New(errors.ErrCodeInvalidColor, msgMixedColors)
	}
	if len(values) > 0 {
		return ByValue(values...), nil
	}
	return PerEdge(names...), nil
}

// tupleToHex folds an [r,g,b] or [r,g,b,a] component tuple into hex
// notation so tuples and names share one list representation.
func tupleToHex(parts []any) (string, error) {
	if len(parts) != 3 && len(parts) != 4 {
		return "", errors.New(errors.ErrCodeInvalidColor, "color tuple must have 3 or 4 components")
	}
	comps := make([]float64, len(parts))
	for i, p := range parts {
		f, ok := p.(float64)
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidColor, msgMixedColors)
		}
		if f < 0 || f > 1 {
			return "", errors.New(errors.ErrCodeInvalidColor, "color component %v outside [0, 1]", f)
		}
		comps[i] = f
	}
	c := Color{R: comps[0], G: comps[1], B: comps[2], A: 1}
	if len(comps) == 4 {
		c.A = comps[3]
	}
	if c.A < 1 {
		return c.Hex() + hexByte(c.A), nil
	}
	return c.Hex(), nil
}

func hexByte(v float64) string {
	const digits = "0123456789abcdef"
	b := int(clamp01(v)*255 + 0.5)
	return string([]byte{digits[b>>4], digits[b&0xf]})
}

// ResolveOptions carries the colormap settings used when a spec maps
// numbers to colors, plus the alpha override applied to every resolved
// color regardless of spec kind.
type ResolveOptions struct {
	Colormap   Colormap
	VMin, VMax *float64
	Alpha      *float64
}

// Resolve turns the spec into concrete colors for m edges. The result has
// either exactly one element (uniform color, cycled by the canvas) or
// exactly m elements. Errors use the published INVALID_COLOR messages:
// per-edge lists and value lists must have exactly m entries, and lists
// may not mix names with numbers.
func (s ColorSpec) Resolve(m int, opts ResolveOptions) ([]Color, error) {
	switch s.kind {
	case specDefault:
		return s.resolveNames([]string{"k"}, opts)
	case specSingle:
		return s.resolveNames(s.names, opts)
	case specList:
		if len(s.names) != 1 && len(s.names) != m {
			return nil, errors.New(errors.ErrCodeInvalidColor, msgLengthColors)
		}
		return s.resolveNames(s.names, opts)
	case specValues:
		if len(s.values) != m {
			return nil, errors.New(errors.ErrCodeInvalidColor, msgLengthColors)
		}
		colors, err := MapValues(s.values, opts.Colormap, opts.VMin, opts.VMax)
		if err != nil {
			return nil, err
		}
		return applyAlpha(colors, opts.Alpha), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidColor, msgMixedColors)
}

func (s ColorSpec) resolveNames(names []string, opts ResolveOptions) ([]Color, error) {
	colors := make([]Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return applyAlpha(colors, opts.Alpha), nil
}

func applyAlpha(colors []Color, alpha *float64) []Color {
	if alpha == nil {
		return colors
	}
	for i := range colors {
		colors[i] = colors[i].WithAlpha(*alpha)
	}
	return colors
}
