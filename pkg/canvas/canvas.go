package canvas

import (
	"io"
	"math"
	"sort"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/style"
)

// Z-order conventions shared by the plotting layer. Edge lines render
// below arrowheads, which render below node markers.
const (
	ZEdges   = 1
	ZArrows  = 2
	ZMarkers = 3
)

// Canvas is a drawable surface that accumulates collections in data
// coordinates and renders them once.
type Canvas interface {
	// AddLines appends a line collection. The canvas keeps the pointer,
	// so later mutations of the collection are visible at render time.
	AddLines(lc *LineCollection)

	// AddPolys appends a polygon collection.
	AddPolys(pc *PolyCollection)

	// AddMarkers appends a marker collection.
	AddMarkers(mc *MarkerCollection)

	// ExpandBounds grows the data bounds to include the given rectangle.
	ExpandBounds(min, max geom.Point)

	// Bounds reports the accumulated data bounds. ok is false when
	// nothing has been added yet.
	Bounds() (min, max geom.Point, ok bool)

	// Render writes the finished artifact to w.
	Render(w io.Writer) error
}

// ===== Collections =====

// LineCollection is a set of stroked segments sharing a dash pattern and
// z-order. Colors and widths cycle over the segments when shorter than
// the segment list.
type LineCollection struct {
	Segments []geom.Segment
	Colors   []style.Color
	Widths   []float64
	Dashes   []float64
	ZOrder   int
	Label    string
}

// ColorAt returns the stroke color for segment i, cycling over Colors.
// An empty color list strokes opaque black.
func (lc *LineCollection) ColorAt(i int) style.Color {
	if len(lc.Colors) == 0 {
		return style.Color{A: 1}
	}
	return lc.Colors[i%len(lc.Colors)]
}

// WidthAt returns the stroke width for segment i, cycling over Widths.
// An empty width list strokes at width 1.
func (lc *LineCollection) WidthAt(i int) float64 {
	if len(lc.Widths) == 0 {
		return 1
	}
	return lc.Widths[i%len(lc.Widths)]
}

// PolyCollection is a set of filled polygons. FaceColors cycle over the
// polygons; the outline uses EdgeColors (falling back to the face color)
// and is drawn only when LineWidth is positive.
type PolyCollection struct {
	Polygons   [][]geom.Point
	FaceColors []style.Color
	EdgeColors []style.Color
	LineWidth  float64
	ZOrder     int
	Label      string
}

// FaceAt returns the fill color for polygon i, cycling over FaceColors.
// An empty face list fills opaque black.
func (pc *PolyCollection) FaceAt(i int) style.Color {
	if len(pc.FaceColors) == 0 {
		return style.Color{A: 1}
	}
	return pc.FaceColors[i%len(pc.FaceColors)]
}

// EdgeAt returns the outline color for polygon i. An empty edge list
// falls back to the face color.
func (pc *PolyCollection) EdgeAt(i int) style.Color {
	if len(pc.EdgeColors) == 0 {
		return pc.FaceAt(i)
	}
	return pc.EdgeColors[i%len(pc.EdgeColors)]
}

// MarkerCollection is a set of circular markers. Sizes are radii in
// pixels. Texts, when present, are drawn centered on each marker and
// must either be empty or match Centers in length.
type MarkerCollection struct {
	Centers    []geom.Point
	Sizes      []float64
	FaceColors []style.Color
	EdgeColors []style.Color
	LineWidth  float64
	Texts      []string
	TextColor  style.Color
	ZOrder     int
	Label      string
}

// SizeAt returns the radius for marker i, cycling over Sizes. An empty
// size list uses radius 6.
func (mc *MarkerCollection) SizeAt(i int) float64 {
	if len(mc.Sizes) == 0 {
		return 6
	}
	return mc.Sizes[i%len(mc.Sizes)]
}

// FaceAt returns the fill color for marker i, cycling over FaceColors.
func (mc *MarkerCollection) FaceAt(i int) style.Color {
	if len(mc.FaceColors) == 0 {
		return style.Color{A: 1}
	}
	return mc.FaceColors[i%len(mc.FaceColors)]
}

// EdgeAt returns the border color for marker i, falling back to the
// face color when no edge colors are set.
func (mc *MarkerCollection) EdgeAt(i int) style.Color {
	if len(mc.EdgeColors) == 0 {
		return mc.FaceAt(i)
	}
	return mc.EdgeColors[i%len(mc.EdgeColors)]
}

func (mc *MarkerCollection) textColor() style.Color {
	if mc.TextColor == (style.Color{}) {
		return style.Color{A: 1}
	}
	return mc.TextColor
}

// ===== Options =====

// Option configures a canvas at construction time. The same options
// apply to [NewSVG] and [NewPNG].
type Option func(*settings)

type settings struct {
	width      float64
	height     float64
	margin     float64
	background style.Color
	fontSize   float64
}

func defaultSettings() settings {
	return settings{
		width:      800,
		height:     600,
		margin:     8,
		background: style.Color{R: 1, G: 1, B: 1, A: 1},
		fontSize:   12,
	}
}

// WithSize sets the pixel dimensions of the rendered surface.
func WithSize(width, height float64) Option {
	return func(s *settings) {
		if width > 0 {
			s.width = width
		}
		if height > 0 {
			s.height = height
		}
	}
}

// WithMargin sets the pixel margin kept clear around the fitted data.
func WithMargin(m float64) Option {
	return func(s *settings) {
		if m >= 0 {
			s.margin = m
		}
	}
}

// WithBackground sets the background fill color.
func WithBackground(c style.Color) Option {
	return func(s *settings) { s.background = c }
}

// WithFontSize sets the label font size in points.
func WithFontSize(pt float64) Option {
	return func(s *settings) {
		if pt > 0 {
			s.fontSize = pt
		}
	}
}

// ===== Shared accumulation state =====

type itemKind int

const (
	kindLines itemKind = iota
	kindPolys
	kindMarkers
)

type sceneItem struct {
	kind    itemKind
	lines   *LineCollection
	polys   *PolyCollection
	markers *MarkerCollection
}

func (it sceneItem) zorder() int {
	switch it.kind {
	case kindLines:
		return it.lines.ZOrder
	case kindPolys:
		return it.polys.ZOrder
	default:
		return it.markers.ZOrder
	}
}

// scene holds the collections and running data bounds shared by the SVG
// and PNG canvases.
type scene struct {
	items     []sceneItem
	min, max  geom.Point
	hasBounds bool
}

func (s *scene) AddLines(lc *LineCollection) {
	if lc == nil {
		return
	}
	s.items = append(s.items, sceneItem{kind: kindLines, lines: lc})
	for _, seg := range lc.Segments {
		s.grow(seg.From)
		s.grow(seg.To)
	}
}

func (s *scene) AddPolys(pc *PolyCollection) {
	if pc == nil {
		return
	}
	s.items = append(s.items, sceneItem{kind: kindPolys, polys: pc})
	for _, poly := range pc.Polygons {
		for _, p := range poly {
			s.grow(p)
		}
	}
}

func (s *scene) AddMarkers(mc *MarkerCollection) {
	if mc == nil {
		return
	}
	s.items = append(s.items, sceneItem{kind: kindMarkers, markers: mc})
	for _, p := range mc.Centers {
		s.grow(p)
	}
}

func (s *scene) ExpandBounds(min, max geom.Point) {
	s.grow(min)
	s.grow(max)
}

func (s *scene) Bounds() (min, max geom.Point, ok bool) {
	return s.min, s.max, s.hasBounds
}

func (s *scene) grow(p geom.Point) {
	if !s.hasBounds {
		s.min, s.max = p, p
		s.hasBounds = true
		return
	}
	s.min.X = min(s.min.X, p.X)
	s.min.Y = min(s.min.Y, p.Y)
	s.max.X = max(s.max.X, p.X)
	s.max.Y = max(s.max.Y, p.Y)
}

// ordered returns the items sorted by z-order, stable over insertion.
func (s *scene) ordered() []sceneItem {
	items := make([]sceneItem, len(s.items))
	copy(items, s.items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].zorder() < items[j].zorder()
	})
	return items
}

// ===== Data to pixel mapping =====

// viewport maps data coordinates onto the pixel surface with a uniform
// scale, centered inside the margins, y flipped so data y grows upward.
type viewport struct {
	min, max geom.Point
	scale    float64
	offX     float64
	offY     float64
}

func fitViewport(min, max geom.Point, width, height, margin float64) viewport {
	innerW := width - 2*margin
	innerH := height - 2*margin
	if innerW <= 0 {
		innerW = width
		margin = 0
	}
	if innerH <= 0 {
		innerH = height
	}

	// Degenerate spans get a unit of breathing room so a flat or
	// single-point scene still maps to the surface center.
	if max.X-min.X <= 0 {
		min.X -= 0.5
		max.X += 0.5
	}
	if max.Y-min.Y <= 0 {
		min.Y -= 0.5
		max.Y += 0.5
	}
	dx := max.X - min.X
	dy := max.Y - min.Y

	scale := math.Min(innerW/dx, innerH/dy)
	return viewport{
		min:   min,
		max:   max,
		scale: scale,
		offX:  margin + (innerW-dx*scale)/2,
		offY:  margin + (innerH-dy*scale)/2,
	}
}

func (v viewport) x(x float64) float64 { return v.offX + (x-v.min.X)*v.scale }
func (v viewport) y(y float64) float64 { return v.offY + (v.max.Y-y)*v.scale }

func (v viewport) point(p geom.Point) (float64, float64) {
	return v.x(p.X), v.y(p.Y)
}
