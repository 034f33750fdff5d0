package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/edgeviz/edgeviz/pkg/style"
)

// SVG renders accumulated collections as a scalable vector graphic.
type SVG struct {
	scene
	cfg settings
}

// NewSVG returns an empty SVG canvas.
func NewSVG(opts ...Option) *SVG {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SVG{cfg: cfg}
}

// Render writes the SVG document to w.
func (c *SVG) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	doc := svg.New(bw)
	doc.Startview(c.cfg.width, c.cfg.height, 0, 0, c.cfg.width, c.cfg.height)
	doc.Rect(0, 0, c.cfg.width, c.cfg.height, fillStyle(c.cfg.background))

	vp := fitViewport(c.min, c.max, c.cfg.width, c.cfg.height, c.cfg.margin)
	for _, it := range c.ordered() {
		switch it.kind {
		case kindLines:
			c.renderLines(doc, vp, it.lines)
		case kindPolys:
			c.renderPolys(doc, vp, it.polys)
		case kindMarkers:
			c.renderMarkers(doc, vp, it.markers)
		}
	}

	doc.End()
	return bw.Flush()
}

func (c *SVG) renderLines(doc *svg.SVG, vp viewport, lc *LineCollection) {
	doc.Group(groupAttrs(lc.Label))
	for i, seg := range lc.Segments {
		x1, y1 := vp.point(seg.From)
		x2, y2 := vp.point(seg.To)
		doc.Line(x1, y1, x2, y2, strokeStyle(lc.ColorAt(i), lc.WidthAt(i), lc.Dashes))
	}
	doc.Gend()
}

func (c *SVG) renderPolys(doc *svg.SVG, vp viewport, pc *PolyCollection) {
	doc.Group(groupAttrs(pc.Label))
	for i, poly := range pc.Polygons {
		if len(poly) == 0 {
			continue
		}
		xs := make([]float64, len(poly))
		ys := make([]float64, len(poly))
		for j, p := range poly {
			xs[j], ys[j] = vp.point(p)
		}
		doc.Polygon(xs, ys, polyStyle(pc.FaceAt(i), pc.EdgeAt(i), pc.LineWidth))
	}
	doc.Gend()
}

func (c *SVG) renderMarkers(doc *svg.SVG, vp viewport, mc *MarkerCollection) {
	doc.Group(groupAttrs(mc.Label))
	for i, center := range mc.Centers {
		cx, cy := vp.point(center)
		doc.Circle(cx, cy, mc.SizeAt(i), polyStyle(mc.FaceAt(i), mc.EdgeAt(i), mc.LineWidth))
	}
	if len(mc.Texts) == len(mc.Centers) {
		textStyle := fmt.Sprintf(
			"fill:%s;font-size:%spx;font-family:sans-serif;text-anchor:middle;dominant-baseline:central",
			mc.textColor().Hex(), fmtFloat(c.cfg.fontSize))
		for i, center := range mc.Centers {
			if mc.Texts[i] == "" {
				continue
			}
			cx, cy := vp.point(center)
			doc.Text(cx, cy, mc.Texts[i], textStyle)
		}
	}
	doc.Gend()
}

// ===== Style attribute helpers =====

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func groupAttrs(label string) string {
	if label == "" {
		return `class="collection"`
	}
	return fmt.Sprintf(`class="collection" data-label=%q`, label)
}

func fillStyle(c style.Color) string {
	s := "fill:" + c.Hex()
	if c.A < 1 {
		s += ";fill-opacity:" + fmtFloat(c.A)
	}
	return s
}

func strokeStyle(c style.Color, width float64, dashes []float64) string {
	var b strings.Builder
	b.WriteString("fill:none;stroke:")
	b.WriteString(c.Hex())
	b.WriteString(";stroke-width:")
	b.WriteString(fmtFloat(width))
	if c.A < 1 {
		b.WriteString(";stroke-opacity:")
		b.WriteString(fmtFloat(c.A))
	}
	if len(dashes) > 0 {
		b.WriteString(";stroke-dasharray:")
		b.WriteString(joinFloats(dashes))
	}
	return b.String()
}

func polyStyle(face, edge style.Color, lineWidth float64) string {
	var b strings.Builder
	b.WriteString("fill:")
	b.WriteString(face.Hex())
	if face.A < 1 {
		b.WriteString(";fill-opacity:")
		b.WriteString(fmtFloat(face.A))
	}
	if lineWidth > 0 {
		b.WriteString(";stroke:")
		b.WriteString(edge.Hex())
		b.WriteString(";stroke-width:")
		b.WriteString(fmtFloat(lineWidth))
		if edge.A < 1 {
			b.WriteString(";stroke-opacity:")
			b.WriteString(fmtFloat(edge.A))
		}
	}
	return b.String()
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmtFloat(v)
	}
	return strings.Join(parts, ",")
}
