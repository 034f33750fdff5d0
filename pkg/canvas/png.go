package canvas

import (
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/edgeviz/edgeviz/pkg/geom"
)

// PNG renders accumulated collections as a raster image.
type PNG struct {
	scene
	cfg settings
}

// NewPNG returns an empty PNG canvas.
func NewPNG(opts ...Option) *PNG {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PNG{cfg: cfg}
}

// Render rasterizes the scene and writes PNG bytes to w.
func (c *PNG) Render(w io.Writer) error {
	dc := gg.NewContext(int(c.cfg.width), int(c.cfg.height))
	dc.SetColor(c.cfg.background)
	dc.Clear()

	vp := fitViewport(c.min, c.max, c.cfg.width, c.cfg.height, c.cfg.margin)
	var face font.Face
	for _, it := range c.ordered() {
		switch it.kind {
		case kindLines:
			drawLines(dc, vp, it.lines)
		case kindPolys:
			drawPolys(dc, vp, it.polys)
		case kindMarkers:
			if hasText(it.markers) && face == nil {
				f, err := regularFace(c.cfg.fontSize)
				if err != nil {
					return err
				}
				face = f
			}
			drawMarkers(dc, vp, it.markers, face)
		}
	}

	return dc.EncodePNG(w)
}

func drawLines(dc *gg.Context, vp viewport, lc *LineCollection) {
	dc.SetDash(lc.Dashes...)
	for i, seg := range lc.Segments {
		x1, y1 := vp.point(seg.From)
		x2, y2 := vp.point(seg.To)
		dc.SetColor(lc.ColorAt(i))
		dc.SetLineWidth(lc.WidthAt(i))
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	dc.SetDash()
}

func drawPolys(dc *gg.Context, vp viewport, pc *PolyCollection) {
	for i, poly := range pc.Polygons {
		if len(poly) == 0 {
			continue
		}
		tracePolygon(dc, vp, poly)
		dc.SetColor(pc.FaceAt(i))
		if pc.LineWidth > 0 {
			dc.FillPreserve()
			dc.SetColor(pc.EdgeAt(i))
			dc.SetLineWidth(pc.LineWidth)
			dc.Stroke()
		} else {
			dc.Fill()
		}
	}
}

func tracePolygon(dc *gg.Context, vp viewport, poly []geom.Point) {
	dc.NewSubPath()
	for j, p := range poly {
		x, y := vp.point(p)
		if j == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

func drawMarkers(dc *gg.Context, vp viewport, mc *MarkerCollection, face font.Face) {
	for i, center := range mc.Centers {
		cx, cy := vp.point(center)
		dc.DrawCircle(cx, cy, mc.SizeAt(i))
		dc.SetColor(mc.FaceAt(i))
		if mc.LineWidth > 0 {
			dc.FillPreserve()
			dc.SetColor(mc.EdgeAt(i))
			dc.SetLineWidth(mc.LineWidth)
			dc.Stroke()
		} else {
			dc.Fill()
		}
	}
	if face == nil || len(mc.Texts) != len(mc.Centers) {
		return
	}
	dc.SetFontFace(face)
	dc.SetColor(mc.textColor())
	for i, center := range mc.Centers {
		if mc.Texts[i] == "" {
			continue
		}
		cx, cy := vp.point(center)
		dc.DrawStringAnchored(mc.Texts[i], cx, cy, 0.5, 0.5)
	}
}

func hasText(mc *MarkerCollection) bool {
	if len(mc.Texts) != len(mc.Centers) {
		return false
	}
	for _, t := range mc.Texts {
		if t != "" {
			return true
		}
	}
	return false
}

// regularFace builds a label face from the embedded Go Regular font, so
// raster output needs no system font lookup.
func regularFace(points float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
