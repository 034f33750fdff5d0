package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/style"
)

func TestPNGRender(t *testing.T) {
	c := NewPNG(WithSize(120, 80), WithMargin(10))
	c.AddLines(&LineCollection{
		Segments: []geom.Segment{
			{From: geom.Point{X: 0, Y: 0}, To: geom.Point{X: 10, Y: 10}},
		},
		Colors: []style.Color{{A: 1}},
		Widths: []float64{5},
	})

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("image size = %dx%d, want 120x80", b.Dx(), b.Dy())
	}

	corner := color.RGBAModel.Convert(img.At(2, 2)).(color.RGBA)
	if corner.R < 250 || corner.G < 250 || corner.B < 250 {
		t.Errorf("corner pixel = %v, want white background", corner)
	}

	// The diagonal passes through the surface center after fitting.
	center := color.RGBAModel.Convert(img.At(60, 40)).(color.RGBA)
	if center.R > 50 || center.G > 50 || center.B > 50 {
		t.Errorf("center pixel = %v, want black stroke", center)
	}
}

func TestPNGRenderMarkersWithLabels(t *testing.T) {
	c := NewPNG(WithSize(100, 100))
	c.AddMarkers(&MarkerCollection{
		Centers:    []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		FaceColors: []style.Color{{R: 1, A: 1}},
		Texts:      []string{"a", "b"},
	})

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
}
