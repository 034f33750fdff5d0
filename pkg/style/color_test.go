package style

import (
	"math"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

const testEps = 1e-9

func colorsClose(a, b Color) bool {
	return math.Abs(a.R-b.R) < 0.005 &&
		math.Abs(a.G-b.G) < 0.005 &&
		math.Abs(a.B-b.B) < 0.005 &&
		math.Abs(a.A-b.A) < 0.005
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "letter code black", input: "k", want: Color{A: 1}},
		{name: "letter code red", input: "r", want: Color{R: 1, A: 1}},
		{name: "named brown", input: "brown", want: rgb8(0xa5, 0x2a, 0x2a)},
		{name: "case insensitive", input: "Brown", want: rgb8(0xa5, 0x2a, 0x2a)},
		{name: "hex long", input: "#ff8000", want: Color{R: 1, G: 128.0 / 255, B: 0, A: 1}},
		{name: "hex short", input: "#f0a", want: Color{R: 1, G: 0, B: 170.0 / 255, A: 1}},
		{name: "hex with alpha", input: "#ff000080", want: Color{R: 1, A: 128.0 / 255}},
		{name: "grayscale string", input: "0.5", want: Color{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{name: "grayscale out of range", input: "1.5", wantErr: true},
		{name: "unknown name", input: "blurple", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "malformed hex", input: "#12345", wantErr: true},
		{name: "hex bad digit", input: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("error code = %v, want INVALID_COLOR", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.input, err)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "black", color: Color{A: 1}, want: "#000000"},
		{name: "white", color: Color{R: 1, G: 1, B: 1, A: 1}, want: "#ffffff"},
		{name: "mixed", color: Color{R: 1, G: 0.5, B: 0, A: 1}, want: "#ff8000"},
		{name: "clamped", color: Color{R: 2, G: -1, B: 0.25, A: 1}, want: "#ff0040"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 0.5}
	r, g, b, a := c.RGBA()
	if a != 0x8000 {
		t.Errorf("alpha = %#x, want 0x8000", a)
	}
	// Red premultiplies against alpha.
	if r != 0x8000 {
		t.Errorf("red = %#x, want 0x8000", r)
	}
	if g != 0 || b != 0 {
		t.Errorf("green/blue = %#x/%#x, want 0", g, b)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	got := c.WithAlpha(0.3)
	if math.Abs(got.A-0.3) > testEps {
		t.Errorf("alpha = %v, want 0.3", got.A)
	}
	if got.R != c.R || got.G != c.G || got.B != c.B {
		t.Error("WithAlpha changed RGB components")
	}
}
