package style

import (
	"encoding/json"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

func TestColorSpecJSON(t *testing.T) {
	tests := []struct {
		name string
		spec ColorSpec
		want string
	}{
		{name: "zero value is null", spec: ColorSpec{}, want: `null`},
		{name: "uniform is a string", spec: Uniform("red"), want: `"red"`},
		{name: "per-edge list", spec: PerEdge("r", "g", "b"), want: `["r","g","b"]`},
		{name: "values list", spec: ByValue(0, 2.5), want: `[0,2.5]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.spec)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}

			var back ColorSpec
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			round, err := json.Marshal(back)
			if err != nil {
				t.Fatalf("marshal after round trip: %v", err)
			}
			if string(round) != tt.want {
				t.Errorf("round trip = %s, want %s", round, tt.want)
			}
		})
	}
}

func TestColorSpecUnmarshalMixed(t *testing.T) {
	var spec ColorSpec
	err := json.Unmarshal([]byte(`["red", 3]`), &spec)
	if err == nil {
		t.Fatal("expected error for mixed strings and numbers")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidColor {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidColor)
	}
}

func TestWidthsUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Widths
	}{
		{name: "scalar", in: `3`, want: Widths{3}},
		{name: "list", in: `[1, 2.5, 4]`, want: Widths{1, 2.5, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Widths
			if err := json.Unmarshal([]byte(tt.in), &w); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if len(w) != len(tt.want) {
				t.Fatalf("got %d widths, want %d", len(w), len(tt.want))
			}
			for i := range w {
				if w[i] != tt.want[i] {
					t.Errorf("width %d = %v, want %v", i, w[i], tt.want[i])
				}
			}
		})
	}
}
