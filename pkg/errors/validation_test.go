package errors

import "testing"

func TestValidatePlotName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{name: "valid simple", input: "my-plot"},
		{name: "valid with dots", input: "release.v2"},
		{name: "empty", input: "", wantCode: ErrCodeInvalidName},
		{name: "too long", input: string(make([]byte, 200)), wantCode: ErrCodeInvalidName},
		{name: "path traversal", input: "../etc/passwd", wantCode: ErrCodeInvalidName},
		{name: "slash", input: "a/b", wantCode: ErrCodeInvalidName},
		{name: "backslash", input: "a\\b", wantCode: ErrCodeInvalidName},
		{name: "control character", input: "plot\x01name", wantCode: ErrCodeInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlotName(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidatePlotName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidatePlotName(%q) = %v, want code %v", tt.input, err, tt.wantCode)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{name: "valid relative", input: "out/plot.svg"},
		{name: "valid nested", input: "a/b/c.png"},
		{name: "empty", input: "", wantCode: ErrCodeInvalidPath},
		{name: "absolute", input: "/etc/passwd", wantCode: ErrCodeInvalidPath},
		{name: "traversal", input: "a/../b", wantCode: ErrCodeInvalidPath},
		{name: "backslash", input: "a\\b", wantCode: ErrCodeInvalidPath},
		{name: "null byte", input: "a\x00b", wantCode: ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidatePath(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidatePath(%q) = %v, want code %v", tt.input, err, tt.wantCode)
			}
		})
	}
}
