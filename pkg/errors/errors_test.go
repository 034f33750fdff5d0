package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidColor, "unknown color: %s", "blurple")

	if err.Code != ErrCodeInvalidColor {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidColor)
	}

	if err.Message != "unknown color: blurple" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown color: blurple")
	}

	expected := "INVALID_COLOR: unknown color: blurple"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "layout failed")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidColor, "test"),
			code:     ErrCodeInvalidColor,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidColor, "test"),
			code:     ErrCodeNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidColor, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidColor,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidColor,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "structured error",
			err:      New(ErrCodePlotNotFound, "missing"),
			expected: ErrCodePlotNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	structured := New(ErrCodeInvalidFormat, "unsupported format")
	if got := UserMessage(structured); got != "unsupported format" {
		t.Errorf("UserMessage() = %v, want message without code prefix", got)
	}

	plain := errors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage() = %v, want raw error string", got)
	}
}

func TestMissingDependencyError(t *testing.T) {
	err := &MissingDependencyError{
		Binary: "rsvg-convert",
		Hint:   "Install librsvg: apt install librsvg2-bin",
	}

	want := "rsvg-convert not found. Install librsvg: apt install librsvg2-bin"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code() != ErrCodeMissingDependency {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeMissingDependency)
	}

	bare := &MissingDependencyError{Binary: "dot"}
	if bare.Error() != "dot not found" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "dot not found")
	}
}
