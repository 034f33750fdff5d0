package render

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

func TestToPDF_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := ToPDF([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if err == nil {
		t.Fatal("expected error when rsvg-convert is absent")
	}
	if errors.GetCode(err) != errors.ErrCodeMissingDependency {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeMissingDependency)
	}

	var missing *errors.MissingDependencyError
	if !stderrors.As(err, &missing) {
		t.Fatalf("error %v does not carry the missing binary", err)
	}
	if missing.Binary != "rsvg-convert" {
		t.Errorf("binary = %q, want rsvg-convert", missing.Binary)
	}
	if !strings.Contains(missing.Hint, "librsvg") {
		t.Errorf("hint %q missing install instructions", missing.Hint)
	}
}

func TestToPNGScaled_Args(t *testing.T) {
	// Stub rsvg-convert with a script that echoes its arguments back.
	dir := t.TempDir()
	script := "#!/bin/sh\nprintf '%s ' \"$@\"\ncat >/dev/null\n"
	if err := os.WriteFile(filepath.Join(dir, "rsvg-convert"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	out, err := ToPNGScaled([]byte("<svg/>"), 2)
	if err != nil {
		t.Fatalf("ToPNGScaled() error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "-f png") {
		t.Errorf("args = %q, want -f png", got)
	}
	if !strings.Contains(got, "-z 2.00") {
		t.Errorf("args = %q, want -z 2.00", got)
	}
}
