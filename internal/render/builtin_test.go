package render

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">
  <rect x="2" y="2" width="12" height="12" fill="#a7c080"/>
</svg>`

func TestBuiltinRenderer_Render(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.png")

	err := BuiltinRenderer{}.Render(context.Background(), []byte(testIcon), out, 64)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("bounds = %v, want 64x64", b)
	}
}

func TestBuiltinRenderer_InvalidSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.png")

	err := BuiltinRenderer{}.Render(context.Background(), []byte("not an svg"), out, 64)
	if err == nil {
		t.Fatal("expected an error for invalid input")
	}
	if !strings.Contains(err.Error(), "builtin") {
		t.Errorf("error %q does not name the renderer", err)
	}
}

func TestBuiltinRenderer_Available(t *testing.T) {
	if !(BuiltinRenderer{}).Available() {
		t.Error("builtin renderer must always be available")
	}
}
