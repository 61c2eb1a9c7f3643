package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/farisv/iconmill/config"
	"github.com/farisv/iconmill/internal/render"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.svg")
	writeSource(t, dir, "b.svg")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	// nested directories are not traversed
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	writeSource(t, filepath.Join(dir, "nested"), "c.svg")

	d := &Driver{Cfg: config.Default()}
	files, err := d.Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("Discover() = %v, want 2 entries", files)
	}
	for _, f := range files {
		if filepath.Dir(f) != dir {
			t.Errorf("discovered file outside dir: %s", f)
		}
	}
}

func TestRun_AllFilesConvert(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		writeSource(t, dir, fmt.Sprintf("icon%d.svg", i))
	}

	d := &Driver{Cfg: config.Default(), Renderer: &stubRenderer{}, Status: render.StatusAvailable}
	rep, err := d.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := Report{Files: 3, Successes: 6, Failures: 0}
	if rep != want {
		t.Errorf("Run() = %+v, want %+v", rep, want)
	}
}

func TestRun_UnreadableFileCountsTwoFailures(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "bad.svg"), 0755); err != nil {
		t.Fatal(err)
	}

	d := &Driver{Cfg: config.Default(), Renderer: &stubRenderer{}, Status: render.StatusAvailable}
	rep, err := d.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := Report{Files: 1, Successes: 0, Failures: 2}
	if rep != want {
		t.Errorf("Run() = %+v, want %+v", rep, want)
	}
}

func TestRun_DegradedWritesFallbackFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "icon.svg")

	d := &Driver{Cfg: config.Default(), Renderer: nil, Status: render.StatusUnavailable}
	rep, err := d.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !rep.Degraded {
		t.Error("report not marked degraded")
	}
	if rep.Successes != 2 || rep.Failures != 0 {
		t.Errorf("Run() = %+v, want 2 successes via fallback", rep)
	}
	for _, name := range []string{"icon_temp.svg", "icon-active_temp.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing fallback file %s: %v", name, err)
		}
	}
}
