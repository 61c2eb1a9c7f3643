// Package batch drives the convert pipeline: discover SVG files in one
// directory, resolve a renderer once, convert every file sequentially and
// report the totals. No failure aborts the batch.
package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/farisv/iconmill/config"
	"github.com/farisv/iconmill/internal/render"
)

// Driver runs one batch over a directory.
type Driver struct {
	Cfg      config.Config
	Renderer render.Renderer
	Status   render.Status
}

// NewDriver resolves the rendering capability once, up front. A driver with
// StatusUnavailable still works; every conversion then takes the fallback
// path.
func NewDriver(ctx context.Context, cfg config.Config) *Driver {
	r, status := render.Ensure(ctx, cfg.Renderer)
	switch status {
	case render.StatusInstalled:
		fmt.Printf("Renderer %s installed\n", r.Name())
	case render.StatusAvailable:
		fmt.Printf("Using renderer: %s\n", r.Name())
	default:
		fmt.Println("No renderer available, falling back to recolored SVG output")
	}
	return &Driver{Cfg: cfg, Renderer: r, Status: status}
}

// Discover lists the files directly inside dir whose names end with the
// source extension. Subdirectories are not traversed; entry order is
// whatever the filesystem returns.
func (d *Driver) Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), d.Cfg.SourceExt) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// Run converts every discovered file and returns the totals. Outputs go
// into the scanned directory itself.
func (d *Driver) Run(ctx context.Context, dir string) (Report, error) {
	files, err := d.Discover(dir)
	if err != nil {
		return Report{}, err
	}

	conv := &Converter{Cfg: d.Cfg, Renderer: d.Renderer}
	rep := Report{Files: len(files), Degraded: d.Status == render.StatusUnavailable}

	for _, f := range files {
		fmt.Printf("Converting %s\n", filepath.Base(f))
		res, err := conv.ConvertFile(ctx, f, dir)
		if err != nil {
			log.Printf("Skipping %s: %v", filepath.Base(f), err)
			rep.Failures += 2
			continue
		}
		s := res.Successes()
		rep.Successes += s
		rep.Failures += 2 - s
	}

	rep.Print()
	return rep, nil
}
