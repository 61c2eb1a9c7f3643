// Package render turns recolored SVG text into fixed-size PNG files. Three
// renderers are supported: the rsvg-convert and inkscape command line tools,
// and a built-in rasterizer that needs no external program.
package render

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when rendering is requested but no renderer
// could be made available at batch start.
var ErrUnavailable = errors.New("render: no renderer available")

// Renderer rasterizes one SVG document to a square PNG of the given edge
// size. Render writes exactly one file on success; on failure the output
// path may hold a partial file, which callers treat the same as no file.
type Renderer interface {
	Name() string
	Available() bool
	Render(ctx context.Context, svg []byte, outPath string, size int) error
}
