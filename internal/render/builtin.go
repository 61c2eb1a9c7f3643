package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// BuiltinRenderer rasterizes in-process with oksvg/rasterx. It is the last
// resort of automatic renderer selection and needs no external program, so
// Available is always true.
type BuiltinRenderer struct{}

func (BuiltinRenderer) Name() string { return "builtin" }

func (BuiltinRenderer) Available() bool { return true }

func (BuiltinRenderer) Render(ctx context.Context, svg []byte, outPath string, size int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return fmt.Errorf("builtin: decode svg: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	nw := int(math.Ceil(w))
	nh := int(math.Ceil(h))

	// rasterize at the SVG's native size first
	icon.SetTarget(0, 0, float64(nw), float64(nh))
	native := image.NewRGBA(image.Rect(0, 0, nw, nh))
	scanner := rasterx.NewScannerGV(nw, nh, native, native.Bounds())
	icon.Draw(rasterx.NewDasher(nw, nh, scanner), 1.0)

	// then scale to fit the square canvas, centered
	scale := math.Min(float64(size)/w, float64(size)/h)
	ow := int(w * scale)
	oh := int(h * scale)
	x0 := (size - ow) / 2
	y0 := (size - oh) / 2

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(
		out,
		image.Rect(x0, y0, x0+ow, y0+oh),
		native,
		native.Bounds(),
		draw.Over,
		nil,
	)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("builtin: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("builtin: encode png: %w", err)
	}
	return nil
}
