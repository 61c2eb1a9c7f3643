package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/farisv/iconmill/config"
	"github.com/farisv/iconmill/internal/recolor"
	"github.com/farisv/iconmill/internal/render"
)

// Converter produces the two palette variants of one source file. Renderer
// may be nil when the batch runs degraded; every render attempt then takes
// the fallback path.
type Converter struct {
	Cfg      config.Config
	Renderer render.Renderer
}

type variant struct {
	suffix string
	color  string
}

func (c *Converter) variants() []variant {
	return []variant{
		{suffix: "", color: c.Cfg.Colors.Default},
		{suffix: c.Cfg.ActiveSuffix, color: c.Cfg.Colors.Active},
	}
}

// ConvertFile reads srcPath and converts both variants in order, default
// before active. A failed variant never aborts the other one. The returned
// error is non-nil only when the source itself could not be read; the
// caller counts that as a whole-file failure.
func (c *Converter) ConvertFile(ctx context.Context, srcPath, outDir string) (FileResult, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return FileResult{Source: srcPath}, fmt.Errorf("read %s: %w", srcPath, err)
	}

	res := FileResult{Source: srcPath}
	for _, v := range c.variants() {
		o := c.convertVariant(ctx, string(data), srcPath, outDir, v)
		if o.OK() {
			fmt.Printf("  ok (%s): %s\n", o.Method, filepath.Base(o.OutPath))
		} else {
			log.Printf("  failed %s%s: %v", filepath.Base(srcPath), v.suffix, o.Err)
		}
		res.Variants = append(res.Variants, o)
	}
	return res, nil
}

func (c *Converter) convertVariant(ctx context.Context, src, srcPath, outDir string, v variant) VariantOutcome {
	base := strings.TrimSuffix(filepath.Base(srcPath), c.Cfg.SourceExt)
	outPath := filepath.Join(outDir, base+v.suffix+c.Cfg.RasterExt)
	o := VariantOutcome{Suffix: v.suffix, OutPath: outPath}

	recolored := recolor.Apply(src, v.color)
	renderErr := c.renderSafely(ctx, []byte(recolored), outPath)
	if renderErr == nil {
		o.Method = MethodRaster
		return o
	}
	if renderErr != render.ErrUnavailable {
		log.Printf("  render failed for %s%s: %v", base, v.suffix, renderErr)
	}

	// the fallback recolors the original text itself
	fbPath, err := c.writeFallback(src, v.color, outPath)
	if err != nil {
		o.Err = err
		return o
	}
	o.Method = MethodFallback
	o.OutPath = fbPath
	return o
}

// renderSafely keeps renderer failures, including panics from the SVG
// parser on malformed input, at the adapter boundary.
func (c *Converter) renderSafely(ctx context.Context, svg []byte, outPath string) (err error) {
	if c.Renderer == nil {
		return render.ErrUnavailable
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("renderer panic: %v", p)
		}
	}()
	return c.Renderer.Render(ctx, svg, outPath, c.Cfg.Size)
}

// writeFallback recolors the original source text and saves it next to the
// intended raster output, with the raster extension swapped back to the
// source extension and a _temp marker appended to the base name.
func (c *Converter) writeFallback(src, color, rasterPath string) (string, error) {
	recolored := recolor.Apply(src, color)
	path := strings.TrimSuffix(rasterPath, c.Cfg.RasterExt) + "_temp" + c.Cfg.SourceExt
	if err := os.WriteFile(path, []byte(recolored), 0644); err != nil {
		return "", fmt.Errorf("write fallback: %w", err)
	}
	fmt.Printf("  saved %s for manual conversion\n", filepath.Base(path))
	return path, nil
}
