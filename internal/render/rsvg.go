package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
)

// RsvgRenderer shells out to rsvg-convert (librsvg).
type RsvgRenderer struct{}

func (RsvgRenderer) Name() string { return "rsvg" }

func (RsvgRenderer) Available() bool {
	_, err := lookPath("rsvg-convert")
	return err == nil
}

func (RsvgRenderer) Render(ctx context.Context, svg []byte, outPath string, size int) error {
	edge := strconv.Itoa(size)
	cmd := command(ctx, "rsvg-convert", "-f", "png", "-w", edge, "-h", edge, "--keep-aspect-ratio", "-o", outPath)
	cmd.Stdin = bytes.NewReader(svg)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rsvg-convert: %v: %s", err, stderr.String())
	}
	return nil
}
