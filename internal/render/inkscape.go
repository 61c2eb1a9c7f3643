package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
)

// InkscapeRenderer shells out to inkscape in pipe mode.
type InkscapeRenderer struct{}

func (InkscapeRenderer) Name() string { return "inkscape" }

func (InkscapeRenderer) Available() bool {
	_, err := lookPath("inkscape")
	return err == nil
}

func (InkscapeRenderer) Render(ctx context.Context, svg []byte, outPath string, size int) error {
	edge := strconv.Itoa(size)
	cmd := command(ctx, "inkscape",
		"--export-type", "png",
		"--export-filename", outPath,
		"--export-width", edge,
		"--export-height", edge,
		"--export-background-opacity", "0",
		"--pipe")
	cmd.Stdin = bytes.NewReader(svg)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("inkscape: %v: %s", err, stderr.String())
	}
	return nil
}
