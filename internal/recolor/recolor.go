// Package recolor rewrites the color declarations of an SVG document with
// plain text substitution. The SVG is never parsed; every known form of a
// fill/stroke declaration is matched with a regexp and replaced globally.
package recolor

import (
	"regexp"
	"strings"
)

// The patterns run in this exact order. The generic quoted-attribute forms
// go first so that the narrower style-property and hex forms only ever see
// text the attribute pass left alone; the hex forms run last to normalize
// exact hex values even when the greedy property match trips on malformed
// input.
var (
	fillAttr   = regexp.MustCompile(`fill="[^"]*"`)
	strokeAttr = regexp.MustCompile(`stroke="[^"]*"`)
	fillProp   = regexp.MustCompile(`fill:[^;"}]*;`)
	strokeProp = regexp.MustCompile(`stroke:[^;"}]*;`)
	fillHex6   = regexp.MustCompile(`fill:#[0-9a-fA-F]{6}`)
	strokeHex6 = regexp.MustCompile(`stroke:#[0-9a-fA-F]{6}`)
	fillHex3   = regexp.MustCompile(`fill:#[0-9a-fA-F]{3}\b`)
	strokeHex3 = regexp.MustCompile(`stroke:#[0-9a-fA-F]{3}\b`)
	svgOpenTag = regexp.MustCompile(`<svg\b`)
)

// Apply replaces every recognized fill/stroke declaration in doc with color.
// If the document ends up with no fill= or stroke= token at all, a
// fill attribute is injected into the first <svg> opening tag so the output
// is never colorless. The color value is taken verbatim; Apply cannot fail
// and is idempotent for a fixed color.
func Apply(doc, color string) string {
	out := doc

	out = fillAttr.ReplaceAllString(out, `fill="`+color+`"`)
	out = strokeAttr.ReplaceAllString(out, `stroke="`+color+`"`)
	out = fillProp.ReplaceAllString(out, `fill:`+color+`;`)
	out = strokeProp.ReplaceAllString(out, `stroke:`+color+`;`)
	out = fillHex6.ReplaceAllString(out, `fill:`+color)
	out = strokeHex6.ReplaceAllString(out, `stroke:`+color)
	out = fillHex3.ReplaceAllString(out, `fill:`+color)
	out = strokeHex3.ReplaceAllString(out, `stroke:`+color)

	if !strings.Contains(out, "fill=") && !strings.Contains(out, "stroke=") {
		injected := false
		out = svgOpenTag.ReplaceAllStringFunc(out, func(m string) string {
			if injected {
				return m
			}
			injected = true
			return m + ` fill="` + color + `"`
		})
	}

	return out
}
