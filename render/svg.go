package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// SVG is a minimal SVG serializer. The first write error is kept and
// returned by End; later calls are no-ops.
type SVG struct {
	w   *bufio.Writer
	err error
}

// NewSVG returns an SVG writing to w.
func NewSVG(w io.Writer) *SVG {
	return &SVG{w: bufio.NewWriter(w)}
}

func (svg *SVG) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

// attrs joins extra attributes: entries with '=' are copied, anything else
// becomes a style attribute.
func attrs(s []string) string {
	var b strings.Builder
	for _, a := range s {
		switch {
		case strings.Contains(a, "="):
			b.WriteString(a)
			b.WriteByte(' ')
		case a != "":
			fmt.Fprintf(&b, "style='%s' ", a)
		}
	}

	return b.String()
}

// Start opens the document with the given viewBox.
func (svg *SVG) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), attrs(s))
}

// End closes the document and flushes it.
func (svg *SVG) End() error {
	svg.printf("</svg>\n")
	if svg.err != nil {
		return svg.err
	}

	return svg.w.Flush()
}

// Polyline draws an open path through pts.
func (svg *SVG) Polyline(pts []geom.Coord, s ...string) {
	svg.printf("<polyline points='")
	for i, p := range pts {
		if i > 0 {
			svg.printf(" ")
		}
		svg.printf("%f,%f", p.X, p.Y)
	}
	svg.printf("' %s/>\n", attrs(s))
}

// Circle draws a circle of radius r around c.
func (svg *SVG) Circle(c geom.Coord, r float64, s ...string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X, c.Y, r, attrs(s))
}
