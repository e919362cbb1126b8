package render

import (
	"fmt"
	"io"
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/geometry"
)

// Colours of the two pin kinds.
const (
	DriverColor = "red"
	PinColor    = "blue"
)

// Options configures Chains.
//
// Margin – empty border around the drawing, as a fraction of the larger side.
// Radius – pin radius, as a fraction of the larger side.
type Options struct {
	Margin float64
	Radius float64
}

// DefaultOptions returns a 2% margin and 0.3% pin radius.
func DefaultOptions() Options {
	return Options{Margin: 0.02, Radius: 0.003}
}

// Chains writes set as an SVG document to w.
func Chains(w io.Writer, set chain.Set, opts Options) error {
	// 1) Bounds of everything drawn.
	var all []geometry.Point
	for _, c := range set {
		all = append(all, c.Points...)
	}
	box := geometry.Bounds(all)
	side := math.Max(box.Width(), box.Height())
	if side == 0 {
		side = 1
	}
	pad := side * opts.Margin
	view := geom.Rect{
		Min: geom.Coord{X: box.Min.X - pad, Y: box.Min.Y - pad},
		Max: geom.Coord{X: box.Max.X + pad, Y: box.Max.Y + pad},
	}
	r := side * opts.Radius

	// flip maps a design coordinate to SVG space (y down).
	flip := func(p geometry.Point) geom.Coord {
		return geom.Coord{X: p.X(), Y: box.Max.Y + box.Min.Y - p.Y()}
	}

	svg := NewSVG(w)
	svg.Start(view, "fill='none'")

	// 2) One polyline per chain, hue spread over the pairs.
	var (
		pts   []geom.Coord
		width = fmt.Sprintf("stroke-width='%f'", r/2)
	)
	for i, c := range set {
		pts = pts[:0]
		for _, p := range c.Points {
			pts = append(pts, flip(p))
		}
		hue := 360 * i / max(len(set), 1)
		svg.Polyline(pts, fmt.Sprintf("stroke='hsl(%d,70%%,45%%)'", hue), width)
	}

	// 3) Pins on top of the wires.
	for _, p := range all {
		color := PinColor
		if p.IsDriver() {
			color = DriverColor
		}
		svg.Circle(flip(p), r, fmt.Sprintf("fill='%s'", color))
	}

	return svg.End()
}
