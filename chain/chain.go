package chain

import (
	"math"

	"github.com/katalvlaran/scanchain/geometry"
)

// roundScale controls length stabilization precision (1e-9).
const roundScale = 1e9

// Chain is the ordered path of driver pair Pair.
// Points[0] is the input driver, Points[len-1] the paired output driver.
type Chain struct {
	Pair   int
	Points []geometry.Point
}

// New returns the two-point chain in → out for pair i.
func New(i int, in, out geometry.Point) Chain {
	return Chain{Pair: i, Points: []geometry.Point{in, out}}
}

// Length sums metric over consecutive points. A nil metric means Euclidean.
//
// Complexity: O(len(Points)).
func (c Chain) Length(metric geometry.Metric) float64 {
	m := metric.OrDefault()

	var sum float64
	for i := 1; i < len(c.Points); i++ {
		sum += m(c.Points[i-1], c.Points[i])
	}

	return Round(sum)
}

// Interior returns the points strictly between the two drivers.
// The returned slice aliases c.Points.
func (c Chain) Interior() []geometry.Point {
	if len(c.Points) <= 2 {
		return nil
	}

	return c.Points[1 : len(c.Points)-1]
}

// Edges returns the number of edges in c.
func (c Chain) Edges() int {
	if len(c.Points) == 0 {
		return 0
	}

	return len(c.Points) - 1
}

// Set is the collection of chains, indexed by driver pair.
type Set []Chain

// Lengths returns the length of every chain in order.
func (s Set) Lengths(metric geometry.Metric) []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Length(metric)
	}

	return out
}

// Total returns the summed length of all chains.
func (s Set) Total(metric geometry.Metric) float64 {
	var sum float64
	for _, c := range s {
		sum += c.Length(metric)
	}

	return Round(sum)
}

// Pins returns the number of ordinary pins placed across all chains.
func (s Set) Pins() int {
	var n int
	for _, c := range s {
		n += len(c.Interior())
	}

	return n
}

// Round returns x rounded to 1e-9 absolute precision.
func Round(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
