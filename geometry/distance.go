package geometry

import (
	"errors"
	"math"
	"strings"
)

// ErrUnknownMetric is returned by ParseMetric for unrecognized names.
var ErrUnknownMetric = errors.New("geometry: unknown metric")

// Metric measures the wiring length between two pins.
// Implementations must be symmetric, non-negative and satisfy the triangle
// inequality; the greedy builder relies on it for non-negative insertion costs.
type Metric func(a, b Point) float64

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return a.Pos.DistanceFrom(b.Pos)
}

// Euclidean is Distance as a Metric.
var Euclidean Metric = Distance

// Manhattan returns |ax−bx| + |ay−by|.
func Manhattan(a, b Point) float64 {
	d := a.Pos.Minus(b.Pos)
	return math.Abs(d.X) + math.Abs(d.Y)
}

// OrDefault returns m, or Euclidean when m is nil.
func (m Metric) OrDefault() Metric {
	if m == nil {
		return Euclidean
	}

	return m
}

// ParseMetric maps a CLI/config name to a Metric.
// Accepted names (case-insensitive): "euclidean", "euclid", "manhattan", "l1".
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean", "euclid", "l2":
		return Euclidean, nil
	case "manhattan", "l1":
		return Manhattan, nil
	default:
		return nil, ErrUnknownMetric
	}
}
