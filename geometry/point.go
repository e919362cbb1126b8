package geometry

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Role classifies a pin.
type Role int

const (
	// Ordinary pins are the ones chained between drivers.
	Ordinary Role = iota

	// InputDriver pins start a chain (driver indices 0–15).
	InputDriver

	// OutputDriver pins end a chain (driver indices 16–31).
	OutputDriver
)

// NoIndex is the driver index carried by ordinary pins.
const NoIndex = -1

// String returns a short lowercase label for r.
func (r Role) String() string {
	switch r {
	case Ordinary:
		return "ordinary"
	case InputDriver:
		return "input"
	case OutputDriver:
		return "output"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Point is an immutable pin location. The zero value is an unnamed ordinary
// pin at the origin with Index 0; use NewPoint or NewDriver instead.
//
// Point is comparable: two points are the same pin iff all fields match.
type Point struct {
	Pos   geom.Coord // location on the die
	Name  string     // pin identifier, may be empty
	Role  Role       // ordinary / input driver / output driver
	Index int        // driver index 0–31, NoIndex for ordinary pins
}

// NewPoint returns an ordinary pin.
func NewPoint(name string, x, y float64) Point {
	return Point{
		Pos:   geom.Coord{X: x, Y: y},
		Name:  name,
		Role:  Ordinary,
		Index: NoIndex,
	}
}

// NewDriver returns a driver pin with the given role and fixed index.
// No validation happens here; the driver registry rejects inconsistent
// role/index combinations.
func NewDriver(name string, x, y float64, role Role, index int) Point {
	return Point{
		Pos:   geom.Coord{X: x, Y: y},
		Name:  name,
		Role:  role,
		Index: index,
	}
}

// X returns the x-coordinate.
func (p Point) X() float64 { return p.Pos.X }

// Y returns the y-coordinate.
func (p Point) Y() float64 { return p.Pos.Y }

// IsDriver reports whether p is an input or output driver.
func (p Point) IsDriver() bool {
	return p.Role == InputDriver || p.Role == OutputDriver
}

// String renders p as "name (x, y)".
func (p Point) String() string {
	return fmt.Sprintf("%s (%g, %g)", p.Name, p.Pos.X, p.Pos.Y)
}

// OrdinaryPins returns the ordinary pins of points, preserving input order.
// The input slice is not modified.
//
// Complexity: O(n).
func OrdinaryPins(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Role == Ordinary {
			out = append(out, p)
		}
	}

	return out
}

// Bounds returns the smallest rectangle containing every point.
// An empty input yields the zero Rect.
//
// Complexity: O(n).
func Bounds(points []Point) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: points[0].Pos, Max: points[0].Pos}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p.Pos)
	}

	return r
}
