package def

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/scanchain/geometry"
)

// DriverPrefix starts the name of every driver pin; the rest is its index.
const DriverPrefix = "DRIVERPIN_"

// Sentinel errors returned while converting a parsed design.
var (
	ErrNoPlacement = errors.New("def: pin has no PLACED/FIXED location")
	ErrDriverName  = errors.New("def: driver pin name is not DRIVERPIN_<index>")
)

// Design is a parsed DEF design.
type Design struct {
	Name       string
	Statements []*Statement
	Pins       []*Pin
	Components []*Component
}

func newDesign(f *File) *Design {
	d := &Design{}
	for _, s := range f.Sections {
		switch {
		case s.Pins != nil:
			d.Pins = append(d.Pins, s.Pins.Pins...)
		case s.Components != nil:
			d.Components = append(d.Components, s.Components.Components...)
		case s.Statement != nil:
			d.Statements = append(d.Statements, s.Statement)
			if s.Statement.Name == "DESIGN" && len(s.Statement.Args) > 0 {
				d.Name = s.Statement.Args[0]
			}
		}
	}

	return d
}

// DieArea returns the DIEAREA rectangle, if the design declares one.
func (d *Design) DieArea() (geom.Rect, bool) {
	for _, s := range d.Statements {
		if s.Name != "DIEAREA" {
			continue
		}
		var nums []float64
		for _, a := range s.Args {
			if v, err := strconv.ParseFloat(a, 64); err == nil {
				nums = append(nums, v)
			}
		}
		if len(nums) < 4 {
			return geom.Rect{}, false
		}
		r := geom.Rect{Min: geom.Coord{X: nums[0], Y: nums[1]}, Max: geom.Coord{X: nums[0], Y: nums[1]}}
		r.ExpandToContainCoord(geom.Coord{X: nums[2], Y: nums[3]})

		return r, true
	}

	return geom.Rect{}, false
}

// Points converts the design into router input: the driver pins in file
// order followed by the ordinary pins in file order.
//
// Errors: ErrDriverName, ErrNoPlacement.
func (d *Design) Points() ([]geometry.Point, error) {
	out := make([]geometry.Point, 0, len(d.Pins)+len(d.Components))

	var (
		index int
		role  geometry.Role
		err   error
	)
	for _, p := range d.Pins {
		if index, err = driverIndex(p.Name); err != nil {
			return nil, fmt.Errorf("%w: %s at %s", err, p.Name, p.Pos)
		}
		c, ok := placement(p.Props)
		if !ok {
			return nil, fmt.Errorf("%w: %s at %s", ErrNoPlacement, p.Name, p.Pos)
		}
		role = geometry.OutputDriver
		if word(p.Props, "DIRECTION") == "INPUT" {
			role = geometry.InputDriver
		}
		out = append(out, geometry.NewDriver(p.Name, c.X, c.Y, role, index))
	}
	for _, cm := range d.Components {
		c, ok := placement(cm.Props)
		if !ok {
			return nil, fmt.Errorf("%w: %s at %s", ErrNoPlacement, cm.Name, cm.Pos)
		}
		out = append(out, geometry.NewPoint(cm.Name, c.X, c.Y))
	}

	return out, nil
}

// driverIndex extracts n from "DRIVERPIN_<n>".
func driverIndex(name string) (int, error) {
	rest, ok := strings.CutPrefix(name, DriverPrefix)
	if !ok {
		return 0, ErrDriverName
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, ErrDriverName
	}

	return n, nil
}
