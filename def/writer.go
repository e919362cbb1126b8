package def

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/scanchain/geometry"
)

// ComponentModel is the model written for every ordinary pin.
const ComponentModel = "im_psyched"

// WriteDesign writes points as a design named name with the given die area.
// Drivers go to PINS (named DRIVERPIN_<index>) and ordinary pins to
// COMPONENTS, both in input order. The output parses back into the same
// points.
func WriteDesign(w io.Writer, name string, die geom.Rect, points []geometry.Point) error {
	var drivers, pins []geometry.Point
	for _, p := range points {
		if p.IsDriver() {
			drivers = append(drivers, p)
		} else {
			pins = append(pins, p)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "VERSION 5.8 ;\nDESIGN %s ;\n", name)
	fmt.Fprintf(bw, "DIEAREA ( %s %s ) ( %s %s ) ;\n\n",
		num(die.Min.X), num(die.Min.Y), num(die.Max.X), num(die.Max.Y))

	fmt.Fprintf(bw, "PINS %d ;\n", len(drivers))
	var dir string
	for _, d := range drivers {
		dir = "OUTPUT"
		if d.Role == geometry.InputDriver {
			dir = "INPUT"
		}
		n := DriverPrefix + strconv.Itoa(d.Index)
		fmt.Fprintf(bw, "- %s + NET %s + DIRECTION %s + USE SIGNAL\n", n, n, dir)
		fmt.Fprintf(bw, "  + LAYER metal1 ( 0 0 ) ( 10 10 )\n")
		fmt.Fprintf(bw, "  + PLACED ( %s %s ) N ;\n", num(d.X()), num(d.Y()))
	}
	fmt.Fprintf(bw, "END PINS\n\n")

	fmt.Fprintf(bw, "COMPONENTS %d ;\n", len(pins))
	for _, p := range pins {
		fmt.Fprintf(bw, "%s %s + PLACED ( %s %s ) N ;\n", p.Name, ComponentModel, num(p.X()), num(p.Y()))
	}
	fmt.Fprintf(bw, "END COMPONENTS\n\nEND DESIGN\n")

	return bw.Flush()
}

// num formats a coordinate without exponent and without losing precision.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
