// Package render draws routed scan chains as SVG.
//
// Every chain becomes one polyline; driver pins are drawn red and ordinary
// pins blue. DEF coordinates grow upwards, so y is flipped into SVG space.
package render
