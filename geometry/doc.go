// Package geometry defines the immutable pin Point used across scanchain and the
// distance measures shared by both chain builders.
//
// A Point carries its position (a github.com/jbeda/geom Coord), an optional pin
// name, and a role flag: ordinary pin, input driver or output driver. Driver
// points also carry their fixed driver index 0–31. Roles never change once a
// point is created.
//
// Distance measures:
//
//   - Euclidean (default): straight-line length, used for chain lengths and
//     insertion costs.
//   - Manhattan: |dx| + |dy|, the measure used by the legacy DEF tooling; kept
//     available as a Metric for comparison runs.
//
// Both are total over all real inputs: coincident points are at distance 0 and
// no error is ever returned.
package geometry
