// Package scanchain connects the pins of a chip design into 16 balanced
// scan chains.
//
// 🚀 What is scanchain?
//
//	A small, dependency-light toolkit that brings together:
//		• Geometry: pins, drivers, Euclidean and Manhattan distance
//		• Driver registry: the 16 input → output driver pairs
//		• Two builders: greedy nearest insertion and 32 y-bands
//		• Validation: chain endpoints, pin coverage, loops
//		• Statistics: total wire length, mean, standard deviation
//		• DEF I/O: design reader, net writer/reader, synthetic layouts
//		• SVG drawing of the routed chains
//
// ✨ Which builder?
//
//   - greedy – inserts the pin whose cheapest insertion anywhere is smallest;
//     shortest wires, O(n³) worst case, for up to a few thousand pins.
//   - bands  – splits the pins' y-range into 32 bands, chain i walks band i
//     left to right and band i+16 right to left; O(n log n), for 10⁵–10⁶ pins.
//
// Packages:
//
//	geometry/ — Point, Role, Metric (Euclidean, Manhattan), Bounds
//	driver/   — Registry of the 32 driver pins and the pairing table
//	chain/    — Chain, Set, Validate, FromLinks
//	greedy/   — greedy nearest-insertion builder (lazy candidate heap)
//	bands/    — banded builder, Partition, Partner table
//	stats/    — Summarize, FromSet
//	router/   — Route: registry → builder → validation → statistics
//	def/      — DEF design parser, net list reader and writers
//	layout/   — synthetic designs for tests, benchmarks and the CLI
//	render/   — SVG output
//	cmd/scanchain — command line tool (route, check, generate)
//
// Quick start:
//
//	points, _ := layout.Generate(10000, layout.WithSeed(7))
//	res, err := router.Route(points, router.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Stats) // total=… mean=… stddev=… spread=…
package scanchain
