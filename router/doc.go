// Package router is the single entry point for building scan chains.
//
// Route takes the full point set of a design (32 driver pins plus any number
// of ordinary pins), partitions it through driver.NewRegistry, dispatches to
// the selected builder and checks the result before summarizing it:
//
//	points → driver.Registry → {greedy | bands}.Build → chain.Validate → stats.FromSet
//
// Two strategies are available:
//
//   - Greedy: greedy nearest insertion across all chains. Shortest total
//     wire length, O(n³) worst case.
//   - Bands:  32 y-bands merged pairwise into the 16 chains. O(n log n),
//     suited to designs with 10⁵–10⁶ pins. This is the default.
//
// Every successful Result holds exactly 16 chains that passed
// chain.Validate; Route never returns a partial result.
package router
