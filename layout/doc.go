// Package layout generates deterministic synthetic pin layouts for tests,
// benchmarks and the `scanchain generate` command.
//
// A layout places the 16 input drivers evenly along the left die edge and the
// 16 output drivers along the right die edge (both in index order, bottom to
// top), then draws ordinary pins uniformly inside the die.
//
// Determinism: the same seed always yields the same layout. Seed 0 maps to a
// fixed default seed, so the zero configuration is reproducible too.
//
// Option constructors validate their arguments and panic on meaningless input
// (a non-positive die); Generate itself never panics.
package layout
