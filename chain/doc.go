// Package chain defines the Chain and Set types produced by the builders, their
// length accounting, and the structural checks every finished Set must pass.
//
// Invariants of a valid Set (see Validate):
//
//   - exactly driver.Pairs chains, chain i belongs to driver pair i;
//   - chain i starts at input driver i and ends at output driver driver.Pairing[i];
//   - every interior point is an ordinary pin;
//   - every ordinary pin of the input appears in exactly one chain, exactly once.
//
// FromLinks rebuilds a Set from a successor map (pin name → next pin name), the
// shape in which routed nets are stored on disk.
//
// Lengths are stabilized to 1e-9 so totals compare equal across platforms.
package chain
