// Package driver implements the driver registry: it picks the 32 driver pins
// out of a loaded point set and exposes the fixed input/output pairing.
//
// Index convention:
//
//	inputs  0 … 15   (geometry.InputDriver)
//	outputs 16 … 31  (geometry.OutputDriver)
//	input i is paired with output Pairing[i] == i+16
//
// The pairing is a package-level lookup table established at init and never
// mutated. NewRegistry is a pure partition of its input; the caller's slice is
// neither reordered nor modified.
//
// Errors (sentinel, compare with errors.Is):
//
//   - ErrTooFewDrivers    fewer than 32 driver pins (configuration error).
//   - ErrTooManyDrivers   more than 32 driver pins.
//   - ErrDriverIndex      a driver index outside 0–31.
//   - ErrDuplicateDriver  two drivers share an index.
//   - ErrDriverRole       an input index carries an output role or vice versa.
package driver
