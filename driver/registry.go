package driver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scanchain/geometry"
)

const (
	// Pairs is the number of chains / input-output driver pairs.
	Pairs = 16

	// Count is the total number of driver pins.
	Count = 2 * Pairs
)

// Pairing maps input driver index i to its output driver index.
var Pairing = [Pairs]int{16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31}

// Sentinel errors returned by NewRegistry.
var (
	ErrTooFewDrivers   = errors.New("driver: fewer than 32 driver pins")
	ErrTooManyDrivers  = errors.New("driver: more than 32 driver pins")
	ErrDriverIndex     = errors.New("driver: driver index out of range")
	ErrDuplicateDriver = errors.New("driver: duplicate driver index")
	ErrDriverRole      = errors.New("driver: driver role does not match its index")
)

// Registry holds the 32 driver pins indexed by driver index.
// A Registry is read-only after construction and safe to share.
type Registry struct {
	drivers [Count]geometry.Point
}

// NewRegistry partitions points and returns the registry of its driver pins.
// Ordinary pins are ignored.
//
// Validation order:
//  1. driver count (ErrTooFewDrivers / ErrTooManyDrivers),
//  2. index range (ErrDriverIndex),
//  3. uniqueness (ErrDuplicateDriver),
//  4. role ↔ index half (ErrDriverRole).
//
// Complexity: O(n).
func NewRegistry(points []geometry.Point) (*Registry, error) {
	var n int
	for _, p := range points {
		if p.IsDriver() {
			n++
		}
	}
	if n < Count {
		return nil, fmt.Errorf("%w: found %d", ErrTooFewDrivers, n)
	}
	if n > Count {
		return nil, fmt.Errorf("%w: found %d", ErrTooManyDrivers, n)
	}

	var (
		r    Registry
		seen [Count]bool
	)
	for _, p := range points {
		if !p.IsDriver() {
			continue
		}
		if p.Index < 0 || p.Index >= Count {
			return nil, fmt.Errorf("%w: %s has index %d", ErrDriverIndex, p.Name, p.Index)
		}
		if seen[p.Index] {
			return nil, fmt.Errorf("%w: %d (%s)", ErrDuplicateDriver, p.Index, p.Name)
		}
		if p.Role != roleOf(p.Index) {
			return nil, fmt.Errorf("%w: %s is %s, index %d wants %s",
				ErrDriverRole, p.Name, p.Role, p.Index, roleOf(p.Index))
		}
		seen[p.Index] = true
		r.drivers[p.Index] = p
	}

	return &r, nil
}

// roleOf returns the role implied by a driver index.
func roleOf(index int) geometry.Role {
	if index < Pairs {
		return geometry.InputDriver
	}

	return geometry.OutputDriver
}

// Input returns input driver i (0 ≤ i < Pairs). It panics on out-of-range i
// like a slice index would.
func (r *Registry) Input(i int) geometry.Point {
	return r.drivers[i]
}

// Output returns the output driver paired with input i (0 ≤ i < Pairs).
func (r *Registry) Output(i int) geometry.Point {
	return r.drivers[Pairing[i]]
}

// Pair returns the (input, output) drivers of chain i.
func (r *Registry) Pair(i int) (in, out geometry.Point) {
	return r.Input(i), r.Output(i)
}

// Driver returns the driver with the given index 0–31.
func (r *Registry) Driver(index int) geometry.Point {
	return r.drivers[index]
}

// Pairs returns the number of chains served by the registry.
func (r *Registry) Pairs() int { return Pairs }

// Drivers returns a copy of all 32 drivers in index order.
func (r *Registry) Drivers() []geometry.Point {
	out := make([]geometry.Point, Count)
	copy(out, r.drivers[:])

	return out
}
