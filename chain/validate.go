package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
)

// Sentinel errors returned by Validate and FromLinks.
var (
	ErrChainCount     = errors.New("chain: wrong number of chains")
	ErrEndpoints      = errors.New("chain: chain does not run from its input driver to its paired output driver")
	ErrDriverInterior = errors.New("chain: driver pin inside a chain")
	ErrUnknownPin     = errors.New("chain: pin not present in the input set")
	ErrPinDuplicated  = errors.New("chain: pin routed more than once")
	ErrPinMissing     = errors.New("chain: pin not routed")
	ErrLoop           = errors.New("chain: loop detected")
	ErrBrokenChain    = errors.New("chain: chain does not reach an output driver")
)

// Validate checks the structural invariants of set against the registry and
// the ordinary pins it was built from. pins is treated as a multiset: a pin
// listed twice must be routed twice.
//
// Complexity: O(n) time, O(n) extra space.
func Validate(set Set, reg *driver.Registry, pins []geometry.Point) error {
	if len(set) != driver.Pairs {
		return fmt.Errorf("%w: got %d, want %d", ErrChainCount, len(set), driver.Pairs)
	}

	// Remaining multiplicity of every input pin.
	left := make(map[geometry.Point]int, len(pins))
	for _, p := range pins {
		left[p]++
	}

	var (
		i       int
		c       Chain
		p       geometry.Point
		in, out geometry.Point
	)
	for i, c = range set {
		in, out = reg.Pair(i)
		if c.Pair != i || len(c.Points) < 2 || c.Points[0] != in || c.Points[len(c.Points)-1] != out {
			return fmt.Errorf("%w: chain %d", ErrEndpoints, i)
		}
		for _, p = range c.Interior() {
			if p.IsDriver() {
				return fmt.Errorf("%w: %s in chain %d", ErrDriverInterior, p.Name, i)
			}
			n, ok := left[p]
			if !ok {
				return fmt.Errorf("%w: %s in chain %d", ErrUnknownPin, p, i)
			}
			if n == 0 {
				return fmt.Errorf("%w: %s in chain %d", ErrPinDuplicated, p, i)
			}
			left[p] = n - 1
		}
	}

	for p, n := range left {
		if n > 0 {
			return fmt.Errorf("%w: %s", ErrPinMissing, p)
		}
	}

	return nil
}

// FromLinks rebuilds a Set by following links (pin name → successor name) from
// each input driver until an output driver is reached. byName resolves names
// of drivers and ordinary pins alike.
//
// The rebuilt chains are not validated beyond traversal; call Validate to
// check endpoints and coverage.
//
// Complexity: O(n).
func FromLinks(links map[string]string, reg *driver.Registry, byName map[string]geometry.Point) (Set, error) {
	set := make(Set, driver.Pairs)
	visited := make(map[string]bool, len(links))

	var (
		i    int
		name string
		next string
		ok   bool
		p    geometry.Point
	)
	for i = 0; i < driver.Pairs; i++ {
		start := reg.Input(i)
		pts := []geometry.Point{start}
		name = start.Name
		for {
			next, ok = links[name]
			if !ok {
				return nil, fmt.Errorf("%w: chain %d stops at %s", ErrBrokenChain, i, name)
			}
			if visited[next] {
				return nil, fmt.Errorf("%w: %s reached twice", ErrLoop, next)
			}
			visited[next] = true

			p, ok = byName[next]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownPin, next)
			}
			pts = append(pts, p)
			if p.Role == geometry.OutputDriver {
				break
			}
			if p.Role == geometry.InputDriver {
				return nil, fmt.Errorf("%w: %s in chain %d", ErrDriverInterior, p.Name, i)
			}
			name = next
		}
		set[i] = Chain{Pair: i, Points: pts}
	}

	return set, nil
}
