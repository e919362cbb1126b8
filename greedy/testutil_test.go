package greedy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/layout"
)

// setup generates a layout of n pins and returns its registry and pins.
func setup(t testing.TB, n int, seed int64) (*driver.Registry, []geometry.Point) {
	t.Helper()

	pts, err := layout.Generate(n, layout.WithSeed(seed))
	require.NoError(t, err)
	reg, err := driver.NewRegistry(pts)
	require.NoError(t, err)

	return reg, geometry.OrdinaryPins(pts)
}

// snapToGrid rounds pin coordinates to multiples of step so that many
// insertion costs tie exactly.
func snapToGrid(pins []geometry.Point, step float64) []geometry.Point {
	out := make([]geometry.Point, len(pins))
	for i, p := range pins {
		out[i] = geometry.NewPoint(p.Name, math.Round(p.X()/step)*step, math.Round(p.Y()/step)*step)
	}

	return out
}

// naiveBuild is the literal O(n³) greedy scan: every step evaluates every
// remaining pin against every edge of every chain and keeps the first
// minimum in (cost, pin ordinal, chain, edge sequence) order.
func naiveBuild(reg *driver.Registry, pins []geometry.Point, m geometry.Metric) chain.Set {
	type path struct {
		pts []geometry.Point
		seq []int // seq[j] is the sequence of edge pts[j]→pts[j+1]
	}

	paths := make([]path, driver.Pairs)
	for i := range paths {
		in, out := reg.Pair(i)
		paths[i] = path{pts: []geometry.Point{in, out}, seq: []int{i}}
	}
	nextSeq := driver.Pairs
	placed := make([]bool, len(pins))

	for step := 0; step < len(pins); step++ {
		var (
			found                    bool
			bCost                    float64
			bPin, bChain, bPos, bSeq int
		)
		for k, p := range pins {
			if placed[k] {
				continue
			}
			for c := range paths {
				for j := 0; j+1 < len(paths[c].pts); j++ {
					u, v := paths[c].pts[j], paths[c].pts[j+1]
					cost := m(u, p) + m(p, v) - m(u, v)
					s := paths[c].seq[j]
					better := !found || cost < bCost ||
						(cost == bCost && (k < bPin ||
							(k == bPin && (c < bChain || (c == bChain && s < bSeq)))))
					if better {
						found = true
						bCost, bPin, bChain, bPos, bSeq = cost, k, c, j, s
					}
				}
			}
		}

		pa := &paths[bChain]
		pa.pts = append(pa.pts[:bPos+1], append([]geometry.Point{pins[bPin]}, pa.pts[bPos+1:]...)...)
		pa.seq = append(pa.seq[:bPos], append([]int{nextSeq, nextSeq + 1}, pa.seq[bPos+1:]...)...)
		nextSeq += 2
		placed[bPin] = true
	}

	set := make(chain.Set, driver.Pairs)
	for i, pa := range paths {
		set[i] = chain.Chain{Pair: i, Points: pa.pts}
	}

	return set
}
