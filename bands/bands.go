package bands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
)

// Intervals is the number of y-bands: one per driver pin.
const Intervals = driver.Count

// Partner pairs band k with band k+16 and back; chain i uses bands i and Partner[i].
var Partner = [Intervals]int{
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// Sentinel errors returned by Build.
var (
	ErrNilRegistry = errors.New("bands: driver registry is nil")
	ErrNotOrdinary = errors.New("bands: pin to assign is not an ordinary pin")
)

// Partition is the split of a y-range into Intervals equal-width bands.
type Partition struct {
	bounds [Intervals + 1]float64
}

// NewPartition spans the y-range of pins. An empty pins slice yields the
// degenerate partition at y=0.
func NewPartition(pins []geometry.Point) Partition {
	box := geometry.Bounds(pins)

	return NewPartitionRange(box.Min.Y, box.Max.Y)
}

// NewPartitionRange splits [lo, hi] into Intervals bands. lo > hi is treated
// as the degenerate range [lo, lo].
func NewPartitionRange(lo, hi float64) Partition {
	if hi < lo {
		hi = lo
	}
	var (
		p     Partition
		width = (hi - lo) / Intervals
		k     int
	)
	for k = 0; k < Intervals; k++ {
		p.bounds[k] = lo + float64(k)*width
	}
	p.bounds[Intervals] = hi

	return p
}

// Bounds returns the 33 band boundaries b_0 … b_32.
func (p Partition) Bounds() []float64 {
	out := make([]float64, len(p.bounds))
	copy(out, p.bounds[:])

	return out
}

// Interval returns the band owning y: the smallest k with y ≤ b_k+1.
// Values outside the range clamp to band 0 or band 31.
//
// Complexity: O(log Intervals).
func (p Partition) Interval(y float64) int {
	k := sort.Search(Intervals, func(k int) bool { return y <= p.bounds[k+1] })
	if k == Intervals {
		k = Intervals - 1
	}

	return k
}

// Assign buckets pins by band and orders each band by ascending x
// (ties: ascending y, then input order).
//
// Complexity: O(n log n).
func Assign(pins []geometry.Point) [Intervals][]geometry.Point {
	var (
		part  = NewPartition(pins)
		bands [Intervals][]geometry.Point
	)
	for _, p := range pins {
		k := part.Interval(p.Y())
		bands[k] = append(bands[k], p)
	}
	for k := range bands {
		sortByX(bands[k])
	}

	return bands
}

// sortByX orders pins by ascending x, then ascending y; equal pins keep
// their relative order.
func sortByX(pins []geometry.Point) {
	sort.SliceStable(pins, func(i, j int) bool {
		if pins[i].X() != pins[j].X() {
			return pins[i].X() < pins[j].X()
		}

		return pins[i].Y() < pins[j].Y()
	})
}

// Build assigns every pin to the chain of its band pair and returns the
// finished Set, chain i serving driver pair i.
//
// Errors: ErrNilRegistry, ErrNotOrdinary.
func Build(reg *driver.Registry, pins []geometry.Point) (chain.Set, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	for i, p := range pins {
		if p.Role != geometry.Ordinary {
			return nil, fmt.Errorf("%w: #%d %s", ErrNotOrdinary, i, p.Name)
		}
	}

	bands := Assign(pins)
	set := make(chain.Set, driver.Pairs)

	var (
		i, j    int
		lower   []geometry.Point
		upper   []geometry.Point
		in, out geometry.Point
	)
	for i = 0; i < driver.Pairs; i++ {
		lower = bands[i]
		upper = bands[Partner[i]]
		in, out = reg.Pair(i)

		pts := make([]geometry.Point, 0, len(lower)+len(upper)+2)
		pts = append(pts, in)
		pts = append(pts, lower...)
		// Bridge to the largest x of the upper band, then walk it right to left.
		for j = len(upper) - 1; j >= 0; j-- {
			pts = append(pts, upper[j])
		}
		pts = append(pts, out)

		set[i] = chain.Chain{Pair: i, Points: pts}
	}

	return set, nil
}
