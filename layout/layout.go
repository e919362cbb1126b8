package layout

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
)

// ErrNegativeCount is returned when the requested pin count is negative.
var ErrNegativeCount = errors.New("layout: negative pin count")

// DriverName returns the canonical name of driver index i ("DRIVERPIN_<i>").
func DriverName(i int) string {
	return fmt.Sprintf("DRIVERPIN_%d", i)
}

// Drivers returns the 32 driver pins for a width×height die: inputs at x=0 and
// outputs at x=width, spaced evenly in y and ordered by index.
//
// Complexity: O(1).
func Drivers(width, height float64) []geometry.Point {
	out := make([]geometry.Point, 0, driver.Count)
	step := height / float64(driver.Pairs+1)

	var i int
	for i = 0; i < driver.Pairs; i++ {
		out = append(out, geometry.NewDriver(DriverName(i), 0, step*float64(i+1), geometry.InputDriver, i))
	}
	for i = 0; i < driver.Pairs; i++ {
		idx := driver.Pairing[i]
		out = append(out, geometry.NewDriver(DriverName(idx), width, step*float64(i+1), geometry.OutputDriver, idx))
	}

	return out
}

// Generate returns the 32 drivers followed by n ordinary pins drawn uniformly
// inside the die. Pin names are prefix + ordinal ("p0", "p1", …).
//
// Complexity: O(n).
func Generate(n int, opts ...Option) ([]geometry.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := cfg.rng()
	out := Drivers(cfg.width, cfg.height)
	out = append(make([]geometry.Point, 0, len(out)+n), out...)

	var (
		i    int
		x, y float64
	)
	for i = 0; i < n; i++ {
		x = r.Float64() * cfg.width
		y = r.Float64() * cfg.height
		out = append(out, geometry.NewPoint(fmt.Sprintf("%s%d", cfg.prefix, i), x, y))
	}

	return out, nil
}
