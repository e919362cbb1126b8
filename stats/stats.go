package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
)

// ErrChainCount is returned when the number of lengths is not driver.Pairs.
var ErrChainCount = errors.New("stats: wrong number of chain lengths")

// Stats is the summary of one routing result.
type Stats struct {
	Lengths      []float64 // per chain, indexed by driver pair
	Total        float64   // sum of Lengths
	Mean         float64   // Total / 16
	StdDev       float64   // population standard deviation
	SampleStdDev float64   // n-1 denominator
	Min, Max     float64
	Spread       float64 // Max - Min
}

// Summarize computes Stats over exactly driver.Pairs lengths.
// The input slice is copied.
//
// Complexity: O(n).
func Summarize(lengths []float64) (Stats, error) {
	if len(lengths) != driver.Pairs {
		return Stats{}, fmt.Errorf("%w: got %d, want %d", ErrChainCount, len(lengths), driver.Pairs)
	}

	var (
		st  Stats
		n   = float64(len(lengths))
		ss  float64 // sum of squared deviations
		d   float64
		lo  = math.Inf(1)
		hi  = math.Inf(-1)
	)
	st.Lengths = append([]float64(nil), lengths...)

	// 1) Total and extremes.
	for _, l := range lengths {
		st.Total += l
		if l < lo {
			lo = l
		}
		if l > hi {
			hi = l
		}
	}
	st.Mean = st.Total / n

	// 2) Deviations around the mean (two-pass for numerical stability).
	for _, l := range lengths {
		d = l - st.Mean
		ss += d * d
	}

	st.Total = chain.Round(st.Total)
	st.Mean = chain.Round(st.Mean)
	st.StdDev = chain.Round(math.Sqrt(ss / n))
	st.SampleStdDev = chain.Round(math.Sqrt(ss / (n - 1)))
	st.Min, st.Max = lo, hi
	st.Spread = chain.Round(hi - lo)

	return st, nil
}

// FromSet measures every chain of set with metric (nil means Euclidean)
// and summarizes the lengths.
func FromSet(set chain.Set, metric geometry.Metric) (Stats, error) {
	return Summarize(set.Lengths(metric))
}

// String renders the headline figures on one line.
func (s Stats) String() string {
	return fmt.Sprintf("total=%.4f mean=%.4f stddev=%.4f spread=%.4f", s.Total, s.Mean, s.StdDev, s.Spread)
}
