package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/greedy"
	"github.com/katalvlaran/scanchain/stats"
)

// ErrUnsupportedStrategy is returned for an unknown Strategy value or name.
var ErrUnsupportedStrategy = errors.New("router: unsupported strategy")

// Strategy selects the chain builder.
type Strategy int

const (
	// Bands is the O(n log n) interval-bucketed builder.
	Bands Strategy = iota
	// Greedy is the greedy nearest-insertion builder.
	Greedy
)

// String returns the canonical name of s.
func (s Strategy) String() string {
	switch s {
	case Bands:
		return "bands"
	case Greedy:
		return "greedy"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy, case-insensitively.
// "fast" and "slow" are accepted as aliases of bands and greedy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bands", "band", "fast":
		return Bands, nil
	case "greedy", "slow", "insertion":
		return Greedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
	}
}

// Options configures Route.
//
// Strategy – chain builder (default Bands).
// Metric   – distance measure used for building and for the statistics;
// nil means geometry.Euclidean.
// OnInsert – per-step hook, honored by the Greedy strategy only.
type Options struct {
	Strategy Strategy
	Metric   geometry.Metric
	OnInsert func(greedy.Insertion)
}

// DefaultOptions returns the Bands strategy with Euclidean distance.
func DefaultOptions() Options {
	return Options{
		Strategy: Bands,
		Metric:   geometry.Euclidean,
	}
}

// Result is the validated outcome of Route.
type Result struct {
	Strategy Strategy
	Set      chain.Set
	Stats    stats.Stats
	Pins     int // ordinary pins routed
}
