package router

import (
	"fmt"

	"github.com/katalvlaran/scanchain/bands"
	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/greedy"
	"github.com/katalvlaran/scanchain/stats"
)

// Route builds the 16 scan chains for points with the strategy in opts.
//
// points must hold exactly the 32 driver pins (any order) plus the ordinary
// pins; ordinary pin order is the tie-break ordinal of the Greedy strategy.
// The input slice is not modified.
//
// Errors: driver registry errors (driver.ErrTooFewDrivers, …),
// ErrUnsupportedStrategy, builder errors, and chain.Validate errors (the
// latter indicate a builder defect).
func Route(points []geometry.Point, opts Options) (Result, error) {
	// 1) Partition the input: drivers into the registry, the rest in order.
	reg, err := driver.NewRegistry(points)
	if err != nil {
		return Result{}, err
	}
	pins := geometry.OrdinaryPins(points)
	metric := opts.Metric.OrDefault()

	// 2) Dispatch to the builder.
	var set chain.Set
	switch opts.Strategy {
	case Greedy:
		set, err = greedy.Build(reg, pins,
			greedy.WithMetric(metric),
			greedy.WithOnInsert(opts.OnInsert),
		)
	case Bands:
		set, err = bands.Build(reg, pins)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, opts.Strategy)
	}
	if err != nil {
		return Result{}, err
	}

	// 3) Check the structural invariants before reporting anything.
	if err = chain.Validate(set, reg, pins); err != nil {
		return Result{}, err
	}

	// 4) Summarize.
	st, err := stats.FromSet(set, metric)
	if err != nil {
		return Result{}, err
	}

	return Result{Strategy: opts.Strategy, Set: set, Stats: st, Pins: len(pins)}, nil
}
