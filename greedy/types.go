package greedy

import (
	"errors"

	"github.com/katalvlaran/scanchain/geometry"
)

// Sentinel errors returned by Build.
var (
	// ErrNilRegistry indicates Build was called without a driver registry.
	ErrNilRegistry = errors.New("greedy: driver registry is nil")

	// ErrNotOrdinary indicates a driver pin was passed among the pins to insert.
	ErrNotOrdinary = errors.New("greedy: pin to insert is not an ordinary pin")
)

// Insertion describes one accepted step of the builder.
type Insertion struct {
	Step  int            // 0-based step number
	Point geometry.Point // inserted pin
	Chain int            // chain (driver pair) receiving the pin
	After geometry.Point // u: the pin now preceding Point
	Cost  float64        // added length d(u,P)+d(P,v)−d(u,v)
	Total float64        // total length of all chains after the step
}

// Options configures Build.
//
// Metric   – distance measure; nil means geometry.Euclidean.
// OnInsert – optional hook invoked after every accepted insertion.
type Options struct {
	Metric   geometry.Metric
	OnInsert func(Insertion)
}

// Option is a functional option for Build.
type Option func(*Options)

// WithMetric sets the distance measure. Panics on nil.
func WithMetric(m geometry.Metric) Option {
	if m == nil {
		panic("greedy: WithMetric(nil)")
	}
	return func(o *Options) {
		o.Metric = m
	}
}

// WithOnInsert registers a hook called after each insertion. A nil hook is
// accepted and disables observation.
func WithOnInsert(fn func(Insertion)) Option {
	return func(o *Options) {
		o.OnInsert = fn
	}
}

// DefaultOptions returns Euclidean distance and no hook.
func DefaultOptions() Options {
	return Options{
		Metric:   geometry.Euclidean,
		OnInsert: nil,
	}
}
