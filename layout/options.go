package layout

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// Default die size.
const (
	DefaultWidth  = 1000.0
	DefaultHeight = 1000.0
)

// config is the resolved set of generation parameters.
type config struct {
	width  float64
	height float64
	seed   int64
	prefix string
}

// Option customizes a layout.
type Option func(*config)

// WithSeed fixes the RNG seed. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithDie sets the die size. Panics unless both sides are positive.
func WithDie(width, height float64) Option {
	if !(width > 0) || !(height > 0) {
		panic(fmt.Sprintf("layout: WithDie(%g, %g): sides must be positive", width, height))
	}
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithPinPrefix sets the name prefix of ordinary pins ("p" by default).
// Panics on an empty prefix.
func WithPinPrefix(prefix string) Option {
	if prefix == "" {
		panic("layout: WithPinPrefix(\"\")")
	}
	return func(c *config) {
		c.prefix = prefix
	}
}

func defaultConfig() config {
	return config{
		width:  DefaultWidth,
		height: DefaultHeight,
		seed:   0,
		prefix: "p",
	}
}

// rng returns the deterministic source for c.
func (c config) rng() *rand.Rand {
	s := c.seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
