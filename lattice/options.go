// SPDX-License-Identifier: MIT

package lattice

import "math/rand"

// Source yields uniform draws in [0,1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Option customizes Build by mutating a buildConfig before any draw is made.
type Option func(*buildConfig)

// buildConfig aggregates the knobs used by Build.
// A nil src means no randomness was configured; Build rejects that.
type buildConfig struct {
	src Source
}

// newBuildConfig applies options in order; later options override earlier ones.
func newBuildConfig(opts ...Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed draws from a math/rand source seeded with seed.
// Use it in tests and from the command line to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithSource uses src for every draw. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("lattice: WithSource(nil)")
	}
	return func(c *buildConfig) {
		c.src = src
	}
}
