package cubesim

import (
	"math/rand"
	"time"
)

// Option configures a Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	moveDuration   float64 // seconds one move animates for
	interMoveDelay float64 // seconds between queued moves
	solver         Solver
	rng            *rand.Rand
}

func defaultControllerConfig() *controllerConfig {
	return &controllerConfig{
		moveDuration:   0.25,
		interMoveDelay: 0.1,
		solver:         ReverseSolver{},
	}
}

// WithMoveDuration sets how long a single move animates for.
func WithMoveDuration(d time.Duration) Option {
	return func(c *controllerConfig) {
		c.moveDuration = d.Seconds()
	}
}

// WithInterMoveDelay sets the pause inserted between consecutive queued
// moves.
func WithInterMoveDelay(d time.Duration) Option {
	return func(c *controllerConfig) {
		c.interMoveDelay = d.Seconds()
	}
}

// WithSolver selects the solver used by StartSolve. If the solver reports
// itself unavailable the controller falls back to the reverse solver and
// fires the fallback callback.
func WithSolver(s Solver) Option {
	return func(c *controllerConfig) {
		if s != nil {
			c.solver = s
		}
	}
}

// WithScrambleSource sets the random source for generated scrambles.
// Useful for reproducible scrambles in tests.
func WithScrambleSource(rng *rand.Rand) Option {
	return func(c *controllerConfig) {
		c.rng = rng
	}
}
