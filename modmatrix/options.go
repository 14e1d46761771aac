// SPDX-License-Identifier: MIT
// Package modmatrix: key-generator configuration (functional options).
//
// Purpose:
//   - Make the random source an explicit, constructor-injected dependency so
//     key generation is deterministic and testable under a fixed seed.
//   - Bound the generate-and-test loop with a configurable retry budget
//     instead of looping unboundedly.

package modmatrix

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts is the retry budget a Generator starts with. For sane
// moduli the density of invertible matrices makes the expected attempt count
// tiny; the budget exists so degenerate moduli fail loudly instead of
// spinning forever.
const DefaultMaxAttempts = 1000

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilRand        = "modmatrix: WithRand: rng must not be nil"
	panicBadMaxAttempts = "modmatrix: WithMaxAttempts: budget must be > 0"
	panicNilLogger      = "modmatrix: WithLogger: logger must not be nil"
)

// GenOption mutates generator options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type GenOption func(*genOptions)

// genOptions stores the effective configuration after applying GenOption
// setters. It is intentionally unexported to prevent external mutation;
// NewGenerator accepts `...GenOption` and resolves them internally.
type genOptions struct {
	rng         *rand.Rand         // injected random source; nil → fresh time-seeded source
	maxAttempts int                // retry budget; DefaultMaxAttempts
	log         logrus.FieldLogger // optional progress logger; nil → silent
}

// WithRand injects an explicitly seeded random source.
// Tests pass rand.New(rand.NewSource(seed)) for reproducible keys; without
// this option every Generator builds its own time-seeded source (no shared
// process-wide state between generators).
//
// Panics when rng is nil (programmer error).
// Complexity: O(1).
func WithRand(rng *rand.Rand) GenOption {
	if rng == nil {
		panic(panicNilRand)
	}

	// Assign the validated source.
	return func(o *genOptions) { o.rng = rng }
}

// WithMaxAttempts overrides the retry budget of the generate-and-test loop.
// Termination of the loop is probabilistic — bounded by the density of
// invertible matrices mod modulus — so the budget is what turns "may block
// indefinitely" into ErrGenerationExhausted.
//
// Panics when budget <= 0 (programmer error).
// Complexity: O(1).
func WithMaxAttempts(budget int) GenOption {
	if budget <= 0 {
		panic(panicBadMaxAttempts)
	}

	return func(o *genOptions) { o.maxAttempts = budget }
}

// WithLogger attaches a structured logger; the generator reports each
// rejected sample at debug level and the accepted key at info level.
// Without this option the generator is silent.
//
// Panics when logger is nil (programmer error).
// Complexity: O(1).
func WithLogger(logger logrus.FieldLogger) GenOption {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *genOptions) { o.log = logger }
}
