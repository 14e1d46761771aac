// SPDX-License-Identifier: MIT
// Package modmatrix: invertible-key generation (generate-and-test loop).

package modmatrix

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Generator samples random matrices until one is invertible modulo the
// requested modulus. The random source and the retry budget are explicit,
// injected dependencies (see options.go); two generators never share state,
// so concurrent use only requires one Generator per goroutine.
type Generator struct {
	rng         *rand.Rand         // owned random source
	maxAttempts int                // retry budget
	log         logrus.FieldLogger // nil → silent
}

// NewGenerator builds a Generator from the supplied options.
// Defaults: a fresh time-seeded random source, DefaultMaxAttempts budget,
// no logging.
// Complexity: O(1).
func NewGenerator(opts ...GenOption) *Generator {
	// Resolve options over the documented defaults.
	o := genOptions{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	// Without an injected source, build a private time-seeded one; the
	// generator never touches the package-global math/rand state.
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{rng: o.rng, maxAttempts: o.maxAttempts, log: o.log}
}

// Generate samples N×N matrices with entries drawn uniformly from
// [0, modulus) until gcd(det, modulus) == 1, then returns the accepted key.
//
// Implementation:
//   - Stage 1: validate dimension/modulus via the strict constructor.
//   - Stage 2: loop up to the retry budget — fill every entry from the
//     injected source, compute the determinant, accept on coprimality,
//     otherwise discard the whole sample and redraw all entries.
//
// Behavior highlights:
//   - Every returned matrix satisfies the key invariant
//     gcd(Determinant(key), modulus) == 1; no matrix that fails the check is
//     ever returned.
//   - Termination is probabilistic; the budget converts degenerate
//     modulus/dimension combinations into an explicit error instead of an
//     unbounded loop.
//
// Inputs:
//   - dimension: key size N ≥ 0 (N == 0 trivially succeeds: det is 1).
//   - modulus: residue ring size within [MinModulus, MaxModulus].
//
// Returns:
//   - *Matrix: an invertible key matrix, entries inside [0, modulus).
//
// Errors:
//   - ErrBadDimension, ErrInvalidModulus (constructor sentinels).
//   - ErrGenerationExhausted (budget spent without an invertible sample).
//
// Determinism:
//   - Deterministic given an injected, seeded source (WithRand); otherwise
//     dependent on the time-seeded private source.
//
// Complexity:
//   - Time O(attempts · N!) — each attempt pays one determinant.
func (g *Generator) Generate(dimension, modulus int) (*Matrix, error) {
	m, err := NewMatrix(dimension, modulus)
	if err != nil {
		return nil, opErrorf(opGenerate, err)
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		// Resample every entry uniformly from [0, modulus).
		for idx := range m.data {
			m.data[idx] = g.rng.Intn(modulus)
		}

		// Accept iff the determinant is a unit of the ring.
		det := determinant(m)
		if GCD(det, modulus) == 1 {
			if g.log != nil {
				g.log.WithFields(logrus.Fields{
					"dimension":   dimension,
					"modulus":     modulus,
					"determinant": det,
					"attempts":    attempt,
				}).Info("generated invertible key matrix")
			}

			return m, nil
		}
		if g.log != nil {
			g.log.WithFields(logrus.Fields{
				"attempt":     attempt,
				"determinant": det,
			}).Debug("sample rejected: determinant shares a factor with modulus")
		}
	}

	// Budget spent: report exhaustion instead of looping unboundedly.
	return nil, opErrorf(opGenerate, ErrGenerationExhausted)
}
