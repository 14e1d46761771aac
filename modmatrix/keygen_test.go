// Package modmatrix_test: key-generation tests (determinism, invariants,
// retry budget, option guards).
package modmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillkey/modmatrix"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// zeroSource is a rand.Source whose every draw is zero, so each sampled
// matrix is the zero matrix (determinant 0 for N ≥ 1, never a unit).
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

// TestGenerateInvariant samples keys across dimensions and moduli and checks
// the acceptance condition gcd(det, modulus) == 1 on every returned key.
func TestGenerateInvariant(t *testing.T) {
	gen := modmatrix.NewGenerator(modmatrix.WithRand(rand.New(rand.NewSource(42))))

	for _, dim := range []int{1, 2, 3, 4} {
		for _, mod := range []int{13, 26, 29} {
			key, err := gen.Generate(dim, mod)
			require.NoError(t, err)                       // dense unit population → budget is ample
			require.Equal(t, dim, key.Dimension())        // requested shape
			require.Equal(t, mod, key.Modulus())          // requested ring
			ok, err := modmatrix.IsInvertible(key)
			require.NoError(t, err)
			require.True(t, ok)                // acceptance invariant
			inv, err := modmatrix.Inverse(key) // and the inverse really exists
			require.NoError(t, err)
			prod, err := modmatrix.Mul(inv, key)
			require.NoError(t, err)
			id, err := modmatrix.Identity(dim, mod)
			require.NoError(t, err)
			require.Equal(t, id.String(), prod.String()) // inv·key == I
		}
	}
}

// TestGenerateDeterministic verifies that two generators seeded identically
// produce byte-identical keys, while a different seed diverges.
func TestGenerateDeterministic(t *testing.T) {
	genA := modmatrix.NewGenerator(modmatrix.WithRand(rand.New(rand.NewSource(7))))
	genB := modmatrix.NewGenerator(modmatrix.WithRand(rand.New(rand.NewSource(7))))
	genC := modmatrix.NewGenerator(modmatrix.WithRand(rand.New(rand.NewSource(8))))

	keyA, err := genA.Generate(3, 26)
	require.NoError(t, err)
	keyB, err := genB.Generate(3, 26)
	require.NoError(t, err)
	keyC, err := genC.Generate(3, 26)
	require.NoError(t, err)

	require.Equal(t, keyA.String(), keyB.String())    // same seed, same key
	require.NotEqual(t, keyA.String(), keyC.String()) // different seed diverges
}

// TestGenerateExhausted forces the budget to run out: a source that only
// yields zero makes every sample the zero matrix, which is never invertible.
func TestGenerateExhausted(t *testing.T) {
	gen := modmatrix.NewGenerator(
		modmatrix.WithRand(rand.New(zeroSource{})),
		modmatrix.WithMaxAttempts(5),
	)

	_, err := gen.Generate(2, 26)
	require.ErrorIs(t, err, modmatrix.ErrGenerationExhausted)
}

// TestGenerateZeroDimension covers the trivial key: the empty matrix has
// determinant 1, a unit in every ring, so the first attempt always succeeds.
func TestGenerateZeroDimension(t *testing.T) {
	gen := modmatrix.NewGenerator(modmatrix.WithRand(rand.New(zeroSource{})))

	key, err := gen.Generate(0, 26)
	require.NoError(t, err)
	require.Equal(t, 0, key.Dimension())
}

// TestGenerateRejectsBadArguments propagates the constructor sentinels.
func TestGenerateRejectsBadArguments(t *testing.T) {
	gen := modmatrix.NewGenerator()

	_, err := gen.Generate(-1, 26)
	require.ErrorIs(t, err, modmatrix.ErrBadDimension)

	_, err = gen.Generate(2, 12) // below MinModulus
	require.ErrorIs(t, err, modmatrix.ErrInvalidModulus)
}

// TestGenerateLogging exercises the optional logger path; a hook-free logger
// at debug level must not disturb the result.
func TestGenerateLogging(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	gen := modmatrix.NewGenerator(
		modmatrix.WithRand(rand.New(rand.NewSource(1))),
		modmatrix.WithLogger(logger),
	)

	key, err := gen.Generate(2, 26)
	require.NoError(t, err)
	ok, err := modmatrix.IsInvertible(key)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestOptionPanics pins the programmer-error contract of the option setters.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { modmatrix.WithRand(nil) })           // nil source
	require.Panics(t, func() { modmatrix.WithMaxAttempts(0) })      // zero budget
	require.Panics(t, func() { modmatrix.WithMaxAttempts(-3) })     // negative budget
	require.Panics(t, func() { modmatrix.WithLogger(nil) })         // nil logger
	require.NotPanics(t, func() { modmatrix.WithMaxAttempts(1) })   // minimal legal budget
}
