// SPDX-License-Identifier: MIT
// Package modmatrix: determinant kernel (recursive cofactor expansion).

package modmatrix

// signFor returns the (−1)^k expansion sign as an integer factor.
// Parity check, never floating-point exponentiation: exact for every k.
// Complexity: O(1).
func signFor(k int) int {
	if k%2 != 0 {
		return -1
	}

	return 1
}

// Determinant computes det(m) reduced into [0, modulus).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); dimension 0 returns 1 (base case by
//     convention, the anchor of the recursion).
//   - Stage 2: expand along row 0: for each column i, multiply m[0,i] by the
//     determinant of Minor(0,i) and by the parity sign of i, reduce the term
//     into [0, modulus) BEFORE accumulating, then reduce the finished sum.
//
// Behavior highlights:
//   - Reduce-as-you-go: every factor already lives in [0, modulus), so each
//     product is < modulus², which the MaxModulus policy keeps inside the
//     signed integer range. Without this discipline products overflow for
//     all but the smallest matrices.
//   - The operand is never mutated; minors are fresh matrices.
//
// Inputs:
//   - m: square matrix over a validated modulus (any dimension ≥ 0).
//
// Returns:
//   - int: det(m) mod modulus, inside [0, modulus).
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - Fixed column order i = 0..N−1 at every recursion level.
//
// Complexity:
//   - Time O(N!) — naive cofactor expansion with no memoization across
//     repeated minors. Intended for the small key dimensions of this
//     package; unsuitable as-is for large N.
func Determinant(m *Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, opErrorf(opDeterminant, err)
	}

	return determinant(m), nil
}

// determinant is the validated recursive core of Determinant.
// Preconditions (enforced by the public wrapper): m != nil.
func determinant(m *Matrix) int {
	// Base case: the empty matrix has determinant 1 by convention.
	if m.dimension == 0 {
		return 1
	}

	// Expand along row 0 with reduce-as-you-go accumulation.
	var det int
	for i := 0; i < m.dimension; i++ {
		// Minor cannot fail here: (0, i) always addresses a cell of m.
		sub, _ := m.Minor(0, i)
		// Both factors are in [0, modulus); the product stays representable.
		term := m.data[i] * determinant(sub) * signFor(i)
		det += reduce(term, m.modulus)
	}

	// One final reduction bounds the running sum of N reduced terms.
	return reduce(det, m.modulus)
}
