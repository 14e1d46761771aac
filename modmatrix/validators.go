// SPDX-License-Identifier: MIT
// Package: modmatrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape/modulus checks here.
//   - Return sentinel errors wrapped once with the validator tag so call
//     sites can wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package modmatrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: *Matrix value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateIndex – Ensures (row, col) addresses a cell of m.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Returns nil or wrapped ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(m *Matrix, row, col int) error {
	// Row must live in [0, dimension).
	if row < 0 || row >= m.dimension {
		return validatorErrorf("ValidateIndex: row", ErrOutOfRange)
	}
	// Column must live in [0, dimension).
	if col < 0 || col >= m.dimension {
		return validatorErrorf("ValidateIndex: column", ErrOutOfRange)
	}

	return nil
}

// ValidateSameRing – Composite: NotNil(a) → NotNil(b) → equal dimension →
// equal modulus. Binary kernels (Mul, entrywise comparisons) require both.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrModulusMismatch.
// Complexity: O(1).
func ValidateSameRing(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameRing", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameRing", err)
	}
	// Shapes must agree before any entrywise or product loop runs.
	if a.dimension != b.dimension {
		return validatorErrorf("ValidateSameRing", ErrDimensionMismatch)
	}
	// Residue rings must agree; mixing moduli corrupts every entry.
	if a.modulus != b.modulus {
		return validatorErrorf("ValidateSameRing", ErrModulusMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Disallows nil vectors to avoid subtle bugs in Apply-like routines.
// Complexity: O(1).
func ValidateVecLen(x []int, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
