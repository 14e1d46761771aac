// SPDX-License-Identifier: MIT
// Package modmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// modmatrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package modmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "modmatrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still use
// errors.Is to match.

var (
	// ErrInvalidModulus is returned when a requested modulus falls outside
	// [MinModulus, MaxModulus]. The strict constructors reject such input;
	// NewClampedMatrix normalizes it instead (documented behavior).
	ErrInvalidModulus = errors.New("modmatrix: modulus outside valid range")

	// ErrBadDimension is returned when a requested dimension is negative.
	// Dimension zero is legal: the empty matrix is the determinant base case.
	ErrBadDimension = errors.New("modmatrix: dimension must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0, dimension). Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("modmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul on different sizes or Apply with a vector whose
	// length differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("modmatrix: dimension mismatch")

	// ErrModulusMismatch indicates two operands live in different residue
	// rings; mixing moduli silently would corrupt every entry.
	ErrModulusMismatch = errors.New("modmatrix: modulus mismatch")

	// ErrNotInvertible signals gcd(value, modulus) != 1: the scalar (or the
	// determinant of a matrix) has no multiplicative inverse mod modulus.
	// Inverse propagates this instead of returning a sentinel-scaled matrix.
	ErrNotInvertible = errors.New("modmatrix: value not invertible modulo modulus")

	// ErrGenerationExhausted is returned when the key generator spends its
	// whole retry budget without sampling an invertible matrix.
	ErrGenerationExhausted = errors.New("modmatrix: key generation retry budget exhausted")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("modmatrix: nil matrix")

	// ErrBadEntries is returned when an entry listing cannot be parsed back
	// into a matrix (malformed number or wrong count for the dimension).
	ErrBadEntries = errors.New("modmatrix: malformed entry listing")
)
