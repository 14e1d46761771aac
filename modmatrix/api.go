// SPDX-License-Identifier: MIT
// Package modmatrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change loop orders or the reduce-as-you-go policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package modmatrix

// NewZeros returns a new zero-initialized N×N matrix over modulus.
// It is a thin alias of NewMatrix with an intention-revealing name.
// Complexity: O(N²).
func NewZeros(dimension, modulus int) (*Matrix, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewMatrix(dimension, modulus)
}

// NewIdentity is an alias for Identity: I_n over modulus.
// Complexity: O(N²).
func NewIdentity(dimension, modulus int) (*Matrix, error) { return Identity(dimension, modulus) }

// Det is an alias for Determinant.
// Complexity: O(N!).
func Det(m *Matrix) (int, error) { return Determinant(m) }

// InverseOf is an alias for Inverse: returns M⁻¹ mod modulus.
// Complexity: O(N · N!).
func InverseOf(m *Matrix) (*Matrix, error) { return Inverse(m) }

// Product is an alias for Mul: matrix product A × B over a shared ring.
// Complexity: O(N³).
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// MatVecMul is an alias for Apply: y = M·x mod modulus.
// Complexity: O(N²).
func MatVecMul(m *Matrix, x []int) ([]int, error) { return Apply(m, x) }

// IsInvertible reports whether m has a modular inverse, i.e. whether
// gcd(Determinant(m), modulus) == 1 — the key-matrix entry condition.
// Composition only: Determinant → GCD.
// Complexity: O(N!).
func IsInvertible(m *Matrix) (bool, error) {
	// Determinant validates the operand; compose with the coprimality gate.
	det, err := Determinant(m)
	if err != nil {
		return false, err
	}

	return GCD(det, m.modulus) == 1, nil
}
