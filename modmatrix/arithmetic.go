// SPDX-License-Identifier: MIT
// Package modmatrix: scalar residue arithmetic.
// Everything here is exact integer arithmetic — no floating point anywhere,
// so results are bit-for-bit reproducible across platforms.

package modmatrix

// reduce maps v into the canonical residue range [0, modulus).
// Go's % operator keeps the sign of the dividend, so a negative v needs one
// corrective addition.
// Complexity: O(1).
func reduce(v, modulus int) int {
	r := v % modulus
	if r < 0 {
		r += modulus
	}

	return r
}

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. Negative inputs are handled via absolute values; GCD(0, 0) is 0.
// Complexity: O(log min(|a|, |b|)).
func GCD(a, b int) int {
	// Work on magnitudes; gcd is sign-agnostic.
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	// Classic Euclid: replace the larger operand with the remainder.
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ScalarInverse returns w in [0, modulus) with (v*w) mod modulus == 1.
//
// Implementation:
//   - Stage 1: validate the modulus policy, reduce v into [0, modulus).
//   - Stage 2: run the extended Euclidean algorithm, tracking only the
//     Bézout coefficient of v (the modulus coefficient is never needed).
//
// Behavior highlights:
//   - An inverse exists iff gcd(v, modulus) == 1; otherwise ErrNotInvertible
//     is returned instead of any sentinel value.
//   - Equivalent result to an exhaustive scan of [0, modulus) in
//     O(log modulus) instead of O(modulus).
//
// Inputs:
//   - v: the scalar to invert (any integer; reduced internally).
//   - modulus: the residue ring size, within [MinModulus, MaxModulus].
//
// Returns:
//   - int: the unique inverse inside [0, modulus).
//
// Errors:
//   - ErrInvalidModulus (modulus policy violation).
//   - ErrNotInvertible  (gcd(v, modulus) != 1, including v ≡ 0).
//
// Determinism:
//   - Pure function of (v, modulus); fixed iteration order.
//
// Complexity:
//   - Time O(log modulus), Space O(1).
func ScalarInverse(v, modulus int) (int, error) {
	// The inverse is only meaningful inside a legal residue ring.
	if err := ValidateModulus(modulus); err != nil {
		return 0, err
	}
	// Canonicalize v before the descent so the loop invariants hold.
	v = reduce(v, modulus)

	// Extended Euclid on (modulus, v), tracking x with v*x ≡ r (mod modulus).
	// Invariant per step: oldR == v*oldX (mod modulus), r == v*x (mod modulus).
	oldR, r := v, modulus
	oldX, x := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldX, x = x, oldX-q*x
	}

	// gcd landed in oldR; only a unit gcd admits an inverse.
	if oldR != 1 {
		return 0, ErrNotInvertible
	}

	// The coefficient may be negative; canonicalize into [0, modulus).
	return reduce(oldX, modulus), nil
}
