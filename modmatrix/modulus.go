// SPDX-License-Identifier: MIT
// Package modmatrix: modulus policy.
//
// Purpose:
//   - Keep the single source of truth for the legal modulus range.
//   - Offer both intents an integrator may have: strict validation
//     (ValidateModulus) and silent normalization (ClampModulus).
//
// Determinism & Performance:
//   - Both checks are pure, deterministic and allocate nothing.

package modmatrix

import "math"

const (
	// MinModulus is the smallest legal modulus. Anything below cannot host a
	// usable alphabet-derived residue system.
	MinModulus = 13

	// MaxModulus is the largest legal modulus. The headroom guards
	// intermediate products during determinant/cofactor computation against
	// signed overflow.
	MaxModulus = math.MaxInt / 2
)

// ValidateModulus reports whether modulus lies in [MinModulus, MaxModulus].
//
// Inputs: candidate modulus.
// Returns: nil, or ErrInvalidModulus wrapped with the validator tag.
// Complexity: O(1).
func ValidateModulus(modulus int) error {
	// Reject anything outside the closed legal range.
	if modulus < MinModulus || modulus > MaxModulus {
		return validatorErrorf("ValidateModulus", ErrInvalidModulus)
	}

	return nil
}

// ClampModulus normalizes modulus into [MinModulus, MaxModulus].
// Out-of-range input is silently adjusted to the nearest bound; callers that
// prefer an explicit failure should use ValidateModulus instead.
//
// Complexity: O(1).
func ClampModulus(modulus int) int {
	// Pull small values up to the usable floor.
	if modulus < MinModulus {
		return MinModulus
	}
	// Push oversized values down to the overflow-safe ceiling.
	if modulus > MaxModulus {
		return MaxModulus
	}

	return modulus
}
