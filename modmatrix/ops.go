// SPDX-License-Identifier: MIT
// Package modmatrix: shared kernel plumbing.
//
// Purpose:
//   - Declare operation tags used for unified error wrapping.
//   - Keep the single error-wrapping helper all kernels share.

package modmatrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opScalarMul   = "ScalarMul"
	opMul         = "Mul"
	opApply       = "Apply"
	opGenerate    = "Generate"
	opIdentity    = "Identity"
)

// opErrorf wraps err with an operation tag, preserving the original error via
// %w so callers can still match sentinels with errors.Is. Use only when
// err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
