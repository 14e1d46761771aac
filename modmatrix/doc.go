// Package modmatrix offers exact matrix algebra over an integer residue ring.
//
// The modmatrix package provides:
//
//   - Matrix, a square, row-major, immutable-by-convention container whose
//     entries always live in [0, modulus).
//   - Determinant via recursive cofactor expansion with reduce-as-you-go
//     discipline (exact for the small key dimensions in scope).
//   - Cofactor, Adjugate, and Inverse — the adjugate/determinant route to the
//     modular inverse, gated on gcd(det, modulus) == 1.
//   - ScalarInverse and GCD for the underlying residue arithmetic.
//   - Apply, the matrix–vector transform a Hill-style cipher encodes and
//     decodes with.
//   - Generator, a bounded generate-and-test loop producing matrices that
//     are guaranteed invertible modulo their modulus.
//
// Every transform constructs and returns a new Matrix; operands are never
// mutated, so a matrix and its derived forms never alias. All failures are
// package sentinels (errors.go) matched with errors.Is; nothing here panics
// on user input.
//
// The arithmetic is exact: integers only, no floating point, bit-for-bit
// reproducible results. Complexity is deliberately naive — O(N!) cofactor
// expansion — which is the right trade for cipher keys of dimension 2..5;
// Gaussian elimination would be the replacement if large N ever mattered.
//
// See the examples in this package for usage patterns.
package modmatrix
