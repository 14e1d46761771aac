// SPDX-License-Identifier: MIT
// Package hill: sentinel errors.
//
// All failures of the cipher layer wrap exactly one of the sentinels below,
// so callers branch with errors.Is instead of string matching. Ring-level
// failures (ErrNotInvertible, ErrInvalidModulus, ...) are NOT re-declared
// here: the engine's sentinels pass through unchanged.

package hill

import "errors"

var (
	// ErrNilKey is returned when a Cipher is constructed from a nil key matrix.
	ErrNilKey = errors.New("hill: key matrix must not be nil")

	// ErrAlphabetTooSmall is returned when an alphabet carries fewer symbols
	// than the minimal ring size the engine accepts.
	ErrAlphabetTooSmall = errors.New("hill: alphabet smaller than minimal modulus")

	// ErrDuplicateRune is returned when an alphabet lists the same symbol twice;
	// the rune→residue mapping must be a bijection.
	ErrDuplicateRune = errors.New("hill: duplicate rune in alphabet")

	// ErrUnknownRune is returned when plaintext or ciphertext contains a symbol
	// outside the alphabet.
	ErrUnknownRune = errors.New("hill: rune not in alphabet")

	// ErrResidueRange is returned when a residue to decode falls outside
	// [0, len(alphabet)).
	ErrResidueRange = errors.New("hill: residue outside alphabet range")
)
