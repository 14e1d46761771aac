// SPDX-License-Identifier: MIT
// Package hill: rune↔residue alphabet mapping.

package hill

import (
	"fmt"

	"github.com/katalvlaran/hillkey/modmatrix"
)

// defaultRunes is the classical Hill alphabet: the 26 uppercase Latin
// letters, residue i ↔ rune 'A'+i.
const defaultRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is a bijective mapping between a symbol set and the canonical
// residues [0, len). Its length doubles as the cipher modulus, so an alphabet
// must be at least modmatrix.MinModulus symbols long.
//
// Alphabets are immutable after construction and safe for concurrent use.
type Alphabet struct {
	runes []rune       // residue → rune
	index map[rune]int // rune → residue
}

// NewAlphabet builds an Alphabet from the symbols of s in order; the i-th
// rune maps to residue i.
//
// Errors:
//   - ErrAlphabetTooSmall when s has fewer than modmatrix.MinModulus runes.
//   - ErrDuplicateRune when the same rune appears twice.
//
// Complexity: O(len(s)).
func NewAlphabet(s string) (*Alphabet, error) {
	runes := []rune(s)
	if len(runes) < modmatrix.MinModulus {
		return nil, fmt.Errorf("%w: %d symbols, need at least %d",
			ErrAlphabetTooSmall, len(runes), modmatrix.MinModulus)
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, seen := index[r]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRune, r)
		}
		index[r] = i
	}

	return &Alphabet{runes: runes, index: index}, nil
}

// DefaultAlphabet returns the uppercase A–Z alphabet (modulus 26).
func DefaultAlphabet() *Alphabet {
	a, err := NewAlphabet(defaultRunes)
	if err != nil {
		// The literal is well-formed; a failure here is a build defect.
		panic(err)
	}

	return a
}

// Modulus reports the ring size the alphabet induces (its symbol count).
func (a *Alphabet) Modulus() int { return len(a.runes) }

// Encode maps text to its residue vector.
//
// Errors:
//   - ErrUnknownRune when text contains a symbol outside the alphabet; the
//     message names the offending rune and its position.
//
// Complexity: O(len(text)).
func (a *Alphabet) Encode(text string) ([]int, error) {
	out := make([]int, 0, len(text))
	for pos, r := range text {
		v, ok := a.index[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrUnknownRune, r, pos)
		}
		out = append(out, v)
	}

	return out, nil
}

// Decode maps a residue vector back to text.
//
// Errors:
//   - ErrResidueRange when a residue falls outside [0, Modulus()).
//
// Complexity: O(len(vec)).
func (a *Alphabet) Decode(vec []int) (string, error) {
	out := make([]rune, len(vec))
	for i, v := range vec {
		if v < 0 || v >= len(a.runes) {
			return "", fmt.Errorf("%w: %d at index %d", ErrResidueRange, v, i)
		}
		out[i] = a.runes[v]
	}

	return string(out), nil
}
