// SPDX-License-Identifier: MIT
// Package hill: block cipher built on the modmatrix engine.

package hill

import (
	"github.com/katalvlaran/hillkey/modmatrix"
)

// Cipher is a Hill cipher bound to one key matrix. The constructor
// re-verifies invertibility and precomputes the decryption key, so both
// directions are a single matrix–vector transform per block.
//
// A Cipher never mutates its matrices after construction and is safe for
// concurrent use.
type Cipher struct {
	key *modmatrix.Matrix // encryption key
	inv *modmatrix.Matrix // precomputed inverse (decryption key)
}

// NewCipher builds a Cipher from key.
//
// Implementation:
//   - Stage 1: clone the key so later caller mutations cannot reach the
//     cipher.
//   - Stage 2: invert the clone; a failed inversion rejects the key outright
//     (keys arriving from user input or storage are never trusted as-is).
//
// Errors:
//   - ErrNilKey when key is nil.
//   - modmatrix.ErrNotInvertible when gcd(det(key), modulus) != 1.
//
// Complexity: O(N! · N²) — one inversion, paid once.
func NewCipher(key *modmatrix.Matrix) (*Cipher, error) {
	if key == nil {
		return nil, ErrNilKey
	}

	owned := key.Clone()
	inv, err := modmatrix.Inverse(owned)
	if err != nil {
		return nil, err
	}

	return &Cipher{key: owned, inv: inv}, nil
}

// Dimension reports the block size (the key's N).
func (c *Cipher) Dimension() int { return c.key.Dimension() }

// Modulus reports the key's residue ring size.
func (c *Cipher) Modulus() int { return c.key.Modulus() }

// Key returns a copy of the encryption key.
func (c *Cipher) Key() *modmatrix.Matrix { return c.key.Clone() }

// EncryptBlocks transforms a residue vector block by block with the key
// matrix. A final partial block is zero-padded, so the output length is
// always the next multiple of Dimension(); callers that must recover the
// exact plaintext length record it out of band.
//
// Inputs:
//   - plain: residue vector, any length; entries are reduced by the engine,
//     so non-canonical values are accepted.
//
// Complexity: O(len(plain) · N).
func (c *Cipher) EncryptBlocks(plain []int) ([]int, error) {
	return c.transform(c.key, plain)
}

// DecryptBlocks applies the precomputed inverse key block by block. Zero
// padding introduced by EncryptBlocks decrypts to trailing zero residues.
//
// Complexity: O(len(cipher) · N).
func (c *Cipher) DecryptBlocks(cipher []int) ([]int, error) {
	return c.transform(c.inv, cipher)
}

// transform pads vec to a whole number of blocks and applies m to each.
func (c *Cipher) transform(m *modmatrix.Matrix, vec []int) ([]int, error) {
	n := c.key.Dimension()
	if n == 0 || len(vec) == 0 {
		// Zero-dimension keys and empty inputs both transform to nothing.
		return []int{}, nil
	}

	// Zero-pad the final partial block.
	padded := vec
	if rem := len(vec) % n; rem != 0 {
		padded = make([]int, len(vec)+n-rem)
		copy(padded, vec)
	}

	out := make([]int, 0, len(padded))
	for at := 0; at < len(padded); at += n {
		block, err := modmatrix.Apply(m, padded[at:at+n])
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}

	return out, nil
}

// EncryptString encodes text through alpha, encrypts the residues, and
// decodes the result back to text. The alphabet's size must equal the key's
// modulus, otherwise residues and ring would disagree.
//
// Errors:
//   - modmatrix.ErrModulusMismatch when alpha.Modulus() != key modulus.
//   - ErrUnknownRune from encoding.
//
// Complexity: O(len(text) · N).
func (c *Cipher) EncryptString(alpha *Alphabet, text string) (string, error) {
	return c.transformString(alpha, text, c.EncryptBlocks)
}

// DecryptString is the string-level counterpart of DecryptBlocks. Padding
// added during encryption surfaces as trailing zero-residue symbols
// (letter 'A' under the default alphabet).
func (c *Cipher) DecryptString(alpha *Alphabet, text string) (string, error) {
	return c.transformString(alpha, text, c.DecryptBlocks)
}

// transformString runs encode → block transform → decode.
func (c *Cipher) transformString(alpha *Alphabet, text string, op func([]int) ([]int, error)) (string, error) {
	if alpha.Modulus() != c.key.Modulus() {
		return "", modmatrix.ErrModulusMismatch
	}

	vec, err := alpha.Encode(text)
	if err != nil {
		return "", err
	}
	res, err := op(vec)
	if err != nil {
		return "", err
	}

	return alpha.Decode(res)
}
