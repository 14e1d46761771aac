// SPDX-License-Identifier: MIT
// Package keystore: msgpack encoding of key material.
//
// A key's algebraic content (dimension, modulus, row-major entries) is stored
// as one msgpack blob rather than as relational columns: the blob travels
// unchanged through exports and the decode path re-checks the key invariant,
// so a corrupted row can never surface as a usable key.

package keystore

import (
	"fmt"

	"github.com/katalvlaran/hillkey/modmatrix"
	"github.com/ugorji/go/codec"
)

// mh is the shared msgpack handle; handles are stateless and safe to share.
var mh codec.MsgpackHandle

// keyMaterial is the wire form of a key matrix.
type keyMaterial struct {
	Dimension int   `codec:"n"`
	Modulus   int   `codec:"m"`
	Entries   []int `codec:"e"` // row-major, canonical residues
}

// encodeMaterial packs a matrix into its msgpack blob.
func encodeMaterial(m *modmatrix.Matrix) ([]byte, error) {
	payload := keyMaterial{
		Dimension: m.Dimension(),
		Modulus:   m.Modulus(),
		Entries:   m.Entries(),
	}

	var blob []byte
	if err := codec.NewEncoderBytes(&blob, &mh).Encode(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMaterial, err)
	}

	return blob, nil
}

// decodeMaterial unpacks a blob and re-verifies the key invariant; material
// that decodes to a non-invertible matrix is treated as corrupt, not as a
// valid-but-useless key.
func decodeMaterial(blob []byte) (*modmatrix.Matrix, error) {
	var payload keyMaterial
	if err := codec.NewDecoderBytes(blob, &mh).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMaterial, err)
	}

	m, err := modmatrix.NewFromEntries(payload.Dimension, payload.Modulus, payload.Entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMaterial, err)
	}
	ok, err := modmatrix.IsInvertible(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMaterial, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: stored matrix is not invertible mod %d",
			ErrCorruptMaterial, payload.Modulus)
	}

	return m, nil
}
