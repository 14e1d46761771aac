// SPDX-License-Identifier: MIT
// Package keystore: sentinel errors.

package keystore

import "errors"

var (
	// ErrNotFound is returned when no record carries the requested label.
	ErrNotFound = errors.New("keystore: key not found")

	// ErrDuplicateLabel is returned when saving under a label that already
	// names a stored key; labels are unique by construction.
	ErrDuplicateLabel = errors.New("keystore: label already in use")

	// ErrCorruptMaterial is returned when stored key material fails to decode
	// or decodes to a matrix that no longer satisfies the key invariant
	// gcd(det, modulus) == 1.
	ErrCorruptMaterial = errors.New("keystore: corrupt key material")

	// ErrEmptyLabel is returned when a label is blank; every stored key must
	// be addressable.
	ErrEmptyLabel = errors.New("keystore: label must not be empty")
)
