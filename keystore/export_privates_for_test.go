// SPDX-License-Identifier: MIT
// Test-only exports: give the external test package access to the material
// codec without widening the public API.

package keystore

import "github.com/katalvlaran/hillkey/modmatrix"

// EncodeMaterialForTest exposes encodeMaterial to package keystore_test.
func EncodeMaterialForTest(m *modmatrix.Matrix) ([]byte, error) {
	return encodeMaterial(m)
}

// DecodeMaterialForTest exposes decodeMaterial to package keystore_test.
func DecodeMaterialForTest(blob []byte) (*modmatrix.Matrix, error) {
	return decodeMaterial(blob)
}
