// Package keystore persists generated key matrices in SQLite.
//
// Each key is one row in the `hill_keys` table, addressed by a unique label.
// The algebraic content travels as a msgpack blob (material.go); dimension
// and modulus are mirrored as plain columns so List never decodes material.
// Get re-verifies the key invariant gcd(det, modulus) == 1 on every load —
// a row that decodes to a singular matrix is reported as ErrCorruptMaterial,
// never returned as a key.
//
// The store uses the pure-Go sqlite driver, so tests run against ":memory:"
// databases without cgo.
package keystore
