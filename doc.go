// Package hillkey is a toolkit for Hill-cipher key matrices — exact modular
// matrix algebra, invertible-key generation, and block encryption.
//
// 🚀 What is hillkey?
//
//	A pure-Go module built around integer matrix algebra over a residue ring:
//		• modmatrix: matrices mod M — determinant (cofactor expansion),
//		  minors, adjugate, modular inverse, matrix–vector transform
//		• key generation: bounded generate-and-test sampling of matrices
//		  with gcd(det, modulus) == 1, deterministic under an injected seed
//		• hill: the classical Hill block cipher on top of the engine, with
//		  pluggable alphabets (A–Z by default)
//		• keystore: labeled key persistence in SQLite
//		• cmd/hillkey: a CLI to generate, invert, encrypt, decrypt, and
//		  manage stored keys
//
// ✨ Why choose hillkey?
//
//   - Exact arithmetic – integers only, no floating point, reproducible
//     results bit for bit
//   - Rock-solid guarantees – every entry stays in [0, modulus), operands
//     are never mutated, every failure is a matchable sentinel
//   - Pure Go – no cgo, SQLite included
//
// Under the hood, everything is organized under four packages:
//
//	modmatrix/ — the matrix engine: Matrix, Determinant, Adjugate, Inverse,
//	             Apply, Generator
//	hill/      — Alphabet and Cipher: block encryption and decryption
//	keystore/  — SQLite-backed storage of generated keys
//	cmd/       — the hillkey command-line tool
//
// Quick example, the classical worked key over Z/26:
//
//	[[3, 3],    det = 9, 9⁻¹ = 3,    inverse = [[15, 17],
//	 [2, 5]]                                    [20,  9]]
//
// Note: the Hill cipher is linear and known-plaintext weak; this module is
// about the key algebra, not about modern cryptographic security.
//
//	go get github.com/katalvlaran/hillkey
package hillkey
