// Package hill implements the classical Hill block cipher on top of the
// modmatrix engine.
//
// The hill package provides:
//
//   - Alphabet, a bijective rune↔residue mapping whose size fixes the cipher
//     modulus (DefaultAlphabet is the classical uppercase A–Z ring, mod 26).
//   - Cipher, bound to one invertible key matrix; the constructor re-verifies
//     invertibility and precomputes the decryption key.
//   - EncryptBlocks/DecryptBlocks over residue vectors, with zero padding on
//     the final partial block.
//   - EncryptString/DecryptString, which route text through an Alphabet.
//
// The Hill cipher is a teaching cipher: it is linear, and a handful of
// known plaintext/ciphertext pairs recovers the key. Nothing here claims
// cryptographic security; the package exists for the key algebra and the
// round-trip property Decrypt(Encrypt(p)) == p (up to padding).
package hill
