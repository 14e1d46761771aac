// Package hill_test: cipher construction, block transforms, and string
// round-trips.
package hill_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillkey/hill"
	"github.com/katalvlaran/hillkey/modmatrix"
	"github.com/stretchr/testify/require"
)

// refKey builds the worked 2×2 key [[3,3],[2,5]] over Z/26
// (det 9, inverse [[15,17],[20,9]]).
func refKey(t *testing.T) *modmatrix.Matrix {
	t.Helper()
	m, err := modmatrix.NewFromEntries(2, 26, []int{3, 3, 2, 5})
	require.NoError(t, err)
	return m
}

// TestNewCipherRejectsBadKeys covers the constructor's guard rails.
func TestNewCipherRejectsBadKeys(t *testing.T) {
	_, err := hill.NewCipher(nil)
	require.ErrorIs(t, err, hill.ErrNilKey) // nil key

	singular, err := modmatrix.NewFromEntries(2, 26, []int{2, 4, 1, 2}) // det 0
	require.NoError(t, err)
	_, err = hill.NewCipher(singular)
	require.ErrorIs(t, err, modmatrix.ErrNotInvertible) // engine sentinel passes through
}

// TestNewCipherOwnsKey: mutating the caller's matrix after construction must
// not reach the cipher.
func TestNewCipherOwnsKey(t *testing.T) {
	key := refKey(t)
	c, err := hill.NewCipher(key)
	require.NoError(t, err)

	require.NoError(t, key.Set(0, 0, 0)) // caller scribbles on the original
	require.Equal(t, "3,3,2,5", c.Key().String())
}

// TestEncryptBlocksReference pins the textbook fixture: "HELP" as residues
// [7,4,11,15] encrypts to [7,8,0,19] ("HIAT") under the reference key.
func TestEncryptBlocksReference(t *testing.T) {
	c, err := hill.NewCipher(refKey(t))
	require.NoError(t, err)

	out, err := c.EncryptBlocks([]int{7, 4, 11, 15})
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 0, 19}, out)

	back, err := c.DecryptBlocks(out)
	require.NoError(t, err)
	require.Equal(t, []int{7, 4, 11, 15}, back)
}

// TestEncryptBlocksPadding: a partial final block is zero-padded, so the
// ciphertext length is the next block multiple and the plaintext comes back
// with trailing zero residues.
func TestEncryptBlocksPadding(t *testing.T) {
	c, err := hill.NewCipher(refKey(t))
	require.NoError(t, err)

	out, err := c.EncryptBlocks([]int{0, 1, 2}) // 3 residues, block size 2
	require.NoError(t, err)
	require.Len(t, out, 4) // padded up to two whole blocks

	back, err := c.DecryptBlocks(out)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 0}, back) // original plus one pad residue
}

// TestEncryptBlocksEmpty: empty input transforms to empty output.
func TestEncryptBlocksEmpty(t *testing.T) {
	c, err := hill.NewCipher(refKey(t))
	require.NoError(t, err)

	out, err := c.EncryptBlocks(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

// TestEncryptStringReference: "HELP" → "HIAT" under the reference key and
// the default alphabet, and back again.
func TestEncryptStringReference(t *testing.T) {
	c, err := hill.NewCipher(refKey(t))
	require.NoError(t, err)
	a := hill.DefaultAlphabet()

	cipherText, err := c.EncryptString(a, "HELP")
	require.NoError(t, err)
	require.Equal(t, "HIAT", cipherText)

	plain, err := c.DecryptString(a, cipherText)
	require.NoError(t, err)
	require.Equal(t, "HELP", plain)
}

// TestEncryptStringPadding: odd-length text gains one pad symbol ('A', the
// zero residue) on the way back.
func TestEncryptStringPadding(t *testing.T) {
	c, err := hill.NewCipher(refKey(t))
	require.NoError(t, err)
	a := hill.DefaultAlphabet()

	cipherText, err := c.EncryptString(a, "ABC")
	require.NoError(t, err)
	require.Len(t, cipherText, 4)

	plain, err := c.DecryptString(a, cipherText)
	require.NoError(t, err)
	require.Equal(t, "ABCA", plain)
}

// TestEncryptStringAlphabetMismatch: the alphabet size and the key modulus
// must agree.
func TestEncryptStringAlphabetMismatch(t *testing.T) {
	c, err := hill.NewCipher(refKey(t)) // modulus 26
	require.NoError(t, err)

	wide, err := hill.NewAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ .?") // 29 symbols
	require.NoError(t, err)

	_, err = c.EncryptString(wide, "HELP")
	require.ErrorIs(t, err, modmatrix.ErrModulusMismatch)
}

// TestEncryptStringUnknownRune propagates the alphabet's encode error.
func TestEncryptStringUnknownRune(t *testing.T) {
	c, err := hill.NewCipher(refKey(t))
	require.NoError(t, err)

	_, err = c.EncryptString(hill.DefaultAlphabet(), "HELP!")
	require.ErrorIs(t, err, hill.ErrUnknownRune)
}

// TestRoundTripGeneratedKeys drives the full pipeline with generated keys of
// several dimensions: whole-block plaintext must round-trip exactly.
func TestRoundTripGeneratedKeys(t *testing.T) {
	gen := modmatrix.NewGenerator(modmatrix.WithRand(rand.New(rand.NewSource(3))))
	a := hill.DefaultAlphabet()

	for _, dim := range []int{1, 2, 3, 4} {
		key, err := gen.Generate(dim, a.Modulus())
		require.NoError(t, err)
		c, err := hill.NewCipher(key)
		require.NoError(t, err)

		// 12 letters: a whole number of blocks for every dim under test.
		const plain = "ATTACKATDAWN"
		cipherText, err := c.EncryptString(a, plain)
		require.NoError(t, err)
		back, err := c.DecryptString(a, cipherText)
		require.NoError(t, err)
		require.Equal(t, plain, back) // exact round-trip, no padding involved
	}
}
