// SPDX-License-Identifier: MIT
// Package modmatrix: the Matrix container.
// Matrix is a concrete, row-major square matrix of residues, storing entries
// in a flat slice for performance and cache friendliness. Every stored entry
// is kept inside [0, modulus) at all times.

package modmatrix

import (
	"fmt"
	"strconv"
	"strings"
)

// entrySeparator is the delimiter used by String/ParseEntries listings.
const entrySeparator = ","

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square, row-major matrix of residues modulo a fixed modulus.
// dimension is N, modulus is the ring size, and data holds N*N entries in
// row-major order, each already reduced into [0, modulus).
//
// All algebraic transforms construct and return a fresh Matrix; no operation
// mutates its operand, so a matrix and its derived forms never alias.
type Matrix struct {
	dimension int   // number of rows == number of columns
	modulus   int   // residue ring size, within [MinModulus, MaxModulus]
	data      []int // flat backing storage, length == dimension*dimension
}

// NewMatrix creates an N×N zero matrix over the given modulus.
// Stage 1 (Validate): dimension >= 0 and modulus within the legal range.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Matrix or the validation sentinel.
//
// Dimension zero is legal: the empty matrix is the recursion base case whose
// determinant is 1 by convention.
// Complexity: O(N²) time and memory.
func NewMatrix(dimension, modulus int) (*Matrix, error) {
	// Reject negative sizes; zero is the legal empty base case.
	if dimension < 0 {
		return nil, ErrBadDimension
	}
	// Strict modulus policy: out-of-range input is an explicit failure here.
	if err := ValidateModulus(modulus); err != nil {
		return nil, err
	}

	// Allocate flat storage; Go zero-initializes every entry.
	return &Matrix{
		dimension: dimension,
		modulus:   modulus,
		data:      make([]int, dimension*dimension),
	}, nil
}

// NewClampedMatrix creates an N×N zero matrix after normalizing modulus into
// [MinModulus, MaxModulus]. This preserves the lenient construction intent:
// no error on out-of-range moduli, the value is adjusted to the nearest
// bound. Use NewMatrix when an out-of-range modulus should be reported.
// Complexity: O(N²).
func NewClampedMatrix(dimension, modulus int) (*Matrix, error) {
	return NewMatrix(dimension, ClampModulus(modulus))
}

// NewFromEntries creates an N×N matrix from a row-major entry slice.
// Entries may be arbitrary integers; each is reduced into [0, modulus).
// Stage 1 (Validate): delegate shape/modulus checks to NewMatrix, then
// require exactly N*N entries.
// Stage 2 (Execute): reduce and copy every entry in row-major order.
// Complexity: O(N²).
func NewFromEntries(dimension, modulus int, entries []int) (*Matrix, error) {
	m, err := NewMatrix(dimension, modulus)
	if err != nil {
		return nil, err
	}
	// The listing must cover the whole grid, nothing more.
	if len(entries) != dimension*dimension {
		return nil, fmt.Errorf("NewFromEntries: want %d entries, got %d: %w",
			dimension*dimension, len(entries), ErrBadEntries)
	}
	// Reduce-as-you-copy keeps the [0, modulus) invariant from the start.
	for idx, v := range entries {
		m.data[idx] = reduce(v, modulus)
	}

	return m, nil
}

// ParseEntries rebuilds a matrix from a flattened, comma-separated, row-major
// entry listing (the inverse of String, given dimension and modulus
// out-of-band). Whitespace around entries is tolerated.
//
// Errors: ErrBadEntries on malformed numbers or wrong entry count, plus the
// constructor sentinels for bad dimension/modulus.
// Complexity: O(N²).
func ParseEntries(dimension, modulus int, listing string) (*Matrix, error) {
	// Empty listing encodes the empty matrix.
	trimmed := strings.TrimSpace(listing)
	if trimmed == "" {
		if dimension == 0 {
			return NewMatrix(dimension, modulus)
		}
		return nil, fmt.Errorf("ParseEntries: empty listing for dimension %d: %w", dimension, ErrBadEntries)
	}

	// Split on the canonical separator and convert each field.
	fields := strings.Split(trimmed, entrySeparator)
	entries := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("ParseEntries: entry %d %q: %w", i, f, ErrBadEntries)
		}
		entries[i] = v
	}

	// NewFromEntries enforces the exact N*N count and reduces every entry.
	return NewFromEntries(dimension, modulus, entries)
}

// Dimension returns N, the number of rows (and columns).
// Complexity: O(1).
func (m *Matrix) Dimension() int {
	return m.dimension // square by construction
}

// Modulus returns the residue ring size of the matrix.
// Complexity: O(1).
func (m *Matrix) Modulus() int {
	return m.modulus
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row, col < dimension.
// Stage 2 (Execute): compute and return the linear offset.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, err
	}

	// Row-major flat offset.
	return row*m.dimension + col, nil
}

// At retrieves the entry at (row, col).
// The returned value is always inside [0, modulus).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), reducing v into [0, modulus) first so
// the storage invariant can never be violated by direct assignment.
// Complexity: O(1).
func (m *Matrix) Set(row, col, v int) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf("Set", row, col, err)
	}
	// Normalize before storing; negative inputs land in [0, modulus) too.
	m.data[idx] = reduce(v, m.modulus)

	return nil
}

// Minor returns the (N−1)×(N−1) submatrix obtained by deleting rowExcluded
// and colExcluded. The grid is scanned in row-major order and surviving
// entries are re-packed contiguously in the same order they are encountered;
// the cofactor sign convention depends on exactly this enumeration order.
//
// Errors: ErrOutOfRange when the excluded indices do not address a cell.
// Complexity: O(N²).
func (m *Matrix) Minor(rowExcluded, colExcluded int) (*Matrix, error) {
	if err := ValidateIndex(m, rowExcluded, colExcluded); err != nil {
		return nil, matrixErrorf("Minor", rowExcluded, colExcluded, err)
	}

	// The minor of an N×N matrix is always (N−1)×(N−1); the modulus carries.
	sub := &Matrix{
		dimension: m.dimension - 1,
		modulus:   m.modulus,
		data:      make([]int, (m.dimension-1)*(m.dimension-1)),
	}

	// Row-major scan, skipping the excluded row/column, packing survivors
	// contiguously into the smaller grid.
	next := 0 // write cursor into sub.data
	for i := 0; i < m.dimension; i++ {
		if i == rowExcluded {
			continue // entire row removed
		}
		for j := 0; j < m.dimension; j++ {
			if j == colExcluded {
				continue // entire column removed
			}
			sub.data[next] = m.data[i*m.dimension+j]
			next++
		}
	}

	return sub, nil
}

// Transpose returns a new matrix with result[j,i] = m[i,j].
// The receiver is never mutated.
// Complexity: O(N²).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{
		dimension: m.dimension,
		modulus:   m.modulus,
		data:      make([]int, len(m.data)),
	}
	// Fixed i→j order; flat indexing on both sides.
	n := m.dimension
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[j*n+i] = m.data[i*n+j]
		}
	}

	return out
}

// Entries returns a copy of the flat row-major entry slice; all values are
// canonical residues in [0, modulus). The copy never aliases the matrix.
// Complexity: O(N²) time and memory.
func (m *Matrix) Entries() []int {
	out := make([]int, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(N²) time and memory.
func (m *Matrix) Clone() *Matrix {
	copyData := make([]int, len(m.data))
	copy(copyData, m.data)

	return &Matrix{dimension: m.dimension, modulus: m.modulus, data: copyData}
}

// String implements fmt.Stringer: a flattened, comma-separated, row-major
// listing of all entries. Intended for logging/inspection only; the listing
// round-trips through ParseEntries only with dimension and modulus supplied
// out-of-band.
// Complexity: O(N²).
func (m *Matrix) String() string {
	var b strings.Builder
	for idx, v := range m.data {
		if idx > 0 {
			b.WriteString(entrySeparator)
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
