// Package basis holds the integer lattice basis that the GSO, LLL and BKZ
// layers mutate. Entries are stored as *big.Int, per the overflow-widening
// guidance for intermediate basis coefficients: a column subtracted many
// times during deep size reduction can grow well past int64 in high
// dimension or with large entry bounds.
package basis

import (
	"errors"
	"fmt"
	"math/big"

	"gonum.org/v1/gonum/mat"
)

// ErrNotSquare signals a basis whose row and column counts differ.
var ErrNotSquare = errors.New("basis: matrix is not square")

// ErrEmpty signals a basis with zero width.
var ErrEmpty = errors.New("basis: matrix is empty")

// Matrix is an n×n integer lattice basis stored column-major: column k is
// the k-th basis vector. All mutations below operate in place.
type Matrix struct {
	n    int
	rows int
	cols [][]*big.Int // cols[k][i] = B[i,k]
}

// New builds a Matrix from row-major integer entries (entries[i][j] is row i,
// column j). It returns ErrNotSquare if the input isn't n×n.
func New(entries [][]int64) (*Matrix, error) {
	n := len(entries)
	if n == 0 {
		return nil, ErrEmpty
	}
	for _, row := range entries {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	m := &Matrix{n: n, rows: n, cols: make([][]*big.Int, n)}
	for j := 0; j < n; j++ {
		col := make([]*big.Int, n)
		for i := 0; i < n; i++ {
			col[i] = big.NewInt(entries[i][j])
		}
		m.cols[j] = col
	}
	return m, nil
}

// NewFromBigInt builds a Matrix taking ownership of the provided columns
// (column-major, col[k][i] = B[i,k]). Every column must have the same
// length as the number of columns for the basis to be square.
func NewFromBigInt(cols [][]*big.Int) (*Matrix, error) {
	n := len(cols)
	if n == 0 {
		return nil, ErrEmpty
	}
	for _, col := range cols {
		if len(col) != n {
			return nil, ErrNotSquare
		}
	}
	return &Matrix{n: n, rows: n, cols: cols}, nil
}

// Width reports the current number of columns (logical basis width).
func (m *Matrix) Width() int { return len(m.cols) }

// Rows reports the number of rows (ambient dimension), fixed at construction.
func (m *Matrix) Rows() int { return m.rows }

// At returns B[i,j].
func (m *Matrix) At(i, j int) *big.Int { return m.cols[j][i] }

// Set assigns B[i,j] = v (v is copied).
func (m *Matrix) Set(i, j int, v *big.Int) { m.cols[j][i].Set(v) }

// Column returns the backing slice for column j (i ranges over rows). The
// caller must not retain it across a structural mutation (Swap/Inject/
// Delete/Rotate invalidate slice identities).
func (m *Matrix) Column(j int) []*big.Int { return m.cols[j] }

// Clone deep-copies the matrix.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{n: m.n, rows: m.rows, cols: make([][]*big.Int, len(m.cols))}
	for j, col := range m.cols {
		nc := make([]*big.Int, len(col))
		for i, v := range col {
			nc[i] = new(big.Int).Set(v)
		}
		out.cols[j] = nc
	}
	return out
}

// Swap exchanges columns j and k in place.
func (m *Matrix) Swap(j, k int) {
	m.cols[j], m.cols[k] = m.cols[k], m.cols[j]
}

// SizeReduceColumn performs B[:,k] -= mult * B[:,l] in place, the integer
// side of C2's size-reduction update.
func (m *Matrix) SizeReduceColumn(k, l int, mult int64) {
	if mult == 0 {
		return
	}
	bm := big.NewInt(mult)
	t := new(big.Int)
	colK, colL := m.cols[k], m.cols[l]
	for i := range colK {
		t.Mul(bm, colL[i])
		colK[i].Sub(colK[i], t)
	}
}

// IsZeroColumn reports whether column j is the zero vector.
func (m *Matrix) IsZeroColumn(j int) bool {
	for _, v := range m.cols[j] {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}

// Inject inserts a new column at position pos, shifting columns pos..end
// right by one. The matrix grows from width w to w+1 (rows unchanged); this
// is the transient widening C6 documents for deep-insert candidate
// injection.
func (m *Matrix) Inject(pos int, col []*big.Int) {
	cp := make([]*big.Int, len(col))
	for i, v := range col {
		cp[i] = new(big.Int).Set(v)
	}
	m.cols = append(m.cols, nil)
	copy(m.cols[pos+1:], m.cols[pos:len(m.cols)-1])
	m.cols[pos] = cp
}

// Delete removes column j, shrinking the matrix from width w to w-1. This is
// C3's structural half (the GSO half lives in gso.DeleteZeroColumn).
func (m *Matrix) Delete(j int) {
	m.cols = append(m.cols[:j], m.cols[j+1:]...)
}

// Rotate moves the column at index k to index i, shifting i..k-1 one
// position to the right — the structural step of C6's deep-insertion scan:
// [..., b_i-1, b_i, ..., b_k-1, b_k, ...] -> [..., b_i-1, b_k, b_i, ..., b_k-1, ...].
func (m *Matrix) Rotate(i, k int) {
	moved := m.cols[k]
	copy(m.cols[i+1:k+1], m.cols[i:k])
	m.cols[i] = moved
}

// DotFloat computes the integer dot product of columns j and k and converts
// it to float64. Used by the GSO layer so the raw ⟨b_j,b_k⟩ term of the
// refined Gram–Schmidt recurrence comes from exact integer arithmetic even
// though the correction terms are accumulated in double precision.
func (m *Matrix) DotFloat(j, k int) float64 {
	f, _ := new(big.Float).SetInt(m.Dot(j, k)).Float64()
	return f
}

// Dot computes the integer dot product of columns j and k.
func (m *Matrix) Dot(j, k int) *big.Int {
	sum := new(big.Int)
	t := new(big.Int)
	colJ, colK := m.cols[j], m.cols[k]
	for i := range colJ {
		t.Mul(colJ[i], colK[i])
		sum.Add(sum, t)
	}
	return sum
}

// Float64 renders the current matrix as a gonum dense float64 matrix. It is
// a fresh copy on each call; AbsDetLog uses it. The GSO layer does not: it
// reads the integer basis through Dot/DotFloat.
func (m *Matrix) Float64() *mat.Dense {
	rows, cols := m.rows, len(m.cols)
	d := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			f, _ := new(big.Float).SetInt(m.cols[j][i]).Float64()
			d.Set(i, j, f)
		}
	}
	return d
}

// SetPrefix overwrites the receiver's first other.Width() columns with
// other's columns, used to write a freshly reduced prefix (produced on an
// independent copy via Slice) back into the live basis.
func (m *Matrix) SetPrefix(other *Matrix) {
	for j := 0; j < other.Width(); j++ {
		for i := 0; i < m.rows; i++ {
			m.Set(i, j, other.At(i, j))
		}
	}
}

// Slice builds a block view (columns [a,b)) as an independent Matrix, used
// to hand the enumerator a self-contained sublattice per spec §4.7.
func (m *Matrix) Slice(a, b int) *Matrix {
	cols := make([][]*big.Int, 0, b-a)
	for j := a; j < b; j++ {
		col := make([]*big.Int, len(m.cols[j]))
		for i, v := range m.cols[j] {
			col[i] = new(big.Int).Set(v)
		}
		cols = append(cols, col)
	}
	return &Matrix{n: m.n, rows: m.rows, cols: cols}
}

// MatVec computes basis * u for an integer coefficient vector u of length
// Width(), returning the resulting lattice vector as big.Int column.
func (m *Matrix) MatVec(u []int64) []*big.Int {
	out := make([]*big.Int, m.rows)
	for i := range out {
		out[i] = new(big.Int)
	}
	t := new(big.Int)
	for j, uj := range u {
		if uj == 0 {
			continue
		}
		bu := big.NewInt(uj)
		col := m.cols[j]
		for i := 0; i < m.rows; i++ {
			t.Mul(bu, col[i])
			out[i].Add(out[i], t)
		}
	}
	return out
}

// AbsDetLog returns log(|det B|) computed via gonum's LU-based LogDet on the
// float64 view, backing P1's lattice-invariance check without forming the
// (potentially huge) integer determinant directly.
func (m *Matrix) AbsDetLog() float64 {
	logAbsDet, _ := mat.LogDet(m.Float64())
	return logAbsDet
}

// String renders the basis for debugging, one basis vector per row (so it
// reads like the mathematical basis list rather than the column-major
// storage).
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		s += "["
		for j := 0; j < len(m.cols); j++ {
			if j > 0 {
				s += " "
			}
			s += fmt.Sprintf("%v", m.cols[j][i])
		}
		s += "]\n"
	}
	return s
}
