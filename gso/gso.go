// Package gso maintains the Gram–Schmidt orthogonalization state (μ, the
// coefficient matrix, and c, the squared-norm vector) incrementally under
// the basis mutations LLL and BKZ perform: swaps, size reductions, deep
// insertions, column injection and deletion.
//
// State is always owned exclusively by whichever of lll.Reduce,
// lll.ReduceDeepInsert or bkz.Reduce currently holds the basis; nothing in
// this package retains a State across calls on its own.
package gso

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vttresearch/latreduce/basis"
)

// State is the Gram–Schmidt coefficient matrix μ together with the
// Gram–Schmidt squared-norm vector c, both of the same logical width as the
// basis they describe.
type State struct {
	Mu *mat.Dense // upper-unitriangular, width x width
	C  []float64  // length width
}

// Width reports the current logical width of the GSO state.
func (s *State) Width() int { return len(s.C) }

// Prefix extracts an independent copy of the first w rows/columns of μ and
// entries of c, used to hand a trusted existing GSO prefix to lll.Reduce /
// lll.ReduceDeepInsert without aliasing the caller's full-width state.
func (s *State) Prefix(w int) *State {
	mu := mat.NewDense(w, w, nil)
	for i := 0; i < w; i++ {
		for j := 0; j < w; j++ {
			mu.Set(i, j, s.Mu.At(i, j))
		}
	}
	c := make([]float64, w)
	copy(c, s.C[:w])
	return &State{Mu: mu, C: c}
}

// SetPrefix overwrites the receiver's first other.Width() rows/columns of μ
// and entries of c with other's, used to write a freshly reduced prefix
// state back into a live, wider GSO state.
func (s *State) SetPrefix(other *State) {
	w := other.Width()
	for i := 0; i < w; i++ {
		for j := 0; j < w; j++ {
			s.Mu.Set(i, j, other.Mu.At(i, j))
		}
	}
	copy(s.C[:w], other.C)
}

// Step computes column k of μ and c[k] (and c[0] too, when k == 1) from a
// basis prefix of width k+1 and an already-correct GSO prefix for columns
// 0..k-1. This is C1 of the design: the refined Gram–Schmidt recurrence
// that takes the raw ⟨b_k,b_j⟩ dot products from the *exact* integer basis
// (via basis.Matrix.Dot) and only performs the μ/c correction arithmetic in
// double precision — the numerically stable form spec'd for high-dimension
// bases.
//
// Step panics if c[j] is zero for some j < k: the caller has handed in an
// inconsistent GSO prefix, which spec treats as a caller bug rather than a
// runtime error.
func (s *State) Step(b *basis.Matrix, k int) {
	if k == 1 {
		s.C[0] = b.DotFloat(0, 0)
	}

	c := b.DotFloat(k, k)
	for j := 0; j < k; j++ {
		if s.C[j] == 0 {
			panic("gso: zero Gram-Schmidt norm at index below current stage")
		}
		dot := b.DotFloat(k, j)
		var correction float64
		for i := 0; i < j; i++ {
			correction += s.Mu.At(i, j) * s.Mu.At(i, k) * s.C[i]
		}
		muJK := (dot - correction) / s.C[j]
		s.Mu.Set(j, k, muJK)
		c -= muJK * muJK * s.C[j]
	}
	s.Mu.Set(k, k, 1.0)
	s.C[k] = c
}
