package gso

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vttresearch/latreduce/basis"
)

// DeleteZeroColumn removes the detected zero column at index k from the
// basis, c, and the corresponding row and column of μ (C3). The caller must
// restart GSO/size-reduction from stage 1: the remaining arrays are a
// consistent GSO prefix of width k, not of the full shrunk width.
func DeleteZeroColumn(b *basis.Matrix, s *State, k int) {
	b.Delete(k)

	oldWidth := s.Width()
	newWidth := oldWidth - 1

	mu := mat.NewDense(newWidth, newWidth, nil)
	for i := 0; i < oldWidth; i++ {
		if i == k {
			continue
		}
		ii := i
		if i > k {
			ii = i - 1
		}
		for j := 0; j < oldWidth; j++ {
			if j == k {
				continue
			}
			jj := j
			if j > k {
				jj = j - 1
			}
			mu.Set(ii, jj, s.Mu.At(i, j))
		}
	}

	c := make([]float64, newWidth)
	copy(c, s.C[:k])
	copy(c[k:], s.C[k+1:])

	s.Mu, s.C = mu, c
}
