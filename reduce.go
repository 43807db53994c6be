package latreduce

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vttresearch/latreduce/basis"
	"github.com/vttresearch/latreduce/bkz"
	"github.com/vttresearch/latreduce/enum"
	"github.com/vttresearch/latreduce/gso"
	"github.com/vttresearch/latreduce/lll"
)

// ReduceLLL runs classic LLL (C5) on a copy of b with Lovász parameter
// delta, returning the reduced basis and its Gram–Schmidt state. b itself
// is left untouched.
func ReduceLLL(b *basis.Matrix, delta float64) (*basis.Matrix, *gso.State, error) {
	if err := lll.ValidateDelta(delta); err != nil {
		return nil, nil, err
	}
	out := b.Clone()
	if err := checkFullRank(out); err != nil {
		return nil, nil, err
	}
	tau := bkz.ComputeTau(out, bkz.PrecisionDefault)
	state := lll.Reduce(out, nil, 0, delta, tau, false)
	return out, state, nil
}

// ReduceBKZ runs BKZ (C8) on a copy of b with the given options, returning
// the reduced basis and its final Gram–Schmidt state. b itself is left
// untouched.
func ReduceBKZ(b *basis.Matrix, opts bkz.Options) (*basis.Matrix, *gso.State, error) {
	out := b.Clone()
	if err := checkFullRank(out); err != nil {
		return nil, nil, err
	}
	state, err := bkz.Reduce(out, opts)
	if err != nil {
		return nil, nil, err
	}
	return out, state, nil
}

// Enumerate runs enumeration (C7) over block, returning the smallest
// projected squared norm found and the integer coordinate vector attaining
// it. c and mu are the block's own Gram–Schmidt squared norms and
// coefficient matrix (computed independently of block, since an
// enumeration block need not be a standalone basis callers already hold a
// GSO state for).
func Enumerate(variant enum.Variant, block *basis.Matrix, c []float64, mu *mat.Dense) (float64, []int64, error) {
	return enum.Enumerate(variant, c, mu)
}

// checkFullRank reports ErrRankDeficient if b's columns are linearly
// dependent, detected via a non-finite log-determinant.
func checkFullRank(b *basis.Matrix) error {
	logDet := b.AbsDetLog()
	if math.IsInf(logDet, -1) || math.IsNaN(logDet) {
		return ErrRankDeficient
	}
	return nil
}
