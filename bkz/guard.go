package bkz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NoMaterialChange is C9: it detects whether a block's Gram–Schmidt squared
// norms are unchanged, within a scale- and block-size-aware absolute
// tolerance, before and after a candidate injection + deep insertion. It
// guards against the known high-dimension oscillation where a short vector
// is injected and then immediately expelled by deep insertion, producing an
// apparent-but-false improvement that would otherwise reset the BKZ stall
// counter forever.
//
// tol = blockSize * 1e-12 * max(max(before), max(after), 1.0), with zero
// relative tolerance — tightening this silently reintroduces the
// non-termination risk the guard exists to prevent. floats.EqualApprox
// applies tol as an absolute-or-relative bound, which is too loose here, so
// each element is checked with floats.EqualWithinAbs instead.
func NoMaterialChange(before, after []float64, blockSize int) bool {
	scale := math.Max(maxOf(before), math.Max(maxOf(after), 1.0))
	tol := float64(blockSize) * 1e-12 * scale
	for i := range before {
		if !floats.EqualWithinAbs(before[i], after[i], tol) {
			return false
		}
	}
	return true
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
