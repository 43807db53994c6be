package gso

import (
	"math"

	"github.com/vttresearch/latreduce/basis"
)

// SizeReductionThreshold is the §4.2 size-reduction trigger: a μ entry is
// reduced whenever its magnitude exceeds this bound.
const SizeReductionThreshold = 0.5

// SizeReduce runs C2 over column k of μ/basis, from l = k-1 down to 0: for
// each l with |μ[l,k]| > 1/2, it rounds μ[l,k] to the nearest integer m and
// subtracts m·b_l from b_k, updating μ accordingly. Rounding uses
// round-half-away-from-zero (math.Round); the LLL/BKZ post-conditions are
// insensitive to the tie-break rule, per spec.
//
// tau bounds the multiplier magnitude that is considered numerically safe:
// if |m| exceeds 2^(tau/2), SizeReduce returns fcRaised = true and the
// caller must discard the current stage (step back and retry) per §4.2/§4.5.
func SizeReduce(stage int, s *State, b *basis.Matrix, tau int) (fcRaised bool) {
	limit := math.Exp2(float64(tau) / 2)
	for l := stage - 1; l >= 0; l-- {
		muLK := s.Mu.At(l, stage)
		if math.Abs(muLK) <= SizeReductionThreshold {
			continue
		}
		m := math.Round(muLK)
		if math.Abs(m) > limit {
			fcRaised = true
		}
		for j := 0; j < l; j++ {
			s.Mu.Set(j, stage, s.Mu.At(j, stage)-m*s.Mu.At(j, l))
		}
		s.Mu.Set(l, stage, s.Mu.At(l, stage)-m)
		b.SizeReduceColumn(stage, l, int64(m))
	}
	return fcRaised
}
