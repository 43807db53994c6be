package enum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// enumerateSE1991 is C7a: the original Schnorr–Euchner (FCT 1991) strategy,
// which derives the next coefficient at depth t from a ceil-bound on the
// remaining search radius rather than rounding to the nearest center.
func enumerateSE1991(c []float64, mu *mat.Dense) (float64, []int64) {
	k := len(c) - 1
	rho := c[0]

	cTilde := make([]float64, k+2)
	uTilde := make([]float64, k+2)
	u := make([]float64, k+1)
	y := make([]float64, k+1)

	t := k
	u[0] = 1
	y[t] = 0
	uTilde[t] = math.Ceil(-math.Sqrt(rho / c[t]))

	for {
		cTilde[t] = cTilde[t+1] + (y[t]+uTilde[t])*(y[t]+uTilde[t])*c[t]
		if cTilde[t] < rho {
			if t > 0 {
				t--
				y[t] = projectionSum(uTilde, mu, t, t+1, k+1)
				uTilde[t] = math.Ceil(-y[t] - math.Sqrt((rho-cTilde[t+1])/c[t]))
				continue
			}
			if anyNonzero(uTilde[:k+1]) {
				rho = cTilde[0]
				copy(u, uTilde[:k+1])
			}
		} else {
			t++
		}
		if t <= k {
			uTilde[t]++
		} else {
			break
		}
	}

	return rho, toInt64(u)
}

// projectionSum computes Σ_{i=lo}^{hi-1} uTilde[i]·mu[t,i], the y[t]
// recurrence shared by all three enumerators.
func projectionSum(uTilde []float64, mu *mat.Dense, t, lo, hi int) float64 {
	var sum float64
	for i := lo; i < hi; i++ {
		sum += uTilde[i] * mu.At(t, i)
	}
	return sum
}

func anyNonzero(xs []float64) bool {
	for _, x := range xs {
		if x != 0 {
			return true
		}
	}
	return false
}
