package enum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// enumerateSE1994 is C7b: the Schnorr–Euchner (1994) centered-stepping
// strategy, which rounds to the nearest center at each new depth and then
// alternates steps around it (v, τ̃, δ) instead of re-deriving a ceil bound.
// It also applies a pruning slope α = min(1.05·(k-t+1)/k, 1) to the
// comparison against the best norm so far; the min caps α at 1, so the
// slope never widens the search, and α = 1 at the leaf level t = 0.
func enumerateSE1994(c []float64, mu *mat.Dense) (float64, []int64) {
	k := len(c) - 1

	cTilde := make([]float64, k+2)
	uTilde := make([]float64, k+2)
	u := make([]float64, k+1)
	y := make([]float64, k+1)
	tri := make([]float64, k+2)
	v := make([]float64, k+2)
	delta := make([]float64, k+2)
	for i := range delta {
		delta[i] = 1
	}

	s, t := 0, 0
	minSq := c[0]
	uTilde[0], u[0] = 1, 1

	for t <= k {
		cTilde[t] = cTilde[t+1] + (y[t]+uTilde[t])*(y[t]+uTilde[t])*c[t]
		alpha := 1.0
		if k > 0 {
			alpha = math.Min(1.05*float64(k-t+1)/float64(k), 1.0)
		}
		if cTilde[t] < alpha*minSq {
			if t > 0 {
				t--
				y[t] = projectionSum(uTilde, mu, t, t+1, s+1)
				uTilde[t] = math.Round(-y[t])
				v[t] = uTilde[t]
				tri[t] = 0
				if uTilde[t] > -y[t] {
					delta[t] = -1
				} else {
					delta[t] = 1
				}
			} else {
				minSq = cTilde[0]
				copy(u, uTilde[:k+1])
			}
		} else {
			t++
			if t > s {
				s = t
			}
			if t < s {
				tri[t] = -tri[t]
			}
			if tri[t]*delta[t] >= 0 {
				tri[t] += delta[t]
			}
			uTilde[t] = v[t] + tri[t]
		}
	}

	return minSq, toInt64(u)
}
