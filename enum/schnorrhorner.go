package enum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// enumerateSH is C7c: the Schnorr–Hörner strategy. Like SE1994 it rounds to
// the nearest center when descending to a new depth, but on ascent it has
// no stepping-pair state: the first visit at a depth increments by one,
// later visits alternate away from the rounded center via alternate().
func enumerateSH(c []float64, mu *mat.Dense) (float64, []int64) {
	k := len(c)

	cTilde := make([]float64, k+1)
	uTilde := make([]float64, k+1)
	u := make([]float64, k)
	y := make([]float64, k)

	tMax, t := 0, 0
	rho := c[0]
	uTilde[0], u[0] = 1, 1

	for t < k {
		cTilde[t] = cTilde[t+1] + (y[t]+uTilde[t])*(y[t]+uTilde[t])*c[t]
		if cTilde[t] < rho {
			if t > 0 {
				t--
				y[t] = projectionSum(uTilde, mu, t, t+1, tMax+1)
				uTilde[t] = math.Round(-y[t])
			} else {
				rho = cTilde[0]
				copy(u, uTilde[:k])
			}
		} else {
			t++
			if t > tMax {
				tMax = t
			}
			if t == tMax {
				uTilde[t]++
			} else {
				uTilde[t] = alternate(uTilde[t], -y[t])
			}
		}
	}

	return rho, toInt64(u)
}

// alternate replaces a with the next integer stepping away from center r:
// one below a if r is above a, one above a otherwise.
func alternate(a, r float64) float64 {
	if r > a {
		return a - 1
	}
	return a + 1
}
