// Package metrics computes lattice-basis quality characteristics used only
// by this package's own tests (column norms, Hermite and root-Hermite
// factors, orthogonality defect); the log-volume is taken as an argument,
// not computed here. None of it is part of the public reduction API.
package metrics

import "math"

// ColumnNorms returns the Euclidean norm of each column of basis, stored
// row-major (entries[i][j] = B[i,j]).
func ColumnNorms(entries [][]float64) []float64 {
	if len(entries) == 0 {
		return nil
	}
	cols := len(entries[0])
	norms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sumSq float64
		for i := range entries {
			v := entries[i][j]
			sumSq += v * v
		}
		norms[j] = math.Sqrt(sumSq)
	}
	return norms
}

// RootHermiteFactor computes (||b_0|| / Vol(L)^(1/dim))^(1/dim), performing
// the computation in log-space for numerical stability: logVol is
// log(|det(B)|) and shortestVectorLen is ||b_0||.
func RootHermiteFactor(shortestVectorLen, logVol float64, dim int) float64 {
	logB0 := math.Log(shortestVectorLen)
	logRHF := (logB0 - logVol/float64(dim)) / float64(dim)
	return math.Exp(logRHF)
}

// HermiteFactor computes ||b_0|| / Vol(L)^(1/dim) in log-space.
func HermiteFactor(shortestVectorLen, logVol float64, dim int) float64 {
	logB0 := math.Log(shortestVectorLen)
	logHF := logB0 - logVol/float64(dim)
	return math.Exp(logHF)
}

// OrthogonalityDefect computes the dimension-normalized orthogonality
// defect (prod(||b_i||) / Vol(L))^(1/dim) in log-space. It equals 1 for an
// orthogonal basis and grows with the basis's departure from orthogonality,
// independent of dimension.
func OrthogonalityDefect(norms []float64, logVol float64, dim int) float64 {
	var logProd float64
	for _, n := range norms {
		logProd += math.Log(n)
	}
	logDefect := (logProd - logVol) / float64(dim)
	return math.Exp(logDefect)
}
