package bkz

import (
	"math"

	"github.com/vttresearch/latreduce/basis"
)

// Precision selects how aggressively τ (the size-reduction multiplier
// magnitude threshold, read by gso.SizeReduce) tracks the input basis's
// scale.
type Precision int

const (
	// PrecisionLow favors faster computation: τ in [10, 40].
	PrecisionLow Precision = iota
	// PrecisionDefault is a balanced scaling: τ in [20, 60].
	PrecisionDefault
	// PrecisionHigh favors numerical safety: τ in [30, 80].
	PrecisionHigh
)

// ComputeTau is C10: it computes τ once, from the average column norm of
// the starting basis, scaled and clamped per precision level. τ is
// returned as a plain value rather than stored in a package global, so a
// reduction run threads it explicitly through lll.Reduce/ReduceDeepInsert
// and remains reentrant across concurrent runs.
func ComputeTau(b *basis.Matrix, level Precision) int {
	width := b.Width()
	var sum float64
	for j := 0; j < width; j++ {
		sum += math.Sqrt(b.DotFloat(j, j))
	}
	avgNorm := sum / float64(width)
	logAvg := math.Log2(avgNorm)

	switch level {
	case PrecisionLow:
		return clamp(int(logAvg), 10, 40)
	case PrecisionHigh:
		return clamp(int(logAvg*2), 30, 80)
	default:
		return clamp(int(logAvg*1.5), 20, 60)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
