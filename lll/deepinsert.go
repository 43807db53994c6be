package lll

import (
	"github.com/vttresearch/latreduce/basis"
	"github.com/vttresearch/latreduce/gso"
)

// ReduceDeepInsert runs C6: LLL with deep insertion, on a basis that may
// transiently hold one extra, linearly dependent column introduced by
// injection. It shares C1/C2/fc-recovery with Reduce, adds a zero-column
// check (the injected dependency collapses to a zero column at some stage
// and is removed via gso.DeleteZeroColumn), and replaces the adjacent swap
// with a deep-insertion scan-and-rotate.
//
// On return, b has exactly as many columns as it started with minus the
// number of injected dependencies removed (normally one), and is
// LLL-reduced with parameter delta with the additional deep-insertion
// guarantee: no single-column reinsertion improves the prefix-norm
// sequence further.
func ReduceDeepInsert(b *basis.Matrix, s *gso.State, startStage int, delta float64, tau int, fc bool) *gso.State {
	state, stage, end := gso.Setup(b, s, startStage)

	for stage < end {
		state.Step(b, stage)

		if gso.SizeReduce(stage, state, b, tau) {
			fc = true
		}
		if fc {
			fc = false
			stage = max(stage-1, 1)
			continue
		}

		if b.IsZeroColumn(stage) {
			gso.DeleteZeroColumn(b, state, stage)
			end--
			stage = 1
			continue
		}

		cHat := b.DotFloat(stage, stage)
		i := 0
		reordered := false
		for i < stage {
			if delta*state.C[i] <= cHat {
				mu := state.Mu.At(i, stage)
				cHat -= mu * mu * state.C[i]
				i++
				continue
			}
			b.Rotate(i, stage)
			stage = max(i-1, 1)
			reordered = true
			break
		}
		if !reordered {
			stage++
		}
	}

	return state
}
