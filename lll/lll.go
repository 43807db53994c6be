package lll

import (
	"github.com/vttresearch/latreduce/basis"
	"github.com/vttresearch/latreduce/gso"
)

// Reduce runs the classic LLL stage-walk (C5) on b in place, using (and
// possibly allocating/growing) the GSO state s. If startStage is 0, a fresh
// state is allocated (s is ignored and may be nil) and the walk starts at
// stage 1; otherwise s must be non-nil and the walk resumes at startStage
// against that pre-existing GSO prefix, re-verifying it as
// it goes (size reduction and the Lovász test both recompute from the
// current μ/c).
//
// tau bounds the size-reduction multiplier magnitude considered safe (see
// gso.SizeReduce); fc is the caller-seeded precision flag (§4.5 passes
// f_c=true when the prefix handed in is not trusted, e.g. mid-BKZ).
//
// Reduce terminates when stage reaches the basis width. On return b is
// LLL-reduced with parameter delta and the returned State is the
// corresponding Gram–Schmidt data.
func Reduce(b *basis.Matrix, s *gso.State, startStage int, delta float64, tau int, fc bool) *gso.State {
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

		if lovaszFails(state, stage, delta) {
			b.Swap(stage-1, stage)
			stage = max(stage-1, 1)
		} else {
			stage++
		}
	}

	return state
}

// lovaszFails reports whether the Lovász condition is violated at stage:
// δ·c[stage-1] > c[stage] + μ[stage-1,stage]²·c[stage-1].
func lovaszFails(s *gso.State, stage int, delta float64) bool {
	cPrev := s.C[stage-1]
	mu := s.Mu.At(stage-1, stage)
	return delta*cPrev > s.C[stage]+mu*mu*cPrev
}
