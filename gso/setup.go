package gso

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vttresearch/latreduce/basis"
)

// Setup is C4: it initializes or grows the GSO state to match the current
// basis width and reports the stage to resume from and the stage at which
// the caller's reduction loop should terminate. The branch is keyed on the
// requested start stage, not on whether a prefix state was supplied: if
// startStage == 0, a fresh state is allocated and stage is set to 1 (any
// state the caller passed is discarded); otherwise the existing state is
// padded up to the basis width and stage is set to startStage, and s must
// not be nil.
func Setup(b *basis.Matrix, s *State, startStage int) (state *State, stage, end int) {
	width := b.Width()
	end = width
	if startStage == 0 {
		return NewState(width), 1, end
	}
	s.Grow(width)
	return s, startStage, end
}

// NewState allocates a fresh GSO state of the given width, with μ[0,0] = 1
// and c all zero — the start-stage-zero branch of C4 (Setup).
func NewState(width int) *State {
	mu := mat.NewDense(width, width, nil)
	mu.Set(0, 0, 1.0)
	return &State{Mu: mu, C: make([]float64, width)}
}

// Grow pads an existing state (of some smaller width) up to newWidth with
// zeros, preserving all existing μ/c entries — the non-zero-start-stage
// branch of C4, used whenever a caller resumes LLL/deep-insert from a
// mid-basis stage with a pre-existing GSO prefix.
func (s *State) Grow(newWidth int) {
	oldWidth := s.Width()
	if newWidth <= oldWidth {
		return
	}
	mu := mat.NewDense(newWidth, newWidth, nil)
	for i := 0; i < oldWidth; i++ {
		for j := 0; j < oldWidth; j++ {
			mu.Set(i, j, s.Mu.At(i, j))
		}
	}
	c := make([]float64, newWidth)
	copy(c, s.C)
	s.Mu, s.C = mu, c
}
