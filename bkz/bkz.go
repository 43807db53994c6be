// Package bkz implements the block-wise BKZ driver (C8): it composes LLL
// (package lll) with short-vector enumeration (package enum) over
// successive projected blocks, guards against false-progress oscillation
// (C9), and adapts its precision threshold to the input basis once per run
// (C10).
package bkz

import (
	"errors"
	"math/big"

	"gonum.org/v1/gonum/mat"

	"github.com/vttresearch/latreduce/basis"
	"github.com/vttresearch/latreduce/enum"
	"github.com/vttresearch/latreduce/gso"
	"github.com/vttresearch/latreduce/lll"
)

// ErrBlockSize signals a block size outside [1, n].
var ErrBlockSize = errors.New("bkz: block size must be in [1, n]")

// Options configures a BKZ run.
type Options struct {
	BlockSize     int
	Variant       enum.Variant
	Delta         float64
	Precision     Precision
	GuardProgress bool
}

// Reduce is C8: the BKZ driver. It LLL-reduces the whole basis, then tours
// successive β-wide (β = opts.BlockSize) projected blocks, replacing a
// block's leading vector with a shorter combination found by enumeration
// whenever that improves the Lovász quantity at the block's first index,
// and otherwise tightening the tail with a stricter-δ LLL pass. It
// terminates when a full tour produces no accepted progress.
//
// Indexing is zero-based throughout (0..n-1), matching the implementation
// note in spec: the first block spans [0, blockSize-1] and the tour wraps
// j back to 0 (k to min(blockSize, m)) once j reaches the terminal stage
// m = n-1.
func Reduce(b *basis.Matrix, opts Options) (*gso.State, error) {
	n := b.Width()
	if opts.BlockSize < 1 || opts.BlockSize > n {
		return nil, ErrBlockSize
	}
	if err := lll.ValidateDelta(opts.Delta); err != nil {
		return nil, err
	}

	tau := ComputeTau(b, opts.Precision)
	m := n - 1

	state := lll.Reduce(b, nil, 0, opts.Delta, tau, false)

	z := 0
	j := -1
	for z < m {
		j++
		k := min(j+opts.BlockSize-1, m)
		if j == m {
			j = 0
			k = min(opts.BlockSize, m)
		}
		blockEnd := min(k+1, m)

		blockC := append([]float64(nil), state.C[j:k+1]...)
		blockMu := localMu(state.Mu, j, k+1)
		rho, uCoeff, err := enum.Enumerate(opts.Variant, blockC, blockMu)
		if err != nil {
			return nil, err
		}

		accepted := opts.Delta*state.C[j] > rho
		if !accepted {
			z++
			state = retighten(b, state, blockEnd, tau)
			continue
		}

		var before []float64
		if opts.GuardProgress {
			before = append([]float64(nil), state.C[j:k+1]...)
		}

		bNew := b.Slice(j, k+1).MatVec(uCoeff)
		state = injectAndDeepReduce(b, state, j, blockEnd, bNew, opts.Delta, tau)

		materialChange := true
		if opts.GuardProgress {
			after := append([]float64(nil), state.C[j:k+1]...)
			materialChange = !NoMaterialChange(before, after, opts.BlockSize)
		}

		if materialChange {
			z = 0
			continue
		}
		z++
		state = retighten(b, state, blockEnd, tau)
	}

	return state, nil
}

// localMu builds the block-local μ submatrix for columns/rows [a,b) of mu.
func localMu(mu *mat.Dense, a, b int) *mat.Dense {
	width := b - a
	local := mat.NewDense(width, width, nil)
	for i := a; i < b; i++ {
		for j := a; j < b; j++ {
			local.Set(i-a, j-a, mu.At(i, j))
		}
	}
	return local
}

// retighten runs a stricter-δ LLL pass (step 4) over the basis prefix
// [0, blockEnd] to tighten the tail after a rejected or false-progress
// block, resuming from the existing GSO prefix of width blockEnd.
func retighten(b *basis.Matrix, state *gso.State, blockEnd, tau int) *gso.State {
	prefix := b.Slice(0, blockEnd+1)
	preState := state.Prefix(blockEnd)
	result := lll.Reduce(prefix, preState, blockEnd-1, lll.DeepInsertDelta, tau, false)

	b.SetPrefix(prefix)
	state.SetPrefix(result)
	return state
}

// injectAndDeepReduce builds the widened prefix [0, blockEnd+1) with b_new
// inserted at column j, deep-reduces it, and writes the (net-unchanged-
// width) result back into the live basis and GSO state.
func injectAndDeepReduce(b *basis.Matrix, state *gso.State, j, blockEnd int, bNew []*big.Int, delta float64, tau int) *gso.State {
	prefix := b.Slice(0, blockEnd+1)
	prefix.Inject(j, bNew)

	var preState *gso.State
	if j > 0 {
		preState = state.Prefix(j)
	}
	result := lll.ReduceDeepInsert(prefix, preState, j, delta, tau, true)

	b.SetPrefix(prefix)
	state.SetPrefix(result)
	return state
}
