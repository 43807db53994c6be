// Package enum implements the three depth-first enumerators (C7) that
// search a block's enumeration tree for an approximately shortest lattice
// vector, given only the block's Gram–Schmidt squared norms and
// coefficients — it never touches the basis or the integer lattice
// directly.
package enum

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Variant selects one of the three enumeration strategies.
type Variant int

const (
	// SE1991 is the original Schnorr–Euchner (FCT 1991) ceil-bound variant.
	SE1991 Variant = iota
	// SE1994 is the Schnorr–Euchner (1994) centered-stepping variant.
	SE1994
	// SH is the Schnorr–Hörner round-then-alternate variant.
	SH
)

// ErrUnknownVariant signals a Variant value outside {SE1991, SE1994, SH}.
var ErrUnknownVariant = errors.New("enum: unknown enumeration variant")

// ErrEmptyBlock signals an empty block (c has length 0).
var ErrEmptyBlock = errors.New("enum: empty block")

// Enumerate runs the selected enumeration strategy against a block's
// Gram–Schmidt squared norms c and coefficients mu (mu.At(j,k) is the
// block-local μ[j,k], valid for j<k), returning the smallest projected
// squared norm found and the integer coordinate vector that attains it.
//
// The trivial solution u = (1,0,...,0), attaining c[0], is always
// admissible, so rho is always <= c[0].
func Enumerate(variant Variant, c []float64, mu *mat.Dense) (rho float64, u []int64, err error) {
	if len(c) == 0 {
		return 0, nil, ErrEmptyBlock
	}
	switch variant {
	case SE1991:
		r, uu := enumerateSE1991(c, mu)
		return r, uu, nil
	case SE1994:
		r, uu := enumerateSE1994(c, mu)
		return r, uu, nil
	case SH:
		r, uu := enumerateSH(c, mu)
		return r, uu, nil
	default:
		return 0, nil, ErrUnknownVariant
	}
}

func toInt64(xs []float64) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = int64(x)
	}
	return out
}
