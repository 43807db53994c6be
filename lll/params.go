// Package lll implements the floating-point LLL reduction core (C5) and
// its deep-insertion variant (C6), both driven as a stage-walk over a
// basis's Gram–Schmidt state.
package lll

import "errors"

// DefaultDelta is the conventional Lovász condition parameter, 3/4.
const DefaultDelta = 0.75

// DeepInsertDelta is the stricter parameter BKZ's driver uses when tightening
// the tail after a no-progress block (see bkz.Reduce).
const DeepInsertDelta = 0.99

// ErrDeltaRange signals a Lovász parameter outside the valid range (1/4, 1).
var ErrDeltaRange = errors.New("lll: delta must be in (1/4, 1)")

// ValidateDelta enforces the §6 input precondition 1/4 < δ < 1.
func ValidateDelta(delta float64) error {
	if delta <= 0.25 || delta >= 1 {
		return ErrDeltaRange
	}
	return nil
}
