package bkz

import (
	"math"
	"testing"

	"github.com/vttresearch/latreduce/basis"
	"github.com/vttresearch/latreduce/enum"
)

func mustBasis(t *testing.T, entries [][]int64) *basis.Matrix {
	t.Helper()
	b, err := basis.New(entries)
	if err != nil {
		t.Fatalf("basis.New: %v", err)
	}
	return b
}

// assertLLLReduced checks P2/P4 against the returned state for the whole
// width, the P2/P4 part of what lll's own tests check after a plain LLL
// pass (those also check P3).
func assertLLLReduced(t *testing.T, b *basis.Matrix, mu func(i, j int) float64, c []float64, delta float64) {
	t.Helper()
	n := b.Width()
	for k := 0; k < n; k++ {
		norm := b.DotFloat(k, k)
		sum := c[k]
		for j := 0; j < k; j++ {
			sum += mu(j, k) * mu(j, k) * c[j]
		}
		if math.Abs(norm-sum) > 1e-6 {
			t.Errorf("P2 violated at k=%d: |b_k|^2=%v, c+sum=%v", k, norm, sum)
		}
		if k >= 1 {
			m := mu(k-1, k)
			if delta*c[k-1] > c[k]+m*m*c[k-1]+1e-6 {
				t.Errorf("P4 violated at k=%d", k)
			}
		}
	}
}

func TestReduceRejectsBadBlockSize(t *testing.T) {
	b := mustBasis(t, [][]int64{{1, 0}, {0, 1}})
	_, err := Reduce(b, Options{BlockSize: 0, Variant: enum.SE1991, Delta: 0.99, Precision: PrecisionDefault})
	if err != ErrBlockSize {
		t.Fatalf("err = %v, want ErrBlockSize", err)
	}
	_, err = Reduce(b, Options{BlockSize: 3, Variant: enum.SE1991, Delta: 0.99, Precision: PrecisionDefault})
	if err != ErrBlockSize {
		t.Fatalf("err = %v, want ErrBlockSize", err)
	}
}

func TestReduceRejectsBadDelta(t *testing.T) {
	b := mustBasis(t, [][]int64{{1, 0}, {0, 1}})
	_, err := Reduce(b, Options{BlockSize: 2, Variant: enum.SE1991, Delta: 1.5, Precision: PrecisionDefault})
	if err == nil {
		t.Fatalf("expected delta-range error, got nil")
	}
}

func TestReduceIdentityStaysReduced(t *testing.T) {
	b := mustBasis(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	s, err := Reduce(b, Options{
		BlockSize:     2,
		Variant:       enum.SE1991,
		Delta:         0.99,
		Precision:     PrecisionDefault,
		GuardProgress: true,
	})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	assertLLLReduced(t, b, func(i, j int) float64 { return s.Mu.At(i, j) }, s.C, 0.99)
	for k := 0; k < 3; k++ {
		if math.Abs(s.C[k]-1) > 1e-9 {
			t.Fatalf("c[%d] = %v, want 1", k, s.C[k])
		}
	}
}

func TestReducePreservesLatticeVolume(t *testing.T) {
	// S3 from spec: basis [[3,1,4],[1,5,9],[2,6,5]], |det| = 90.
	entries := [][]int64{{3, 1, 4}, {1, 5, 9}, {2, 6, 5}}
	b := mustBasis(t, entries)
	logBefore := b.AbsDetLog()

	s, err := Reduce(b, Options{
		BlockSize:     2,
		Variant:       enum.SE1991,
		Delta:         0.99,
		Precision:     PrecisionDefault,
		GuardProgress: true,
	})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	logAfter := b.AbsDetLog()
	if math.Abs(logBefore-logAfter) > 1e-6 {
		t.Fatalf("P1 violated: log|det| before=%v after=%v", logBefore, logAfter)
	}
	assertLLLReduced(t, b, func(i, j int) float64 { return s.Mu.At(i, j) }, s.C, 0.99)
}

func TestReduceFullBlockMatchesWidth(t *testing.T) {
	// BlockSize == n: the block at j = 0 spans the whole basis, and the
	// wrap clamps k to m = n-1 instead of indexing past the last column.
	b := mustBasis(t, [][]int64{{5, 1, 0}, {1, 5, 1}, {0, 1, 5}})
	s, err := Reduce(b, Options{
		BlockSize: 3,
		Variant:   enum.SE1994,
		Delta:     0.99,
		Precision: PrecisionLow,
	})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if s.Width() != 3 {
		t.Fatalf("state width = %d, want 3", s.Width())
	}
}

func TestReduceSchnorrHornerVariant(t *testing.T) {
	b := mustBasis(t, [][]int64{{10, 1}, {1, 10}})
	_, err := Reduce(b, Options{
		BlockSize: 2,
		Variant:   enum.SH,
		Delta:     0.9,
		Precision: PrecisionHigh,
	})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
}
