package calligraphy

import (
	"math"
	"sort"
	"testing"
)

func rootsClose(t *testing.T, got []float64, want []float64) {
	t.Helper()
	sort.Float64s(got)
	sort.Float64s(want)
	if len(got) != len(want) {
		t.Fatalf("got %v roots, want %v", got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("root %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSolveQuadraticSpecLinear(t *testing.T) {
	// A=0, B!=0: single root C/(2B).
	got := SolveQuadraticSpec(0, 2, 8)
	rootsClose(t, got, []float64{2})
}

func TestSolveQuadraticSpecDegenerate(t *testing.T) {
	if got := SolveQuadraticSpec(0, 0, 5); got != nil {
		t.Fatalf("expected no roots, got %v", got)
	}
}

func TestSolveQuadraticSpecZeroConstant(t *testing.T) {
	got := SolveQuadraticSpec(2, 3, 0)
	rootsClose(t, got, []float64{0, 3})
}

func TestSolveQuadraticSpecZeroConstantNoLinear(t *testing.T) {
	got := SolveQuadraticSpec(2, 0, 0)
	rootsClose(t, got, []float64{0})
}

func TestSolveQuadraticSpecNoRealRoots(t *testing.T) {
	// t^2 + 1 = 0 in A,B,C form with B=0: A=1,B=0,C=1 -> D = 0 - 1 = -1 < 0.
	if got := SolveQuadraticSpec(1, 0, 1); got != nil {
		t.Fatalf("expected no roots, got %v", got)
	}
}

func TestSolveQuadraticSpecDoubleRoot(t *testing.T) {
	// (t-1)^2 = t^2 - 2t + 1 -> A=1, b=-2 => B=1, C=1. D = 1-1 = 0.
	got := SolveQuadraticSpec(1, 1, 1)
	rootsClose(t, got, []float64{1})
}

func TestSolveQuadraticSpecTwoRoots(t *testing.T) {
	// (t-2)(t-3) = t^2 -5t +6 -> A=1, b=-5 => B=2.5, C=6.
	got := SolveQuadraticSpec(1, 2.5, 6)
	rootsClose(t, got, []float64{2, 3})
}

func TestSolveQuadraticSpecTwoRootsNegativeB(t *testing.T) {
	// (t+2)(t+3) = t^2 +5t +6 -> A=1, b=5 => B=-2.5, C=6.
	got := SolveQuadraticSpec(1, -2.5, 6)
	rootsClose(t, got, []float64{-2, -3})
}

func TestSolveBezierQuadraticMatchesDirectEval(t *testing.T) {
	u, v, w := -1.0, 2.0, 0.5
	roots := SolveBezierQuadratic(u, v, w)
	for _, r := range roots {
		val := (1-r)*(1-r)*u + 2*r*(1-r)*v + r*r*w
		if math.Abs(val) > 1e-9 {
			t.Fatalf("root %v does not satisfy Bernstein form: got %v", r, val)
		}
	}
	if len(roots) == 0 {
		t.Fatalf("expected at least one root for these control values")
	}
}
