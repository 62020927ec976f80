package mech

import (
	"math"
	"testing"
)

func TestTriangleLowerChord(t *testing.T) {
	for _, p := range []float64{10, 24, 60, 100} {
		got := TriangleLowerChord(p)
		if got != p/2 {
			t.Errorf("TriangleLowerChord(%v) = %v, want %v", p, got, p/2)
		}
		if got <= 0 {
			t.Errorf("lower chord must be tension (positive), got %v", got)
		}
	}
}

func TestTriangleRafter(t *testing.T) {
	got := TriangleRafter(10)
	want := -10 / math.Sqrt2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("TriangleRafter(10) = %v, want %v", got, want)
	}
	if got >= 0 {
		t.Error("rafter must be compression (negative)")
	}
}

func TestCantileverTruss(t *testing.T) {
	if got := CantileverTrussDiagonal(12); got != 20 {
		t.Errorf("diagonal = %v, want 20", got)
	}
	if got := CantileverTrussChord(12); got != -16 {
		t.Errorf("chord = %v, want -16", got)
	}
}

func TestPratt(t *testing.T) {
	if got := PrattDiagonal(12); got != 10 {
		t.Errorf("diagonal = %v, want 10", got)
	}
	if got := PrattVertical(12); got != -6 {
		t.Errorf("vertical = %v, want -6", got)
	}
}

// Tension-positive convention: for every family the tension member is
// positive and the compression member negative for any positive load.
func TestSignConvention(t *testing.T) {
	for _, p := range []float64{6, 12, 48} {
		if TriangleLowerChord(p) <= 0 {
			t.Errorf("P=%v: triangle chord not positive", p)
		}
		if TriangleRafter(p) >= 0 {
			t.Errorf("P=%v: triangle rafter not negative", p)
		}
		if CantileverTrussDiagonal(p) <= 0 {
			t.Errorf("P=%v: cantilever diagonal not positive", p)
		}
		if CantileverTrussChord(p) >= 0 {
			t.Errorf("P=%v: cantilever chord not negative", p)
		}
		if PrattDiagonal(p) <= 0 {
			t.Errorf("P=%v: Pratt diagonal not positive", p)
		}
		if PrattVertical(p) >= 0 {
			t.Errorf("P=%v: Pratt vertical not negative", p)
		}
	}
}
