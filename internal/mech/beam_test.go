package mech

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimpleBeamConcentrated(t *testing.T) {
	tests := []struct {
		name             string
		p, l, a          float64
		wantVa, wantVb   float64
		wantMmax         float64
	}{
		{"P=40 L=8 a=2", 40, 8, 2, 30, 10, 60},
		{"central load", 20, 6, 3, 10, 10, 30},
		{"near right support", 30, 10, 8, 6, 24, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			va, vb, mmax := SimpleBeamConcentrated(tt.p, tt.l, tt.a)
			if !almostEqual(va, tt.wantVa) {
				t.Errorf("Va = %v, want %v", va, tt.wantVa)
			}
			if !almostEqual(vb, tt.wantVb) {
				t.Errorf("Vb = %v, want %v", vb, tt.wantVb)
			}
			if !almostEqual(mmax, tt.wantMmax) {
				t.Errorf("Mmax = %v, want %v", mmax, tt.wantMmax)
			}
		})
	}
}

func TestSimpleBeamUDL(t *testing.T) {
	v, mmax := SimpleBeamUDL(4, 8)
	if !almostEqual(v, 16) {
		t.Errorf("V = %v, want 16", v)
	}
	if !almostEqual(mmax, 32) {
		t.Errorf("Mmax = %v, want 32", mmax)
	}
}

func TestSimpleBeamUDLAt(t *testing.T) {
	// w=4, L=8: M(2) = 4·2·6/2 = 24, Q(2) = 16 − 8 = 8.
	m, q := SimpleBeamUDLAt(4, 8, 2)
	if !almostEqual(m, 24) {
		t.Errorf("M(2) = %v, want 24", m)
	}
	if !almostEqual(q, 8) {
		t.Errorf("Q(2) = %v, want 8", q)
	}

	// Midspan: moment equals wL²/8, shear is zero.
	m, q = SimpleBeamUDLAt(4, 8, 4)
	if !almostEqual(m, 32) {
		t.Errorf("M(L/2) = %v, want 32", m)
	}
	if !almostEqual(q, 0) {
		t.Errorf("Q(L/2) = %v, want 0", q)
	}
}

func TestCantilever(t *testing.T) {
	m, v := CantileverConcentrated(10, 3)
	if !almostEqual(m, 30) || !almostEqual(v, 10) {
		t.Errorf("concentrated: got M=%v V=%v, want 30, 10", m, v)
	}

	m, v = CantileverUDL(2, 4)
	if !almostEqual(m, 16) || !almostEqual(v, 8) {
		t.Errorf("UDL: got M=%v V=%v, want 16, 8", m, v)
	}
}

func TestOverhangLoadOnOverhang(t *testing.T) {
	va, vb, mb := OverhangLoadOnOverhang(12, 6, 2)
	if !almostEqual(va, 4) {
		t.Errorf("Va = %v, want 4", va)
	}
	if !almostEqual(vb, 16) {
		t.Errorf("Vb = %v, want 16", vb)
	}
	if !almostEqual(mb, 24) {
		t.Errorf("Mb = %v, want 24", mb)
	}
}
