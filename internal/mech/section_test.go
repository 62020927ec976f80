package mech

import (
	"math"
	"testing"
)

func TestRectProperties(t *testing.T) {
	// b=120, h=180: Z = 120·180²/6 = 648000, I = 120·180³/12 = 58320000.
	if got := RectZ(120, 180); got != 648000 {
		t.Errorf("RectZ(120,180) = %v, want 648000", got)
	}
	if got := RectI(120, 180); got != 58320000 {
		t.Errorf("RectI(120,180) = %v, want 58320000", got)
	}
	if got := RectArea(120, 180); got != 21600 {
		t.Errorf("RectArea(120,180) = %v, want 21600", got)
	}

	// b=100, h=200 gives a non-integer Z (666666.67); the pools must never
	// hold it, but the formula itself is exact arithmetic.
	z := RectZ(100, 200)
	if math.Abs(z-4e6/6) > 1e-6 {
		t.Errorf("RectZ(100,200) = %v", z)
	}
}

func TestHollowRect(t *testing.T) {
	// Outer 120×200, 10 mm walls (inner 100×180):
	// I = (120·200³ − 100·180³)/12 = 376800000/12 = 31400000,
	// Z = I/(200/2) = 314000. Both integers, so the comparison is exact.
	if got := HollowRectI(120, 200, 100, 180); got != 31400000 {
		t.Errorf("HollowRectI = %v, want 31400000", got)
	}
	if got := HollowRectZ(120, 200, 100, 180); got != 314000 {
		t.Errorf("HollowRectZ = %v, want 314000", got)
	}
}

func TestLShapeCentroid(t *testing.T) {
	// B=100, H=100, T=20.
	// A1 = 20·100 = 2000 at x=10; A2 = 80·20 = 1600 at x=60.
	// xg = (2000·10 + 1600·60)/3600 = 116000/3600 = 32.22...
	s := LShape{B: 100, H: 100, T: 20}
	if got := s.Area(); got != 3600 {
		t.Errorf("Area = %v, want 3600", got)
	}
	want := 116000.0 / 3600.0
	if math.Abs(s.CentroidX()-want) > 1e-9 {
		t.Errorf("CentroidX = %v, want %v", s.CentroidX(), want)
	}
}

func TestLShapeParallelAxis(t *testing.T) {
	// Iy must always exceed the sum of the local terms alone and match a
	// direct Σ(I0 + A·d²) evaluation.
	s := LShape{B: 120, H: 90, T: 30}
	xg := s.CentroidX()

	a1, x1 := 30.0*90, 15.0
	i1 := 90.0 * 30 * 30 * 30 / 12
	a2, x2 := 90.0*30, 75.0
	i2 := 30.0 * 90 * 90 * 90 / 12

	want := i1 + a1*(x1-xg)*(x1-xg) + i2 + a2*(x2-xg)*(x2-xg)
	if math.Abs(s.Iy()-want) > 1e-6 {
		t.Errorf("Iy = %v, want %v", s.Iy(), want)
	}
	if s.Iy() <= i1+i2 {
		t.Error("parallel-axis terms missing")
	}
}

func TestTShapeCentroid(t *testing.T) {
	// B=100, H=120, TF=20, TW=20.
	// Flange: A=2000 at y=110. Web: A=2000 at y=50.
	// yg = (2000·110 + 2000·50)/4000 = 80.
	s := TShape{B: 100, H: 120, TF: 20, TW: 20}
	if got := s.CentroidY(); got != 80 {
		t.Errorf("CentroidY = %v, want 80", got)
	}
	if got := s.Area(); got != 4000 {
		t.Errorf("Area = %v, want 4000", got)
	}
}

func TestHShape(t *testing.T) {
	// B=100, H=200, TF=20, TW=10: hw=160.
	// A = 100·200 − 90·160 = 5600.
	// I = (100·200³ − 90·160³)/12 = (8e8 − 368640000)/12 = 35946666.66...
	s := HShape{B: 100, H: 200, TF: 20, TW: 10}
	if got := s.WebDepth(); got != 160 {
		t.Errorf("WebDepth = %v, want 160", got)
	}
	if got := s.Area(); got != 5600 {
		t.Errorf("Area = %v, want 5600", got)
	}
	wantI := (100.0*200*200*200 - 90.0*160*160*160) / 12
	if got := s.Ix(); math.Abs(got-wantI) > 1e-6 {
		t.Errorf("Ix = %v, want %v", got, wantI)
	}
	if got := s.Zx(); math.Abs(got-wantI/100) > 1e-6 {
		t.Errorf("Zx = %v, want %v", got, wantI/100)
	}
}
