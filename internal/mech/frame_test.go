package mech

import "testing"

func TestPortalCentralLoad(t *testing.T) {
	// P=24, L=6, h=4: H = 24·6/16 = 9, M = 9·4 = 36 = PL/4.
	h, m := PortalCentralLoad(24, 6, 4)
	if h != 9 {
		t.Errorf("H = %v, want 9", h)
	}
	if m != 36 {
		t.Errorf("M = %v, want 36", m)
	}
	if m != 24*6/4.0 {
		t.Error("column-head moment must equal PL/4 regardless of h")
	}
}

func TestPortalUDL(t *testing.T) {
	if got := PortalUDL(4, 8); got != 32 {
		t.Errorf("M = %v, want 32", got)
	}
}

func TestPortalLateralLoad(t *testing.T) {
	h, m := PortalLateralLoad(10, 4)
	if h != 5 {
		t.Errorf("H = %v, want 5", h)
	}
	if m != 20 {
		t.Errorf("M = %v, want 20", m)
	}
}
