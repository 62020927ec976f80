package mech

import "testing"

func TestDeflectionCoefficient(t *testing.T) {
	if got := DeflectionCoefficient(false); got != 48 {
		t.Errorf("simple k = %v, want 48", got)
	}
	if got := DeflectionCoefficient(true); got != 3 {
		t.Errorf("cantilever k = %v, want 3", got)
	}
}

func TestDeflectionRatio(t *testing.T) {
	// Doubling the span multiplies δ by 8.
	if got := DeflectionRatio(1, 2, 1); got != 8 {
		t.Errorf("span ratio 2 → %v, want 8", got)
	}
	// Doubling EI halves δ.
	if got := DeflectionRatio(1, 1, 2); got != 0.5 {
		t.Errorf("stiffness ratio 2 → %v, want 0.5", got)
	}
	// Load scales linearly.
	if got := DeflectionRatio(3, 1, 1); got != 3 {
		t.Errorf("load ratio 3 → %v, want 3", got)
	}
}

func TestCantileverToSimpleRatio(t *testing.T) {
	if got := CantileverToSimpleRatio(); got != 16 {
		t.Errorf("ratio = %v, want 16", got)
	}
}
