package problemgen

import (
	"math"
	"testing"

	"github.com/rie622skt/InfiniteDrill/internal/mech"
	"github.com/stretchr/testify/require"
)

func isInteger(v float64) bool {
	return v == math.Trunc(v)
}

func TestRectPoolExact(t *testing.T) {
	r := NewPoolRegistry()
	pool := r.Rect()
	require.NotEmpty(t, pool)
	for _, tu := range pool {
		b, h := float64(tu.B), float64(tu.H)
		require.True(t, isInteger(mech.RectZ(b, h)), "Z(%d,%d) not integral", tu.B, tu.H)
		require.True(t, isInteger(mech.RectI(b, h)), "I(%d,%d) not integral", tu.B, tu.H)
		require.GreaterOrEqual(t, tu.H, tu.B)
	}
}

func TestRectPoolContainsReferenceSection(t *testing.T) {
	r := NewPoolRegistry()
	require.Contains(t, r.Rect(), RectTuple{B: 120, H: 180})
}

func TestBendingPoolExact(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.Bending() {
		z := mech.RectZ(float64(tu.B), float64(tu.H))
		sigma := mech.BendingStress(float64(tu.M), z)
		require.True(t, isInteger(sigma), "sigma for %+v not integral", tu)
		require.InDelta(t, float64(tu.Sigma), sigma, 1e-9)
		require.GreaterOrEqual(t, tu.Sigma, 2)
		require.LessOrEqual(t, tu.Sigma, 200)
	}
}

func TestBeamPoolExact(t *testing.T) {
	r := NewPoolRegistry()
	pool := r.Beam()
	require.Contains(t, pool, BeamTuple{P: 40, L: 8, A: 2})
	for _, tu := range pool {
		va, vb, mmax := mech.SimpleBeamConcentrated(float64(tu.P), float64(tu.L), float64(tu.A))
		require.True(t, isInteger(va), "Va for %+v", tu)
		require.True(t, isInteger(vb), "Vb for %+v", tu)
		require.True(t, isInteger(mmax), "Mmax for %+v", tu)
		require.Greater(t, tu.A, 0)
		require.Less(t, tu.A, tu.L)
	}
}

func TestUDLPoolExact(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.UDL() {
		v, mmax := mech.SimpleBeamUDL(float64(tu.W), float64(tu.L))
		require.True(t, isInteger(v), "V for %+v", tu)
		require.True(t, isInteger(mmax), "Mmax for %+v", tu)
	}
	for _, tu := range r.CantileverUDL() {
		m, v := mech.CantileverUDL(float64(tu.W), float64(tu.L))
		require.True(t, isInteger(m), "M for %+v", tu)
		require.True(t, isInteger(v), "V for %+v", tu)
	}
}

func TestOverhangPoolExact(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.Overhang() {
		va, vb, mb := mech.OverhangLoadOnOverhang(float64(tu.P), float64(tu.L), float64(tu.C))
		require.True(t, isInteger(va), "Va for %+v", tu)
		require.True(t, isInteger(vb), "Vb for %+v", tu)
		require.True(t, isInteger(mb), "Mb for %+v", tu)
	}
}

func TestTrussLoadsDivisible(t *testing.T) {
	r := NewPoolRegistry()
	loads := r.TrussLoads()
	require.NotEmpty(t, loads)
	// Multiples of 12 keep P/2, P/3, 5P/6, 4P/3 and 5P/3 all integral.
	for _, p := range loads {
		require.Zero(t, p%12, "load %d", p)
	}
}

func TestHollowPoolExact(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.Hollow() {
		i := mech.HollowRectI(float64(tu.BO), float64(tu.HO), float64(tu.BI), float64(tu.HI))
		z := mech.HollowRectZ(float64(tu.BO), float64(tu.HO), float64(tu.BI), float64(tu.HI))
		require.True(t, isInteger(i), "I for %+v", tu)
		require.True(t, isInteger(z), "Z for %+v", tu)
		require.Less(t, tu.BI, tu.BO)
		require.Less(t, tu.HI, tu.HO)
	}
}

func TestCompositePoolsExact(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.LShape() {
		s := mech.LShape{B: float64(tu.B), H: float64(tu.H), T: float64(tu.T)}
		require.True(t, isInteger(s.CentroidX()), "xg for %+v", tu)
		require.True(t, isInteger(s.Iy()), "Iy for %+v", tu)
	}
	for _, tu := range r.TShape() {
		s := mech.TShape{B: float64(tu.B), H: float64(tu.H), TF: float64(tu.TF), TW: float64(tu.TW)}
		require.True(t, isInteger(s.CentroidY()), "yg for %+v", tu)
		require.True(t, isInteger(s.Ix()), "Ix for %+v", tu)
	}
	for _, tu := range r.HShape() {
		s := mech.HShape{B: float64(tu.B), H: float64(tu.H), TF: float64(tu.TF), TW: float64(tu.TW)}
		require.True(t, isInteger(s.Ix()), "Ix for %+v", tu)
		require.True(t, isInteger(s.Zx()), "Zx for %+v", tu)
	}
}

func TestCombinedPoolClean(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.Combined() {
		a := mech.RectArea(float64(tu.B), float64(tu.H))
		z := mech.RectZ(float64(tu.B), float64(tu.H))
		smax, smin := mech.CombinedStress(float64(tu.N), a, tu.M, z)
		// Both faces must land on one decimal exactly.
		require.InDelta(t, math.Round(smax*10)/10, smax, 1e-9, "smax for %+v", tu)
		require.InDelta(t, math.Round(smin*10)/10, smin, 1e-9, "smin for %+v", tu)
	}
}

func TestEccentricPoolClean(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.Eccentric() {
		a := mech.RectArea(float64(tu.B), float64(tu.H))
		z := mech.RectZ(float64(tu.B), float64(tu.H))
		smax, smin := mech.EccentricStress(float64(tu.N), a, float64(tu.E), z)
		require.InDelta(t, math.Round(smax*10)/10, smax, 1e-9, "smax for %+v", tu)
		require.InDelta(t, math.Round(smin*10)/10, smin, 1e-9, "smin for %+v", tu)
	}
}

func TestShearPoolsExact(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.ShearRect() {
		a := mech.RectArea(float64(tu.B), float64(tu.H))
		require.True(t, isInteger(mech.ShearMaxRect(float64(tu.Q), a)), "tau for %+v", tu)
	}
	for _, tu := range r.ShearWeb() {
		hw := float64(tu.H - 2*tu.TF)
		require.True(t, isInteger(mech.ShearWebH(float64(tu.Q), float64(tu.TW), hw)), "tau for %+v", tu)
	}
}

func TestFramePoolExact(t *testing.T) {
	r := NewPoolRegistry()
	for _, tu := range r.Frame() {
		h, m := mech.PortalCentralLoad(float64(tu.P), float64(tu.L), float64(tu.HCol))
		require.True(t, isInteger(h), "H for %+v", tu)
		require.True(t, isInteger(m), "M for %+v", tu)
	}
}

func TestPoolsBuildOnce(t *testing.T) {
	r := NewPoolRegistry()
	first := r.Beam()
	second := r.Beam()
	require.Equal(t, len(first), len(second))
	// Same backing array: the build must not rerun.
	require.Equal(t, &first[0], &second[0])
}

// Fallbacks substitute for an emptied pool, so each must itself satisfy
// the pool's exactness filter. Membership in the built pool implies that
// and keeps the fallbacks honest against filter changes.
func TestFallbacksArePoolMembers(t *testing.T) {
	r := NewPoolRegistry()
	require.Contains(t, r.Rect(), fallbackRect)
	require.Contains(t, r.Bending(), fallbackBending)
	require.Contains(t, r.Beam(), fallbackBeam)
	require.Contains(t, r.UDL(), fallbackUDL)
	require.Contains(t, r.CantileverUDL(), fallbackCantUDL)
	require.Contains(t, r.Overhang(), fallbackOverhang)
	require.Contains(t, r.TrussLoads(), 12)
	require.Contains(t, r.Hollow(), fallbackHollow)
	require.Contains(t, r.LShape(), fallbackL)
	require.Contains(t, r.TShape(), fallbackT)
	require.Contains(t, r.HShape(), fallbackH)
	require.Contains(t, r.Combined(), fallbackCombined)
	require.Contains(t, r.Eccentric(), fallbackEccentric)
	require.Contains(t, r.ShearRect(), fallbackShearRect)
	require.Contains(t, r.ShearWeb(), fallbackShearWeb)
	require.Contains(t, r.Frame(), fallbackFrame)
	require.Contains(t, r.FrameUDL(), fallbackUDL)
}

func TestNonEmptyFallback(t *testing.T) {
	got := nonEmpty(nil, fallbackBeam)
	require.Equal(t, []BeamTuple{fallbackBeam}, got)

	kept := nonEmpty([]int{1, 2}, 9)
	require.Equal(t, []int{1, 2}, kept)
}
