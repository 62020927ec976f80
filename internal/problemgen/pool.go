package problemgen

import "sync"

// PoolRegistry holds the precomputed parameter tuples every generator
// samples from. Each pool is the subset of a small fixed candidate grid
// for which every derived quantity the evaluator will compute is an exact
// integer (or exact one-decimal) value. Exactness is established with
// modular arithmetic on integers, never by rounding floats.
//
// Pools build lazily on first access and are immutable afterwards. If a
// filter ever empties a pool (a configuration mistake, not a runtime
// condition), the registry substitutes a single known-good fallback tuple
// so generation can never fail.
type PoolRegistry struct {
	once sync.Once

	rect       []RectTuple
	bending    []BendingTuple
	beam       []BeamTuple
	udl        []UDLTuple
	cantUDL    []UDLTuple
	overhang   []OverhangTuple
	trussLoads []int
	hollow     []HollowTuple
	lShape     []LTuple
	tShape     []TTuple
	hShape     []HTuple
	combined   []CombinedTuple
	eccentric  []EccentricTuple
	shearRect  []ShearRectTuple
	shearWeb   []ShearWebTuple
	frame      []FrameTuple
	frameUDL   []UDLTuple
	spans      []int
}

// RectTuple is a rectangular section whose Z and I are both integers.
type RectTuple struct {
	B, H int // mm
}

// BendingTuple pairs a rectangular section with an applied moment such
// that σ = M/Z is an exact integer stress.
type BendingTuple struct {
	B, H  int // mm
	M     int // kN·m
	Sigma int // N/mm², derived, stored for convenience
}

// BeamTuple is a simple-beam loading whose reactions and maximum moment
// are all integers.
type BeamTuple struct {
	P, L, A int // kN, m, m
}

// UDLTuple is a distributed loading whose derived reactions and moments
// are integers for the owning pattern.
type UDLTuple struct {
	W, L int // kN/m, m
}

// OverhangTuple is an overhang loading whose reactions are integers.
type OverhangTuple struct {
	P, L, C int // kN, m (main span), m (overhang)
}

// HollowTuple is a concentric hollow rectangle with integer I and Z.
type HollowTuple struct {
	BO, HO, BI, HI int // mm
}

// LTuple is an angle section with integer centroid and integer Iy.
type LTuple struct {
	B, H, T int // mm
}

// TTuple is a tee section with integer centroid and integer Ix.
type TTuple struct {
	B, H, TF, TW int // mm
}

// HTuple is a wide-flange section with integer I and Z.
type HTuple struct {
	B, H, TF, TW int // mm
}

// CombinedTuple is a section plus axial force and moment whose two face
// stresses are both clean.
type CombinedTuple struct {
	B, H int     // mm
	N    int     // kN
	M    float64 // kN·m, one-decimal clean
}

// EccentricTuple is a short rectangular column under an eccentric
// compressive load with clean edge stresses.
type EccentricTuple struct {
	B, H int // mm
	N    int // kN
	E    int // mm
}

// ShearRectTuple is a rectangular section plus shear force with integer
// τ_max.
type ShearRectTuple struct {
	B, H, Q int // mm, mm, kN
}

// ShearWebTuple is an H section plus shear force with integer web stress.
type ShearWebTuple struct {
	HTuple
	Q int // kN
}

// FrameTuple is a portal frame loading whose horizontal reaction and
// column-head moment are integers.
type FrameTuple struct {
	P, L, HCol int // kN, m, m
}

// NewPoolRegistry returns an empty registry; pools populate on first use.
func NewPoolRegistry() *PoolRegistry {
	return &PoolRegistry{}
}

// Candidate grids. Small on purpose: pool construction is a one-time
// O(product) sweep over these lists.
var (
	candWidths  = []int{60, 80, 90, 100, 120, 150, 180, 200, 240, 300}
	candHeights = []int{80, 90, 100, 120, 150, 180, 200, 240, 300, 360}
	candMoments = []int{4, 5, 6, 8, 9, 10, 12, 15, 16, 18, 20, 24, 25, 30, 32, 36, 40, 45, 48, 50, 60, 72, 80, 90, 96, 100}
	candLoads   = []int{8, 10, 12, 15, 16, 20, 24, 30, 32, 36, 40, 45, 48, 50, 60, 64, 72, 80}
	candSpans   = []int{4, 5, 6, 8, 9, 10, 12}
	candUDLs    = []int{2, 3, 4, 5, 6, 8, 10, 12}
	candTruss   = []int{12, 24, 36, 48, 60, 72, 84, 96}
	candWalls   = []int{10, 20, 25, 30}
	candThick   = []int{10, 20, 30}
	candColumns = []int{3, 4, 5, 6}
	candAxialS  = []int{5, 10, 15, 20, 25, 30}  // target N/A stresses
	candBendS   = []int{5, 10, 15, 20, 30, 40}  // target M/Z stresses
	candTaus    = []int{1, 2, 3, 4, 5, 6, 8, 10, 12}
)

// Fallback tuples, substituted when a filter empties its pool. Each is a
// hand-verified member of the intended set.
var (
	fallbackRect      = RectTuple{B: 120, H: 180}
	fallbackBending   = BendingTuple{B: 150, H: 200, M: 10, Sigma: 10}
	fallbackBeam      = BeamTuple{P: 40, L: 8, A: 2}
	fallbackUDL       = UDLTuple{W: 4, L: 8}
	fallbackCantUDL   = UDLTuple{W: 4, L: 4}
	fallbackOverhang  = OverhangTuple{P: 12, L: 6, C: 2}
	fallbackHollow    = HollowTuple{BO: 120, HO: 200, BI: 100, HI: 180}
	fallbackL         = LTuple{B: 80, H: 90, T: 20}
	fallbackT         = TTuple{B: 100, H: 180, TF: 30, TW: 20}
	fallbackH         = HTuple{B: 100, H: 150, TF: 15, TW: 10}
	fallbackCombined  = CombinedTuple{B: 150, H: 200, N: 150, M: 5}
	fallbackEccentric = EccentricTuple{B: 120, H: 180, N: 216, E: 30}
	fallbackShearRect = ShearRectTuple{B: 120, H: 180, Q: 72}
	fallbackShearWeb  = ShearWebTuple{HTuple: fallbackH, Q: 12}
	fallbackFrame     = FrameTuple{P: 24, L: 6, HCol: 4}
)

func (r *PoolRegistry) build() {
	r.once.Do(func() {
		r.rect = nonEmpty(buildRectPool(), fallbackRect)
		r.bending = nonEmpty(buildBendingPool(), fallbackBending)
		r.beam = nonEmpty(buildBeamPool(), fallbackBeam)
		r.udl = nonEmpty(buildUDLPool(), fallbackUDL)
		r.cantUDL = nonEmpty(buildCantileverUDLPool(), fallbackCantUDL)
		r.overhang = nonEmpty(buildOverhangPool(), fallbackOverhang)
		r.trussLoads = nonEmpty(append([]int(nil), candTruss...), 12)
		r.hollow = nonEmpty(buildHollowPool(), fallbackHollow)
		r.lShape = nonEmpty(buildLPool(), fallbackL)
		r.tShape = nonEmpty(buildTPool(), fallbackT)
		r.hShape = nonEmpty(buildHPool(), fallbackH)
		r.combined = nonEmpty(buildCombinedPool(), fallbackCombined)
		r.eccentric = nonEmpty(buildEccentricPool(), fallbackEccentric)
		r.shearRect = nonEmpty(buildShearRectPool(), fallbackShearRect)
		r.shearWeb = nonEmpty(buildShearWebPool(), fallbackShearWeb)
		r.frame = nonEmpty(buildFramePool(), fallbackFrame)
		r.frameUDL = nonEmpty(buildUDLPool(), fallbackUDL)
		r.spans = append([]int(nil), candSpans...)
	})
}

// nonEmpty returns pool, or a single-element fallback slice if the
// filters rejected everything. Generation must never crash the caller,
// so an empty pool is recovered locally and silently.
func nonEmpty[T any](pool []T, fallback T) []T {
	if len(pool) == 0 {
		return []T{fallback}
	}
	return pool
}

// buildRectPool keeps b×h rectangles where both Z = bh²/6 and I = bh³/12
// are integers.
func buildRectPool() []RectTuple {
	var out []RectTuple
	for _, b := range candWidths {
		for _, h := range candHeights {
			if h < b {
				continue
			}
			if (b*h*h)%6 != 0 {
				continue
			}
			if (b*h*h*h)%12 != 0 {
				continue
			}
			out = append(out, RectTuple{B: b, H: h})
		}
	}
	return out
}

// buildBendingPool keeps (section, moment) pairs where σ = M·10⁶/Z is an
// exact integer in a plausible stress range.
func buildBendingPool() []BendingTuple {
	var out []BendingTuple
	for _, rt := range buildRectPool() {
		z := rt.B * rt.H * rt.H / 6
		for _, m := range candMoments {
			num := m * 1_000_000
			if num%z != 0 {
				continue
			}
			sigma := num / z
			if sigma < 2 || sigma > 200 {
				continue
			}
			out = append(out, BendingTuple{B: rt.B, H: rt.H, M: m, Sigma: sigma})
		}
	}
	return out
}

// buildBeamPool keeps (P, L, a) triples where Va = Pb/L, Vb = Pa/L and
// Mmax = Pab/L are all integers.
func buildBeamPool() []BeamTuple {
	var out []BeamTuple
	for _, p := range candLoads {
		for _, l := range candSpans {
			for a := 1; a < l; a++ {
				b := l - a
				if (p*a)%l != 0 || (p*b)%l != 0 || (p*a*b)%l != 0 {
					continue
				}
				out = append(out, BeamTuple{P: p, L: l, A: a})
			}
		}
	}
	return out
}

// buildUDLPool keeps (w, L) pairs where V = wL/2 and Mmax = wL²/8 are
// integers.
func buildUDLPool() []UDLTuple {
	var out []UDLTuple
	for _, w := range candUDLs {
		for _, l := range candSpans {
			if (w*l)%2 != 0 || (w*l*l)%8 != 0 {
				continue
			}
			out = append(out, UDLTuple{W: w, L: l})
		}
	}
	return out
}

// buildCantileverUDLPool keeps (w, L) pairs where M = wL²/2 is an
// integer (V = wL always is).
func buildCantileverUDLPool() []UDLTuple {
	var out []UDLTuple
	for _, w := range candUDLs {
		for _, l := range []int{2, 3, 4, 5, 6} {
			if (w*l*l)%2 != 0 {
				continue
			}
			out = append(out, UDLTuple{W: w, L: l})
		}
	}
	return out
}

// buildOverhangPool keeps (P, L, c) triples where Va = Pc/L (and with it
// Vb = P + Pc/L) is an integer.
func buildOverhangPool() []OverhangTuple {
	var out []OverhangTuple
	for _, p := range candLoads {
		for _, l := range []int{4, 5, 6, 8} {
			for _, c := range []int{1, 2, 3} {
				if (p*c)%l != 0 {
					continue
				}
				out = append(out, OverhangTuple{P: p, L: l, C: c})
			}
		}
	}
	return out
}

// buildHollowPool keeps concentric hollow rectangles with integer I and
// Z. Wall thickness is uniform.
func buildHollowPool() []HollowTuple {
	var out []HollowTuple
	for _, bo := range candWidths {
		for _, ho := range candHeights {
			if ho < bo || ho%2 != 0 {
				continue
			}
			for _, t := range candWalls {
				bi, hi := bo-2*t, ho-2*t
				if bi <= 0 || hi <= 0 {
					continue
				}
				num := bo*ho*ho*ho - bi*hi*hi*hi
				if num%12 != 0 {
					continue
				}
				i := num / 12
				if (2*i)%ho != 0 {
					continue
				}
				out = append(out, HollowTuple{BO: bo, HO: ho, BI: bi, HI: hi})
			}
		}
	}
	return out
}

// buildLPool keeps angle sections whose centroid x_g and Iy are both
// integers, so the composite-section derivation has no rounded step.
func buildLPool() []LTuple {
	var out []LTuple
	dims := []int{60, 80, 90, 100, 120, 150}
	for _, b := range dims {
		for _, h := range dims {
			for _, t := range candThick {
				if t%2 != 0 || t >= b || t >= h {
					continue
				}
				a1, a2 := t*h, (b-t)*t
				// x1 = t/2, x2 = (t+b)/2; doubled numerator keeps integers.
				num := a1*t + a2*(t+b)
				den := 2 * (a1 + a2)
				if num%den != 0 {
					continue
				}
				xg := num / den
				if !lShapeIyIntegral(b, h, t, xg) {
					continue
				}
				out = append(out, LTuple{B: b, H: h, T: t})
			}
		}
	}
	return out
}

func lShapeIyIntegral(b, h, t, xg int) bool {
	if (h*t*t*t)%12 != 0 || (t*(b-t)*(b-t)*(b-t))%12 != 0 {
		return false
	}
	// Parallel-axis distances must be integral; x1 = t/2 needs t even
	// (guaranteed by the caller), x2 = (t+b)/2 needs t+b even.
	return (t+b)%2 == 0
}

// buildTPool keeps tee sections with integer y_g and integer Ix.
func buildTPool() []TTuple {
	var out []TTuple
	for _, b := range []int{80, 100, 120, 150, 180, 200} {
		for _, h := range []int{100, 120, 150, 180, 200, 240} {
			for _, tf := range []int{20, 30, 40} {
				for _, tw := range []int{20, 30, 40} {
					hw := h - tf
					if hw <= 0 || tf%2 != 0 || hw%2 != 0 {
						continue
					}
					a1, a2 := b*tf, tw*hw
					num := a1*(2*h-tf) + a2*hw
					den := 2 * (a1 + a2)
					if num%den != 0 {
						continue
					}
					if (b*tf*tf*tf)%12 != 0 || (tw*hw*hw*hw)%12 != 0 {
						continue
					}
					out = append(out, TTuple{B: b, H: h, TF: tf, TW: tw})
				}
			}
		}
	}
	return out
}

// buildHPool keeps wide-flange sections with integer I and Z.
func buildHPool() []HTuple {
	var out []HTuple
	for _, b := range []int{100, 120, 150, 200} {
		for _, h := range []int{150, 200, 250, 300, 400} {
			for _, tf := range []int{10, 15, 20, 25} {
				for _, tw := range []int{8, 10, 12, 15} {
					hw := h - 2*tf
					if hw <= 0 || tw >= b {
						continue
					}
					num := b*h*h*h - (b-tw)*hw*hw*hw
					if num%12 != 0 {
						continue
					}
					i := num / 12
					if (2*i)%h != 0 {
						continue
					}
					out = append(out, HTuple{B: b, H: h, TF: tf, TW: tw})
				}
			}
		}
	}
	return out
}

// buildCombinedPool keeps (section, N, M) triples where both N/A and M/Z
// are exact, so the two face stresses σ = N/A ± M/Z are clean.
func buildCombinedPool() []CombinedTuple {
	var out []CombinedTuple
	for _, rt := range buildRectPool() {
		a := rt.B * rt.H
		z := rt.B * rt.H * rt.H / 6
		for _, sa := range candAxialS {
			// N = σa·A/1000 must be an integer load.
			if (sa*a)%1000 != 0 {
				continue
			}
			n := sa * a / 1000
			for _, sb := range candBendS {
				// M = σb·Z/10⁶ must be one-decimal clean.
				if (sb*z)%100_000 != 0 {
					continue
				}
				m := float64(sb*z/100_000) / 10
				out = append(out, CombinedTuple{B: rt.B, H: rt.H, N: n, M: m})
			}
		}
	}
	return out
}

// buildEccentricPool keeps short-column tuples where e is an integer
// fraction of the depth and both edge stresses are clean one-decimals.
func buildEccentricPool() []EccentricTuple {
	var out []EccentricTuple
	for _, rt := range buildRectPool() {
		if rt.H%12 != 0 {
			continue
		}
		a := rt.B * rt.H
		for _, sa := range candAxialS {
			if (sa*a)%1000 != 0 {
				continue
			}
			n := sa * a / 1000
			// e ∈ {h/12, h/6, h/4} gives 6e/h ∈ {0.5, 1, 1.5}, so both
			// σ = σa·(1 ± 6e/h) faces are one-decimal clean for any
			// integer σa; h%12 == 0 keeps e itself integral.
			for _, e := range []int{rt.H / 12, rt.H / 6, rt.H / 4} {
				out = append(out, EccentricTuple{B: rt.B, H: rt.H, N: n, E: e})
			}
		}
	}
	return out
}

// buildShearRectPool keeps (section, Q) pairs with integer τ_max.
func buildShearRectPool() []ShearRectTuple {
	var out []ShearRectTuple
	for _, rt := range buildRectPool() {
		a := rt.B * rt.H
		for _, tau := range candTaus {
			// Q = τ·A/1500 must be an integer load.
			if (tau*a)%1500 != 0 {
				continue
			}
			q := tau * a / 1500
			if q < 5 || q > 200 {
				continue
			}
			out = append(out, ShearRectTuple{B: rt.B, H: rt.H, Q: q})
		}
	}
	return out
}

// buildShearWebPool keeps (H section, Q) pairs with integer web stress.
func buildShearWebPool() []ShearWebTuple {
	var out []ShearWebTuple
	for _, ht := range buildHPool() {
		aw := ht.TW * (ht.H - 2*ht.TF)
		for _, tau := range candTaus {
			if (tau*aw)%1000 != 0 {
				continue
			}
			q := tau * aw / 1000
			if q < 5 || q > 300 {
				continue
			}
			out = append(out, ShearWebTuple{HTuple: ht, Q: q})
		}
	}
	return out
}

// buildFramePool keeps (P, L, h) portal triples where the horizontal
// reaction H = PL/(4h) is an integer; the column-head moment M = H·h
// follows exactly.
func buildFramePool() []FrameTuple {
	var out []FrameTuple
	for _, p := range candLoads {
		for _, l := range candSpans {
			for _, h := range candColumns {
				if (p*l)%(4*h) != 0 {
					continue
				}
				out = append(out, FrameTuple{P: p, L: l, HCol: h})
			}
		}
	}
	return out
}

// Accessors. Each triggers the lazy one-time build.

func (r *PoolRegistry) Rect() []RectTuple           { r.build(); return r.rect }
func (r *PoolRegistry) Bending() []BendingTuple     { r.build(); return r.bending }
func (r *PoolRegistry) Beam() []BeamTuple           { r.build(); return r.beam }
func (r *PoolRegistry) UDL() []UDLTuple             { r.build(); return r.udl }
func (r *PoolRegistry) CantileverUDL() []UDLTuple   { r.build(); return r.cantUDL }
func (r *PoolRegistry) Overhang() []OverhangTuple   { r.build(); return r.overhang }
func (r *PoolRegistry) TrussLoads() []int           { r.build(); return r.trussLoads }
func (r *PoolRegistry) Hollow() []HollowTuple       { r.build(); return r.hollow }
func (r *PoolRegistry) LShape() []LTuple            { r.build(); return r.lShape }
func (r *PoolRegistry) TShape() []TTuple            { r.build(); return r.tShape }
func (r *PoolRegistry) HShape() []HTuple            { r.build(); return r.hShape }
func (r *PoolRegistry) Combined() []CombinedTuple   { r.build(); return r.combined }
func (r *PoolRegistry) Eccentric() []EccentricTuple { r.build(); return r.eccentric }
func (r *PoolRegistry) ShearRect() []ShearRectTuple { r.build(); return r.shearRect }
func (r *PoolRegistry) ShearWeb() []ShearWebTuple   { r.build(); return r.shearWeb }
func (r *PoolRegistry) Frame() []FrameTuple         { r.build(); return r.frame }
func (r *PoolRegistry) FrameUDL() []UDLTuple        { r.build(); return r.frameUDL }
func (r *PoolRegistry) Spans() []int                { r.build(); return r.spans }
