// Package problemgen generates multiple-choice structural-mechanics drill
// problems. Every generator draws its parameters from precomputed numeric
// pools (see pool.go) filtered so the derived quantities come out as exact
// integers or clean one-decimal values, computes the answer from the
// closed forms in internal/mech, and assembles three misconception-based
// distractors around it. Generation is pure modulo the injected random
// source and never returns an error.
package problemgen

import "github.com/rie622skt/InfiniteDrill/internal/mech"

// Category identifies a problem family. The dispatcher selects one per
// generation; each category has exactly one generator.
type Category string

const (
	CategorySimpleBeam      Category = "simple-beam"
	CategoryCantilever      Category = "cantilever"
	CategoryOverhang        Category = "overhang"
	CategoryTrussTriangle   Category = "truss-triangle"
	CategoryTrussZeroForce  Category = "truss-zero-force"
	CategoryTrussCantilever Category = "truss-cantilever"
	CategoryTrussPratt      Category = "truss-pratt"
	CategorySection         Category = "section"
	CategoryBending         Category = "bending"
	CategoryCombined        Category = "combined"
	CategoryShear           Category = "shear"
	CategoryBuckling        Category = "buckling"
	CategoryFrame           Category = "frame"
	CategoryDeflection      Category = "deflection"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategorySimpleBeam,
		CategoryCantilever,
		CategoryOverhang,
		CategoryTrussTriangle,
		CategoryTrussZeroForce,
		CategoryTrussCantilever,
		CategoryTrussPratt,
		CategorySection,
		CategoryBending,
		CategoryCombined,
		CategoryShear,
		CategoryBuckling,
		CategoryFrame,
		CategoryDeflection,
	}
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	for _, k := range AllCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategorySimpleBeam:
		return "Simple Beam"
	case CategoryCantilever:
		return "Cantilever"
	case CategoryOverhang:
		return "Overhang Beam"
	case CategoryTrussTriangle:
		return "Triangular Truss"
	case CategoryTrussZeroForce:
		return "Zero-Force Members"
	case CategoryTrussCantilever:
		return "Cantilever Truss"
	case CategoryTrussPratt:
		return "Pratt Truss"
	case CategorySection:
		return "Section Properties"
	case CategoryBending:
		return "Bending Stress"
	case CategoryCombined:
		return "Combined Stress"
	case CategoryShear:
		return "Shear Stress"
	case CategoryBuckling:
		return "Buckling"
	case CategoryFrame:
		return "Portal Frame"
	case CategoryDeflection:
		return "Deflection"
	default:
		return string(c)
	}
}

// Difficulty selects how hard the generated problem should be. Mixed
// resolves to a concrete tier per generation (30/50/20).
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Mixed        Difficulty = "mixed"
)

// Valid reports whether d names a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced, Mixed:
		return true
	}
	return false
}

// Target tags the quantity a problem asks for.
type Target string

const (
	TargetMmax      Target = "M_max"      // maximum bending moment (kN·m)
	TargetMx        Target = "M_x"        // moment at position x (kN·m)
	TargetQx        Target = "Q_x"        // shear at position x (kN)
	TargetVa        Target = "V_a"        // left support reaction (kN)
	TargetVb        Target = "V_b"        // right support reaction (kN)
	TargetMfix      Target = "M_fix"      // fixed-end moment (kN·m)
	TargetN         Target = "N"          // truss member axial force (kN)
	TargetZ         Target = "Z"          // section modulus (mm³)
	TargetI         Target = "I"          // moment of inertia (mm⁴)
	TargetA         Target = "A"          // section area (mm²)
	TargetXg        Target = "x_g"        // horizontal centroid (mm)
	TargetYg        Target = "y_g"        // vertical centroid (mm)
	TargetSigma     Target = "sigma"      // bending stress (N/mm²)
	TargetSigmaMax  Target = "sigma_max"  // combined peak stress (N/mm²)
	TargetTau       Target = "tau"        // shear stress (N/mm²)
	TargetEmax      Target = "e_max"      // no-tension eccentricity (mm)
	TargetLk        Target = "l_k"        // effective buckling length (m)
	TargetLoadRatio Target = "load_ratio" // buckling load ratio (dimensionless)
	TargetH         Target = "H"          // horizontal reaction (kN)
	TargetDelta     Target = "delta"      // deflection ratio (dimensionless)
)

// SectionShape steers which cross-section diagram a renderer draws.
type SectionShape string

const (
	ShapeRect   SectionShape = "rect"
	ShapeHollow SectionShape = "hollow-rect"
	ShapeL      SectionShape = "l-shape"
	ShapeT      SectionShape = "t-shape"
	ShapeH      SectionShape = "h-shape"
)

// Params carries every numeric input of a problem. Units ride on the
// field names by convention, exactly as the renderers expect them; unused
// fields stay zero and are omitted from JSON.
type Params struct {
	SpanM     float64 `json:"span_m,omitempty"`      // beam/frame span L
	DistAM    float64 `json:"dist_a_m,omitempty"`    // load position from left support
	DistBM    float64 `json:"dist_b_m,omitempty"`    // remaining distance L−a
	OverhangM float64 `json:"overhang_m,omitempty"`  // overhang length c
	PosXM     float64 `json:"pos_x_m,omitempty"`     // evaluation position x
	ColumnHM  float64 `json:"column_h_m,omitempty"`  // frame column height / column length
	LoadKN    float64 `json:"load_kn,omitempty"`     // concentrated load P
	UDLKNM    float64 `json:"udl_kn_m,omitempty"`    // distributed load w
	AxialKN   float64 `json:"axial_kn,omitempty"`    // axial force N
	ShearKN   float64 `json:"shear_kn,omitempty"`    // shear force Q
	MomentKNM float64 `json:"moment_knm,omitempty"`  // applied moment M
	EccMM     float64 `json:"ecc_mm,omitempty"`      // load eccentricity e
	WidthMM   float64 `json:"width_mm,omitempty"`    // section width b
	HeightMM  float64 `json:"height_mm,omitempty"`   // section depth h
	FlangeMM  float64 `json:"flange_mm,omitempty"`   // flange thickness tf
	WebMM     float64 `json:"web_mm,omitempty"`      // web thickness tw
	InnerWMM  float64 `json:"inner_w_mm,omitempty"`  // hollow section inner width
	InnerHMM  float64 `json:"inner_h_mm,omitempty"`  // hollow section inner depth
}

// Display carries the rendering hints a diagram collaborator consumes.
// The generation engine only fills them; it never interprets them.
type Display struct {
	Member  string            `json:"member,omitempty"`   // highlighted truss member
	Shape   SectionShape      `json:"shape,omitempty"`    // cross-section variant
	Support mech.EndCondition `json:"support,omitempty"`  // column end condition
	HideDim bool              `json:"hide_dim,omitempty"` // hide a dimension to force derivation
}

// Problem is the assembled output record handed to renderers.
type Problem struct {
	Category    Category   `json:"category"`
	Pattern     string     `json:"pattern,omitempty"` // sub-variant within the category
	Difficulty  Difficulty `json:"difficulty"`
	Target      Target     `json:"target"`
	Text        string     `json:"text"`
	Params      Params     `json:"params"`
	Answer      float64    `json:"answer"`
	Choices     []float64  `json:"choices"` // exactly 4, ascending, one equals Answer
	Explanation string     `json:"explanation"`
	Display     Display    `json:"display"`
}

// Numeric tolerances for choice comparison. Section and stress answers
// are exact to machine precision; beam and truss answers are expressed in
// one-decimal units.
const (
	TolExact   = 1e-6
	TolDecimal = 0.01
)

// Tolerance returns the comparison tolerance for this problem's choices.
func (p *Problem) Tolerance() float64 {
	switch p.Category {
	case CategorySection, CategoryBending, CategoryCombined, CategoryShear:
		return TolExact
	default:
		return TolDecimal
	}
}

// CorrectIndex returns the position of the correct answer within Choices,
// or -1 if it is somehow absent (must not happen for generated problems).
func (p *Problem) CorrectIndex() int {
	tol := p.Tolerance()
	for i, c := range p.Choices {
		if abs(c-p.Answer) <= tol {
			return i
		}
	}
	return -1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
