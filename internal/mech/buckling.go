package mech

// EndCondition identifies the support conditions of a compression member.
type EndCondition string

const (
	PinPin  EndCondition = "pin-pin"   // both ends pinned
	FixFix  EndCondition = "fix-fix"   // both ends fixed
	FixPin  EndCondition = "fix-pin"   // one end fixed, one pinned
	FixFree EndCondition = "fix-free"  // flagpole: fixed base, free top
)

// AllEndConditions returns the supported end conditions in display order.
func AllEndConditions() []EndCondition {
	return []EndCondition{PinPin, FixFix, FixPin, FixFree}
}

// EffectiveLengthFactor returns the tabulated effective length factor γ
// for an end condition. Unknown conditions fall back to the pinned-pinned
// baseline of 1.0.
func EffectiveLengthFactor(c EndCondition) float64 {
	switch c {
	case FixFix:
		return 0.5
	case FixPin:
		return 0.7
	case FixFree:
		return 2.0
	default:
		return 1.0
	}
}

// EffectiveLength returns the buckling length l_k = γ·L.
func EffectiveLength(c EndCondition, l float64) float64 {
	return EffectiveLengthFactor(c) * l
}

// LoadRatio returns the Euler buckling load of the member relative to the
// pinned-pinned baseline of the same physical length.
//
//	P/P_pin = 1/γ²
func LoadRatio(c EndCondition) float64 {
	g := EffectiveLengthFactor(c)
	return 1 / (g * g)
}

// EndConditionLabel returns a human-readable description.
func EndConditionLabel(c EndCondition) string {
	switch c {
	case PinPin:
		return "pinned at both ends"
	case FixFix:
		return "fixed at both ends"
	case FixPin:
		return "fixed at one end, pinned at the other"
	case FixFree:
		return "fixed at the base, free at the top"
	default:
		return string(c)
	}
}
