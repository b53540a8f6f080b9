package model

// LineRule describes how a LineSpacing value is interpreted.
type LineRule int

const (
	// RuleUnspecified means w:lineRule held an unrecognized value; the value
	// is a length.
	RuleUnspecified LineRule = iota
	// RuleMultiple means the value is a multiple of single spacing.
	RuleMultiple
	// RuleExact means the value is an exact line height.
	RuleExact
	// RuleAtLeast means the value is a minimum line height.
	RuleAtLeast
)

// ParseLineRule maps a WordprocessingML w:lineRule value to a LineRule.
// An absent lineRule means auto.
func ParseLineRule(val string) LineRule {
	switch val {
	case "auto", "":
		return RuleMultiple
	case "exact":
		return RuleExact
	case "atLeast":
		return RuleAtLeast
	default:
		return RuleUnspecified
	}
}

// LineSpacing is the line spacing of a paragraph.
type LineSpacing struct {
	Rule LineRule
	// Multiple is the spacing multiplier, meaningful when Rule is RuleMultiple.
	Multiple float64
	// Height is the line height, meaningful for every other rule.
	Height Length
}

// Value returns the numeric spacing value: the multiplier for RuleMultiple,
// otherwise the raw height in EMU.
func (s LineSpacing) Value() float64 {
	if s.Rule == RuleMultiple {
		return s.Multiple
	}
	return float64(s.Height)
}

// Exceeds reports whether the spacing value is greater than limit.
// Fixed heights are compared in EMU, so any positive fixed height exceeds a
// multiplier-sized limit.
func (s LineSpacing) Exceeds(limit float64) bool {
	return s.Value() > limit
}
