package docx

import (
	"strconv"
	"strings"

	"github.com/tsawler/revisor/model"
)

// universalUnits maps ST_UniversalMeasure suffixes to EMU per unit.
var universalUnits = map[string]float64{
	"mm": model.EMUPerCm / 10,
	"cm": model.EMUPerCm,
	"in": model.EMUPerInch,
	"pt": model.EMUPerPoint,
	"pc": model.EMUPerPoint * 12,
	"pi": model.EMUPerPoint * 12,
}

// parseUniversal parses a measure with a unit suffix such as "2.54cm".
func parseUniversal(s string) (model.Length, bool) {
	if len(s) < 3 {
		return 0, false
	}
	perUnit, ok := universalUnits[s[len(s)-2:]]
	if !ok {
		return 0, false
	}
	val, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return 0, false
	}
	return model.Length(val * perUnit), true
}

// parseTwips parses a twips measure (or a universal measure) to a Length.
// The second result is false when the value is empty or malformed.
func parseTwips(s string) (model.Length, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if l, ok := parseUniversal(s); ok {
		return l, true
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return model.Length(val * model.EMUPerTwip), true
}

// parseHalfPoints parses a size in half-points to a Length.
// Word uses half-points for font sizes (e.g., "24" = 12pt).
func parseHalfPoints(s string) (model.Length, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if l, ok := parseUniversal(s); ok {
		return l, true
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return model.Length(val * model.EMUPerPoint / 2), true
}

// singleLine is the height of a single-spaced line (12pt) used as the
// divisor for "auto" line spacing values.
const singleLine = 12 * model.EMUPerPoint

// parseLineSpacing interprets w:spacing line and lineRule attributes.
// It returns nil when no line value is present.
func parseLineSpacing(sp spacingXML) *model.LineSpacing {
	height, ok := parseTwips(sp.Line)
	if !ok {
		return nil
	}
	rule := model.ParseLineRule(sp.LineRule)
	ls := &model.LineSpacing{Rule: rule, Height: height}
	if rule == model.RuleMultiple {
		ls.Multiple = float64(height) / singleLine
		ls.Height = 0
	}
	return ls
}

// parseLeftIndent returns the left indent, preferring w:left over w:start.
func parseLeftIndent(ind indentXML) *model.Length {
	val := ind.Left
	if val == "" {
		val = ind.Start
	}
	if l, ok := parseTwips(val); ok {
		return l.Ptr()
	}
	return nil
}

// parseSection converts a <w:sectPr> to a model.Section.
// Missing margin attributes read as zero.
func parseSection(sp *sectPrXML) model.Section {
	var sec model.Section
	if sp == nil {
		return sec
	}
	sec.Top, _ = parseTwips(sp.PgMar.Top)
	sec.Bottom, _ = parseTwips(sp.PgMar.Bottom)
	sec.Left, _ = parseTwips(sp.PgMar.Left)
	sec.Right, _ = parseTwips(sp.PgMar.Right)
	return sec
}
