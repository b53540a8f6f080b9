package odt

import (
	"strconv"
	"strings"

	"github.com/tsawler/revisor/model"
)

// lengthUnits maps ODF length units to EMU per unit.
var lengthUnits = map[string]float64{
	"cm":   model.EMUPerCm,
	"mm":   model.EMUPerCm / 10,
	"in":   model.EMUPerInch,
	"inch": model.EMUPerInch,
	"pt":   model.EMUPerPoint,
	"pc":   model.EMUPerPoint * 12,
	"px":   model.EMUPerInch / 96,
}

// parseLength parses an ODF length such as "2.5cm" or "12pt".
// The second result is false for empty, relative or malformed values.
func parseLength(s string) (model.Length, bool) {
	s = strings.TrimSpace(s)

	// Find where digits end and unit begins
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
			break
		}
	}
	if i == 0 {
		return 0, false
	}

	perUnit, ok := lengthUnits[strings.ToLower(s[i:])]
	if !ok {
		return 0, false
	}
	val, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return model.Length(val * perUnit), true
}

// parsePercent parses a percentage such as "150%" to a ratio (1.5).
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	val, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return val / 100, true
}

// parseAlignment maps fo:text-align to an Alignment.
// start and end are taken as left-to-right.
func parseAlignment(s string) model.Alignment {
	switch s {
	case "start", "left":
		return model.AlignLeft
	case "end", "right":
		return model.AlignRight
	case "center":
		return model.AlignCenter
	case "justify":
		return model.AlignJustified
	default:
		return model.AlignUnset
	}
}

// parseLineSpacing interprets fo:line-height and style:line-height-at-least.
// Proportional heights become multiples, absolute heights are exact, and
// "normal" is single spacing. It returns nil when neither is set.
func parseLineSpacing(ppr *paragraphPropsXML) *model.LineSpacing {
	if ppr == nil {
		return nil
	}
	if ppr.LineHeight == "normal" {
		return &model.LineSpacing{Rule: model.RuleMultiple, Multiple: 1}
	}
	if ratio, ok := parsePercent(ppr.LineHeight); ok {
		return &model.LineSpacing{Rule: model.RuleMultiple, Multiple: ratio}
	}
	if h, ok := parseLength(ppr.LineHeight); ok {
		return &model.LineSpacing{Rule: model.RuleExact, Height: h}
	}
	if h, ok := parseLength(ppr.LineHeightAtLeast); ok {
		return &model.LineSpacing{Rule: model.RuleAtLeast, Height: h}
	}
	return nil
}

// parseFontSize returns an absolute font size. Relative sizes ("120%")
// are left unset.
func parseFontSize(s string) *model.Length {
	if size, ok := parseLength(s); ok && size > 0 {
		return size.Ptr()
	}
	return nil
}

// parseSection converts page layout properties to a Section. Side margins
// fall back to fo:margin; missing values read as zero.
func parseSection(props pagePropsXML) model.Section {
	margin := func(side string) model.Length {
		if side == "" {
			side = props.Margin
		}
		l, _ := parseLength(side)
		return l
	}
	return model.Section{
		Top:    margin(props.MarginTop),
		Bottom: margin(props.MarginBottom),
		Left:   margin(props.MarginLeft),
		Right:  margin(props.MarginRight),
	}
}

// cleanFontFamily removes quotes from font family names and keeps the first
// family of a list.
func cleanFontFamily(family string) string {
	if i := strings.IndexByte(family, ','); i >= 0 {
		family = family[:i]
	}
	family = strings.TrimSpace(family)
	family = strings.Trim(family, "'\"")
	return family
}
