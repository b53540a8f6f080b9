package analysis

import "github.com/tsawler/revisor/model"

// Alignment labels used in the report.
const (
	LabelLeft      = "Left"
	LabelRight     = "Right"
	LabelCenter    = "Center"
	LabelJustified = "Justified"
	// LabelUnknown has a report section of its own, but Classify never
	// returns it: unset and unrecognized alignments fall back to LabelLeft.
	LabelUnknown = "Unknown"
)

// Classify maps a paragraph alignment to its report label.
// Every value other than right, center and justified is reported as Left.
func Classify(a model.Alignment) string {
	switch a {
	case model.AlignLeft:
		return LabelLeft
	case model.AlignRight:
		return LabelRight
	case model.AlignCenter:
		return LabelCenter
	case model.AlignJustified:
		return LabelJustified
	default:
		return LabelLeft
	}
}
