package model

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	// AlignUnset means the paragraph carries no alignment of its own.
	AlignUnset Alignment = iota
	// AlignLeft aligns text to the left (or start) margin.
	AlignLeft
	// AlignCenter centers text between the margins.
	AlignCenter
	// AlignRight aligns text to the right (or end) margin.
	AlignRight
	// AlignJustified stretches lines to both margins.
	AlignJustified
	// AlignDistributed covers distributed and kashida justification variants.
	AlignDistributed
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustified:
		return "justified"
	case AlignDistributed:
		return "distributed"
	default:
		return "unset"
	}
}

// ParseAlignment maps a WordprocessingML w:jc value to an Alignment.
// Unrecognized and empty values map to AlignUnset.
func ParseAlignment(val string) Alignment {
	switch val {
	case "left", "start":
		return AlignLeft
	case "center":
		return AlignCenter
	case "right", "end":
		return AlignRight
	case "both":
		return AlignJustified
	case "distribute", "mediumKashida", "highKashida", "lowKashida", "thaiDistribute":
		return AlignDistributed
	default:
		return AlignUnset
	}
}
