package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/revisor/model"
)

// Collection thresholds.
const (
	// IndentMinCm is the left indent, in centimeters, above which a paragraph
	// is reported.
	IndentMinCm = 1.25
	// IndentExemptCm is the block-quote indent that is never reported.
	IndentExemptCm = 4.0
	// SpacingLimit is the line spacing value above which a paragraph is
	// reported.
	SpacingLimit = 1.0
)

// referenceMarkers start the bibliography. Matching is case-sensitive and
// by substring.
var referenceMarkers = []string{"REFERÊNCIAS", "BIBLIOGRAFIA"}

// NumberedLine is a paragraph whose first word is an integer.
type NumberedLine struct {
	Text      string
	Alignment string
}

// Accumulator holds the statistics gathered in one pass over a document.
type Accumulator struct {
	FontCounts     Tally[string]
	FontSizeCounts Tally[model.Length]

	IndentCounts   Tally[model.Length]
	IndentExamples Examples[model.Length]

	SpacingCounts   Tally[float64]
	SpacingExamples []string

	NumberedLines []NumberedLine

	// Alignment statistics stop accumulating once PastReferences is set.
	AlignmentCounts       Tally[string]
	AlignmentExamples     Examples[string]
	UnknownAlignmentTexts []string

	// LeftAlignedTexts holds quoted texts of every left-classified paragraph.
	LeftAlignedTexts []string

	// PastReferences flips to true at the first references heading and
	// never resets.
	PastReferences bool
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Collect walks the paragraphs of doc in order and returns the populated
// accumulator.
func Collect(doc *model.Document) *Accumulator {
	acc := NewAccumulator()
	if doc == nil {
		return acc
	}
	for i := range doc.Paragraphs {
		acc.Visit(&doc.Paragraphs[i])
	}
	return acc
}

// Visit applies every collection rule to one paragraph. Paragraphs must be
// visited in document order.
func (a *Accumulator) Visit(p *model.Paragraph) {
	text := p.Text
	if strings.TrimSpace(text) == "" {
		return
	}

	if isReferenceMarker(text) {
		a.PastReferences = true
	}

	for _, run := range p.Runs {
		if run.FontName != "" {
			a.FontCounts.Add(run.FontName)
		}
		if run.FontSize != nil && *run.FontSize > 0 {
			a.FontSizeCounts.Add(*run.FontSize)
		}
		// The indent belongs to the paragraph but is counted once per run.
		if indent, ok := reportableIndent(p); ok {
			a.IndentCounts.Add(indent)
			a.IndentExamples.Add(indent, text)
		}
	}

	if ls := p.LineSpacing; ls != nil && ls.Exceeds(SpacingLimit) {
		a.SpacingCounts.Add(ls.Value())
		a.SpacingExamples = append(a.SpacingExamples, text)
	}

	label := Classify(p.Alignment)

	if startsWithInteger(text) {
		a.NumberedLines = append(a.NumberedLines, NumberedLine{Text: text, Alignment: label})
	}

	if !a.PastReferences {
		if label == LabelUnknown {
			a.UnknownAlignmentTexts = append(a.UnknownAlignmentTexts, text)
		}
		a.AlignmentCounts.Add(label)
		a.AlignmentExamples.Add(label, text)
	}

	if label == LabelLeft {
		a.LeftAlignedTexts = append(a.LeftAlignedTexts, `"`+text+`"`)
	}
}

// isReferenceMarker reports whether text contains a references heading.
// Text is NFC-normalized so a decomposed Ê still matches.
func isReferenceMarker(text string) bool {
	text = norm.NFC.String(text)
	for _, marker := range referenceMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// reportableIndent returns the paragraph's left indent when it is above
// IndentMinCm and not exactly IndentExemptCm.
func reportableIndent(p *model.Paragraph) (model.Length, bool) {
	if p.LeftIndent == nil {
		return 0, false
	}
	cm := p.LeftIndent.Cm()
	if cm > IndentMinCm && cm != IndentExemptCm {
		return *p.LeftIndent, true
	}
	return 0, false
}

// startsWithInteger reports whether the first whitespace-delimited word of
// text is an integer. A single trailing list delimiter ("1." or "1)") is
// accepted.
func startsWithInteger(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	word := words[0]
	if n := len(word); n > 1 && (word[n-1] == '.' || word[n-1] == ')') {
		word = word[:n-1]
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
