package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/revisor/model"
)

// PreviewLength is the number of characters kept in a text preview.
const PreviewLength = 50

// Share is one row of a percentage breakdown.
type Share struct {
	Label   string
	Count   int
	Percent float64
}

// Result is the outcome of analyzing one document.
type Result struct {
	Accumulator *Accumulator
	Margins     Margins
}

// Analyze runs the collector over doc and averages its section margins.
func Analyze(doc *model.Document) *Result {
	var sections []model.Section
	if doc != nil {
		sections = doc.Sections
	}
	return &Result{
		Accumulator: Collect(doc),
		Margins:     AverageMargins(sections),
	}
}

// Report renders the result as report text.
func (r *Result) Report() string {
	return Render(r.Accumulator, r.Margins)
}

// WriteTo writes the report text to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Report())
	return int64(n), err
}

// WriteReport renders acc and margins and writes the text to w.
func WriteReport(w io.Writer, acc *Accumulator, margins Margins) error {
	_, err := io.WriteString(w, Render(acc, margins))
	return err
}

// FontShares returns the usage percentage of each font, in first-seen order.
// It returns nil when no run specified a font.
func (a *Accumulator) FontShares() []Share {
	return shares(&a.FontCounts)
}

// AlignmentShares returns the percentage of each alignment label among the
// paragraphs before the references section.
func (a *Accumulator) AlignmentShares() []Share {
	return shares(&a.AlignmentCounts)
}

func shares(t *Tally[string]) []Share {
	total := t.Total()
	if total == 0 {
		return nil
	}
	out := make([]Share, 0, t.Len())
	for _, key := range t.Keys() {
		count := t.Count(key)
		out = append(out, Share{
			Label:   key,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	return out
}

// Render produces the plain-text report for an accumulator and the section
// margin averages.
func Render(acc *Accumulator, margins Margins) string {
	if acc == nil {
		acc = NewAccumulator()
	}

	var sb strings.Builder

	sb.WriteString("Font Utilization:\n")
	for _, s := range acc.FontShares() {
		fmt.Fprintf(&sb, "%s: %.2f%%\n", s.Label, s.Percent)
	}

	sb.WriteString("\nFont Sizes Utilization:\n")
	for _, size := range acc.FontSizeCounts.Keys() {
		fmt.Fprintf(&sb, "%s pt: %d times\n", formatNumber(size.Pt()), acc.FontSizeCounts.Count(size))
	}

	sb.WriteString("\nMargins Utilization (average for all sections):\n")
	fmt.Fprintf(&sb, "Top Margin: %.2f cm\n", margins.Top)
	fmt.Fprintf(&sb, "Bottom Margin: %.2f cm\n", margins.Bottom)
	fmt.Fprintf(&sb, "Left Margin: %.2f cm\n", margins.Left)
	fmt.Fprintf(&sb, "Right Margin: %.2f cm\n", margins.Right)

	sb.WriteString("\nIndentations (greater than 1.25 cm and different than 4 cm):\n")
	for _, indent := range acc.IndentCounts.Keys() {
		fmt.Fprintf(&sb, "%s cm: %d times\n", formatNumber(indent.Cm()), acc.IndentCounts.Count(indent))
	}

	sb.WriteString("\nSpecific Indents (Different than 4 cm):\n")
	for _, indent := range acc.IndentExamples.Keys() {
		texts := acc.IndentExamples.Texts(indent)
		fmt.Fprintf(&sb, "%s cm: %d times\n", formatNumber(indent.Cm()), len(texts))
		for _, text := range texts {
			fmt.Fprintf(&sb, "  - %s\n", Preview(text))
		}
	}

	sb.WriteString("\nLine Spacing Greater than 1 cm:\n")
	for _, text := range acc.SpacingExamples {
		fmt.Fprintf(&sb, "  - %s\n", Preview(text))
	}

	sb.WriteString("\nNumbered Lines and Their Alignment:\n")
	for _, line := range acc.NumberedLines {
		fmt.Fprintf(&sb, "%s - Alignment: %s\n", Preview(line.Text), line.Alignment)
	}

	sb.WriteString("\nParagraph Alignment Until 'REFERÊNCIAS' or 'BIBLIOGRAFIA':\n")
	percents := make(map[string]float64)
	for _, s := range acc.AlignmentShares() {
		percents[s.Label] = s.Percent
	}
	for _, label := range acc.AlignmentExamples.Keys() {
		texts := acc.AlignmentExamples.Texts(label)
		fmt.Fprintf(&sb, "Alignment: %s - %d times (%.2f%%)\n", label, len(texts), percents[label])
	}

	sb.WriteString("\nUnknown Alignment Texts:\n")
	for _, text := range acc.UnknownAlignmentTexts {
		fmt.Fprintf(&sb, "%s\n", Preview(text))
	}

	sb.WriteString("\nLeft Aligned Texts:\n")
	for _, text := range acc.LeftAlignedTexts {
		fmt.Fprintf(&sb, "%s\n", text)
	}

	return sb.String()
}

// Preview returns the first PreviewLength characters of text followed by an
// ellipsis. The ellipsis is appended even when text is shorter.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) > PreviewLength {
		runes = runes[:PreviewLength]
	}
	return string(runes) + "..."
}

// formatNumber prints v as the shortest decimal that round-trips, always
// with a fractional part ("12.0", "2.00025").
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
