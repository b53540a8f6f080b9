package model

import "strings"

// Document is an ordered sequence of paragraphs plus the sections that
// own them.
type Document struct {
	Metadata   Metadata
	Paragraphs []Paragraph
	Sections   []Section
}

// Metadata contains document-level information from the package properties.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Creator string
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Paragraphs: make([]Paragraph, 0),
		Sections:   make([]Section, 0),
	}
}

// AddParagraph appends a paragraph in document order.
func (d *Document) AddParagraph(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

// AddSection appends a section in document order.
func (d *Document) AddSection(s Section) {
	d.Sections = append(d.Sections, s)
}

// ExtractText returns all paragraph text joined by newlines.
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for i, p := range d.Paragraphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Paragraph is a block of text with paragraph-level formatting.
type Paragraph struct {
	Text        string
	StyleID     string
	Alignment   Alignment
	LeftIndent  *Length      // nil if not set
	LineSpacing *LineSpacing // nil if not set
	Runs        []Run
}

// Run is a contiguous span of text sharing one set of font attributes.
type Run struct {
	Text     string
	FontName string  // empty if not set
	FontSize *Length // nil if not set
}

// Section carries the page margins of one document section.
type Section struct {
	Top    Length
	Bottom Length
	Left   Length
	Right  Length
}
