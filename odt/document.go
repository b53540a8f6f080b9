package odt

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// ODF XML namespaces
const (
	nsOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsTable  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsDraw   = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
)

// paragraphXML represents a paragraph (<text:p>) or heading (<text:h>).
// Its text is kept as ordered segments, one per span and one per stretch of
// unspanned text.
type paragraphXML struct {
	StyleName string
	Heading   bool
	Segments  []segmentXML

	split bool // next text starts a new segment
}

// segmentXML is a run of text sharing one text style. StyleName is empty
// for text outside any span.
type segmentXML struct {
	StyleName string
	Text      string
}

// UnmarshalXML decodes a paragraph, keeping span boundaries in order.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.StyleName = attrValue(start, "style-name")
	p.Heading = start.Name.Local == "h"
	p.split = true
	return p.walk(d, "")
}

// walk consumes tokens up to the end of the current element. style is the
// text style in effect for character data at this level.
func (p *paragraphXML) walk(d *xml.Decoder, style string) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.CharData:
			p.write(style, collapseSpace(string(t)))

		case xml.StartElement:
			if skipInParagraph(t.Name) {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			if t.Name.Space != nsText {
				if err := p.walk(d, style); err != nil {
					return err
				}
				continue
			}

			switch t.Name.Local {
			case "span":
				p.split = true
				if err := p.walk(d, attrValue(t, "style-name")); err != nil {
					return err
				}
				p.split = true
			case "s":
				p.write(style, strings.Repeat(" ", spaceCount(t)))
				if err := d.Skip(); err != nil {
					return err
				}
			case "tab":
				p.write(style, "\t")
				if err := d.Skip(); err != nil {
					return err
				}
			case "line-break":
				p.write(style, "\n")
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				// Hyperlinks, fields and bookmarks carry inline text.
				if err := p.walk(d, style); err != nil {
					return err
				}
			}

		case xml.EndElement:
			return nil
		}
	}
}

// write appends s to the current segment, opening a new one when needed.
// Leading white space of a paragraph is dropped.
func (p *paragraphXML) write(style, s string) {
	if len(p.Segments) == 0 {
		s = strings.TrimLeft(s, " ")
	}
	if s == "" {
		return
	}
	if p.split || len(p.Segments) == 0 {
		p.Segments = append(p.Segments, segmentXML{StyleName: style})
		p.split = false
	}
	p.Segments[len(p.Segments)-1].Text += s
}

// Text returns the paragraph text.
func (p *paragraphXML) Text() string {
	var sb strings.Builder
	for _, seg := range p.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// skipInParagraph reports whether an element inside a paragraph holds
// content outside the text flow: notes, annotations, frames and change
// tracking.
func skipInParagraph(name xml.Name) bool {
	switch name.Space {
	case nsDraw:
		return true
	case nsOffice:
		return name.Local == "annotation"
	case nsText:
		switch name.Local {
		case "note", "tracked-changes", "change-start", "change-end", "ruby-text":
			return true
		}
	}
	return false
}

// skipInBody reports whether a body element holds paragraphs that are not
// part of the main text flow.
func skipInBody(name xml.Name) bool {
	switch name.Space {
	case nsTable, nsDraw:
		return true
	case nsText:
		switch name.Local {
		case "tracked-changes", "sequence-decls", "variable-decls", "user-field-decls":
			return true
		}
	}
	return false
}

// collapseSpace turns each run of XML white space into a single space.
func collapseSpace(s string) string {
	if !strings.ContainsAny(s, " \t\r\n") {
		return s
	}
	var sb strings.Builder
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			if !space {
				sb.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// spaceCount returns the text:c attribute of a <text:s>, defaulting to 1.
func spaceCount(t xml.StartElement) int {
	if n, err := strconv.Atoi(attrValue(t, "c")); err == nil && n > 0 {
		return n
	}
	return 1
}

// attrValue returns the value of the attribute with the given local name.
func attrValue(t xml.StartElement, local string) string {
	for _, a := range t.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
