package docx

import (
	"encoding/xml"
	"strings"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
// Only body-level paragraphs are collected; paragraphs inside tables are not
// part of the paragraph sequence.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	SectPr     *sectPrXML     `xml:"sectPr"`
}

// paragraphXML represents a paragraph element (<w:p>).
// It is decoded by UnmarshalXML so that text from direct runs and from runs
// nested in hyperlinks keeps its document order.
type paragraphXML struct {
	Properties paragraphPropsXML
	// Runs holds the direct <w:r> children only.
	Runs []runXML
	// TextRuns holds direct runs and hyperlink runs in document order.
	TextRuns []runXML
}

// UnmarshalXML decodes a <w:p> element preserving child order.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var run runXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, run)
				p.TextRuns = append(p.TextRuns, run)
			case "hyperlink":
				var link hyperlinkXML
				if err := d.DecodeElement(&link, &t); err != nil {
					return err
				}
				p.TextRuns = append(p.TextRuns, link.Runs...)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
	Spacing       spacingXML       `xml:"spacing"`
	Indent        indentXML        `xml:"ind"`
	OutlineLvl    outlineLvlXML    `xml:"outlineLvl"`
	SectPr        *sectPrXML       `xml:"sectPr"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing.
type spacingXML struct {
	Before   string `xml:"before,attr"`   // Space before in twips
	After    string `xml:"after,attr"`    // Space after in twips
	Line     string `xml:"line,attr"`     // Line spacing
	LineRule string `xml:"lineRule,attr"` // auto, exact, atLeast
}

// indentXML represents paragraph indentation.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Start     string `xml:"start,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	PgMar pgMarXML `xml:"pgMar"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Right  string `xml:"right,attr"`
	Header string `xml:"header,attr"`
	Footer string `xml:"footer,attr"`
	Gutter string `xml:"gutter,attr"`
}

// runXML represents a text run (<w:r>).
// Content is decoded by UnmarshalXML so tabs and breaks stay in place.
type runXML struct {
	Properties runPropsXML
	Text       string
}

// UnmarshalXML decodes a <w:r> element, flattening its content to text.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &t); err != nil {
					return err
				}
				continue
			case "t":
				var text textXML
				if err := d.DecodeElement(&text, &t); err != nil {
					return err
				}
				sb.WriteString(text.Value)
				continue
			case "tab", "ptab":
				sb.WriteString("\t")
			case "br":
				if breakType(t) == "" || breakType(t) == "textWrapping" {
					sb.WriteString("\n")
				}
			case "cr":
				sb.WriteString("\n")
			case "noBreakHyphen":
				sb.WriteString("-")
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			r.Text = sb.String()
			return nil
		}
	}
}

// breakType returns the w:type attribute of a <w:br> element.
func breakType(start xml.StartElement) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == "type" {
			return attr.Value
		}
	}
	return ""
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Style    styleRefXML `xml:"rStyle"`
	FontSize sizeXML     `xml:"sz"`
	Font     fontXML     `xml:"rFonts"`
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// hyperlinkXML represents a hyperlink.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}
