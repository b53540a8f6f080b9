package docx

import "encoding/xml"

// styleTypeParagraph is the w:style/@w:type of paragraph styles.
const styleTypeParagraph = "paragraph"

// stylesXML is word/styles.xml. Only document defaults and style
// definitions are decoded; latent styles are ignored.
type stylesXML struct {
	XMLName     xml.Name       `xml:"styles"`
	DocDefaults docDefaultsXML `xml:"docDefaults"`
	Styles      []styleDefXML  `xml:"style"`
}

// docDefaultsXML holds the formatting every style starts from.
type docDefaultsXML struct {
	RPrDefault rPrDefaultXML `xml:"rPrDefault"`
	PPrDefault pPrDefaultXML `xml:"pPrDefault"`
}

type rPrDefaultXML struct {
	RPr runPropsXML `xml:"rPr"`
}

type pPrDefaultXML struct {
	PPr paragraphPropsXML `xml:"pPr"`
}

// styleDefXML is one w:style. Name and BasedOn reuse the w:val wrapper of
// paragraph style references.
type styleDefXML struct {
	Type    string            `xml:"type,attr"`
	StyleID string            `xml:"styleId,attr"`
	Default string            `xml:"default,attr"`
	Name    styleRefXML       `xml:"name"`
	BasedOn styleRefXML       `xml:"basedOn"`
	PPr     paragraphPropsXML `xml:"pPr"`
	RPr     runPropsXML       `xml:"rPr"`
}

// isDefault reports whether the style is the default of its type.
func (s *styleDefXML) isDefault() bool {
	return s.Default == "1" || s.Default == "true"
}

// corePropertiesXML is docProps/core.xml.
type corePropertiesXML struct {
	XMLName xml.Name `xml:"coreProperties"`
	Title   string   `xml:"title"`
	Subject string   `xml:"subject"`
	Creator string   `xml:"creator"`
}

// appPropertiesXML is docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
}
