package odt

import "encoding/xml"

// Style families used by the reader.
const (
	familyParagraph = "paragraph"
	familyText      = "text"
)

// stylesXML represents the structure of styles.xml
type stylesXML struct {
	XMLName      xml.Name         `xml:"document-styles"`
	FontFaces    fontFaceDeclsXML `xml:"font-face-decls"`
	Styles       styleSectionXML  `xml:"styles"`
	AutoStyles   styleSectionXML  `xml:"automatic-styles"`
	MasterStyles masterStylesXML  `xml:"master-styles"`
}

// contentStylesXML represents the style parts of content.xml.
type contentStylesXML struct {
	XMLName    xml.Name         `xml:"document-content"`
	FontFaces  fontFaceDeclsXML `xml:"font-face-decls"`
	AutoStyles styleSectionXML  `xml:"automatic-styles"`
}

// styleSectionXML represents office:styles or office:automatic-styles.
type styleSectionXML struct {
	Styles        []styleDefXML   `xml:"style"`
	DefaultStyles []styleDefXML   `xml:"default-style"`
	PageLayouts   []pageLayoutXML `xml:"page-layout"`
}

// fontFaceDeclsXML represents office:font-face-decls.
type fontFaceDeclsXML struct {
	FontFaces []fontFaceXML `xml:"font-face"`
}

// fontFaceXML maps a font face name to its family (<style:font-face>).
type fontFaceXML struct {
	Name   string `xml:"name,attr"`
	Family string `xml:"font-family,attr"`
}

// styleDefXML represents a style definition (<style:style> or
// <style:default-style>).
type styleDefXML struct {
	Name            string             `xml:"name,attr"`
	Family          string             `xml:"family,attr"`
	ParentStyleName string             `xml:"parent-style-name,attr"`
	MasterPageName  string             `xml:"master-page-name,attr"`
	ParagraphProps  *paragraphPropsXML `xml:"paragraph-properties"`
	TextProps       *textPropsXML      `xml:"text-properties"`
}

// paragraphPropsXML represents paragraph properties (<style:paragraph-properties>).
type paragraphPropsXML struct {
	TextAlign         string `xml:"text-align,attr"` // start, end, left, right, center, justify
	MarginLeft        string `xml:"margin-left,attr"`
	LineHeight        string `xml:"line-height,attr"`          // "150%", "0.6cm" or "normal"
	LineHeightAtLeast string `xml:"line-height-at-least,attr"` // minimum line height
}

// textPropsXML represents text properties (<style:text-properties>).
type textPropsXML struct {
	FontName   string `xml:"font-name,attr"`
	FontFamily string `xml:"font-family,attr"`
	FontSize   string `xml:"font-size,attr"`
}

// pageLayoutXML represents a page layout (<style:page-layout>).
type pageLayoutXML struct {
	Name      string       `xml:"name,attr"`
	PageProps pagePropsXML `xml:"page-layout-properties"`
}

// pagePropsXML represents page layout properties.
type pagePropsXML struct {
	Margin       string `xml:"margin,attr"`
	MarginTop    string `xml:"margin-top,attr"`
	MarginBottom string `xml:"margin-bottom,attr"`
	MarginLeft   string `xml:"margin-left,attr"`
	MarginRight  string `xml:"margin-right,attr"`
}

// masterStylesXML represents the office:master-styles element.
type masterStylesXML struct {
	MasterPages []masterPageXML `xml:"master-page"`
}

// masterPageXML represents a master page (<style:master-page>).
type masterPageXML struct {
	Name           string `xml:"name,attr"`
	PageLayoutName string `xml:"page-layout-name,attr"`
}

// metaXML represents document metadata from meta.xml.
type metaXML struct {
	XMLName xml.Name    `xml:"document-meta"`
	Meta    metaInfoXML `xml:"meta"`
}

// metaInfoXML represents the office:meta element.
type metaInfoXML struct {
	Title          string `xml:"title"`
	Subject        string `xml:"subject"`
	InitialCreator string `xml:"initial-creator"`
	Creator        string `xml:"creator"`
	Generator      string `xml:"generator"`
}
