// Package docx provides DOCX (Office Open XML) document parsing.
//
// The reader exposes a document as a [model.Document]: body paragraphs in
// order, each with its direct runs and paragraph formatting, plus the page
// margins of every section.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/revisor/model"
)

// ErrInvalidPackage is returned when a file is not a usable DOCX package.
var ErrInvalidPackage = errors.New("invalid DOCX package")

// Reader provides access to DOCX document content.
type Reader struct {
	closer    io.Closer
	zipReader *zip.Reader
	document  *documentXML
	styles    *stylesXML
	coreProps *corePropertiesXML
	appProps  *appPropertiesXML
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: opening ZIP archive: %v", ErrInvalidPackage, err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// NewReader reads a DOCX package from an io.ReaderAt of the given size.
// The caller keeps ownership of ra.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: reading ZIP archive: %v", ErrInvalidPackage, err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{
		zipReader: zr,
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	// Parse document.xml
	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Styles are optional; without them inheritance resolves nothing.
	_ = r.parseStyles()

	// Parse metadata (optional)
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	for _, name := range required {
		if r.getFile(name) == nil {
			return fmt.Errorf("%w: missing required file: %s", ErrInvalidPackage, name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.getFile(name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// getFile returns a zip.File by name.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("%w: unmarshaling document.xml: %v", ErrInvalidPackage, err)
	}
	return nil
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() error {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return err
	}

	styles := &stylesXML{}
	if err := xml.Unmarshal(data, styles); err != nil {
		return err
	}
	r.styles = styles
	return nil
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	props := &corePropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.coreProps = props
	}
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	props := &appPropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.appProps = props
	}
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
	}
	if r.appProps != nil {
		meta.Creator = r.appProps.Application
	}
	return meta
}

// Text extracts and returns all body paragraph text, one paragraph per line.
func (r *Reader) Text() (string, error) {
	doc, err := r.Document()
	if err != nil {
		return "", err
	}
	return doc.ExtractText(), nil
}

// DocumentOption configures how Document builds the model.
type DocumentOption func(*documentOptions)

type documentOptions struct {
	inheritStyles bool
}

// WithStyleInheritance fills attributes a paragraph or run leaves unset from
// its style chain and the document defaults. Without it only direct
// formatting is reported.
func WithStyleInheritance() DocumentOption {
	return func(o *documentOptions) {
		o.inheritStyles = true
	}
}

// Document returns a model.Document representation of the DOCX content.
func (r *Reader) Document(opts ...DocumentOption) (*model.Document, error) {
	if r.document == nil {
		return nil, fmt.Errorf("document not parsed")
	}

	var o documentOptions
	for _, opt := range opts {
		opt(&o)
	}

	var resolver *StyleResolver
	if o.inheritStyles {
		resolver = NewStyleResolver(r.styles)
	}

	doc := model.NewDocument()
	doc.Metadata = r.Metadata()

	body := r.document.Body
	if body == nil {
		return doc, nil
	}

	for _, p := range body.Paragraphs {
		doc.AddParagraph(buildParagraph(p, resolver))
		if p.Properties.SectPr != nil {
			doc.AddSection(parseSection(p.Properties.SectPr))
		}
	}
	if body.SectPr != nil {
		doc.AddSection(parseSection(body.SectPr))
	}

	return doc, nil
}

// buildParagraph converts a parsed paragraph to the model. A nil resolver
// keeps direct formatting only.
func buildParagraph(p paragraphXML, resolver *StyleResolver) model.Paragraph {
	ppr := p.Properties

	var text strings.Builder
	for _, run := range p.TextRuns {
		text.WriteString(run.Text)
	}

	para := model.Paragraph{
		Text:        text.String(),
		StyleID:     ppr.Style.Val,
		Alignment:   model.ParseAlignment(ppr.Justification.Val),
		LeftIndent:  parseLeftIndent(ppr.Indent),
		LineSpacing: parseLineSpacing(ppr.Spacing),
		Runs:        make([]model.Run, 0, len(p.Runs)),
	}

	for _, run := range p.Runs {
		mr := model.Run{
			Text:     run.Text,
			FontName: run.Properties.Font.ASCII,
		}
		if size, ok := parseHalfPoints(run.Properties.FontSize.Val); ok && size > 0 {
			mr.FontSize = size.Ptr()
		}
		if resolver != nil {
			resolver.ResolveRun(para.StyleID, run.Properties.Style.Val, &mr)
		}
		para.Runs = append(para.Runs, mr)
	}

	if resolver != nil {
		resolver.ResolveParagraph(&para)
	}

	return para
}
