// Package odt reads OpenDocument Text (.odt) packages into the revisor
// document model.
//
// Paragraphs come from content.xml in document order; table cells, frames and
// notes are not part of the body flow and are skipped. Formatting comes from
// automatic styles, which is where ODF records direct formatting. Page
// margins come from the page layouts of the master pages in use.
package odt

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/revisor/model"
)

// ErrInvalidPackage is returned when a file is not a readable ODT package.
var ErrInvalidPackage = errors.New("invalid ODT package")

// mimeTypes lists the accepted values of the mimetype entry.
var mimeTypes = []string{
	"application/vnd.oasis.opendocument.text",
	"application/vnd.oasis.opendocument.text-template",
}

// defaultMasterPage is the master page LibreOffice applies when none is set.
const defaultMasterPage = "Standard"

// Reader provides access to ODT document content.
type Reader struct {
	closer        io.Closer
	zipReader     *zip.Reader
	paragraphs    []paragraphXML
	contentStyles *contentStylesXML
	docStyles     *stylesXML
	meta          *metaXML
}

// Open opens an ODT file for reading.
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

// NewReader reads an ODT package from an io.ReaderAt of the given size.
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

	// Parse styles.xml first (optional but usually present)
	_ = r.parseStyles()

	// Parse content.xml (automatic styles, then the body)
	if err := r.parseContent(); err != nil {
		return nil, fmt.Errorf("%w: parsing content: %v", ErrInvalidPackage, err)
	}

	// Parse metadata (optional)
	r.parseMetadata()

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

// validate checks that content.xml exists and that the mimetype, when
// present, names a text document.
func (r *Reader) validate() error {
	if r.getFile("content.xml") == nil {
		return fmt.Errorf("%w: missing required file: content.xml", ErrInvalidPackage)
	}

	data, err := r.getFileContent("mimetype")
	if err != nil {
		return nil
	}
	mime := strings.TrimSpace(string(data))
	for _, m := range mimeTypes {
		if mime == m {
			return nil
		}
	}
	return fmt.Errorf("%w: not a text document: %s", ErrInvalidPackage, mime)
}

// getFile returns the archive entry with the given name, or nil.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
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

// parseStyles parses the styles.xml file.
func (r *Reader) parseStyles() error {
	data, err := r.getFileContent("styles.xml")
	if err != nil {
		return err
	}

	var styles stylesXML
	if err := xml.Unmarshal(data, &styles); err != nil {
		return err
	}
	r.docStyles = &styles
	return nil
}

// parseContent parses the automatic styles and body of content.xml.
func (r *Reader) parseContent() error {
	data, err := r.getFileContent("content.xml")
	if err != nil {
		return err
	}

	var styles contentStylesXML
	if err := xml.Unmarshal(data, &styles); err != nil {
		return err
	}
	r.contentStyles = &styles

	return r.parseBody(data)
}

// parseBody collects the body paragraphs in document order using a
// streaming decoder.
func (r *Reader) parseBody(data []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var inBody bool

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			// Check if we're entering the text body
			if t.Name.Space == nsOffice && t.Name.Local == "text" {
				inBody = true
				continue
			}
			if !inBody {
				continue
			}

			if skipInBody(t.Name) {
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			// Paragraphs and headings; lists and sections are walked into
			if t.Name.Space == nsText && (t.Name.Local == "p" || t.Name.Local == "h") {
				var para paragraphXML
				if err := decoder.DecodeElement(&para, &t); err != nil {
					return err
				}
				r.paragraphs = append(r.paragraphs, para)
			}

		case xml.EndElement:
			if t.Name.Space == nsOffice && t.Name.Local == "text" {
				inBody = false
			}
		}
	}
}

// parseMetadata parses the meta.xml file.
func (r *Reader) parseMetadata() {
	data, err := r.getFileContent("meta.xml")
	if err != nil {
		return
	}

	var meta metaXML
	if xml.Unmarshal(data, &meta) == nil {
		r.meta = &meta
	}
}

// Metadata returns the document metadata.
func (r *Reader) Metadata() model.Metadata {
	if r.meta == nil {
		return model.Metadata{}
	}
	m := r.meta.Meta
	return model.Metadata{
		Title:   m.Title,
		Author:  m.InitialCreator,
		Subject: m.Subject,
		Creator: m.Creator,
	}
}

// Text extracts and returns all paragraph text, one paragraph per line.
func (r *Reader) Text() (string, error) {
	doc, err := r.Document()
	if err != nil {
		return "", err
	}
	return doc.ExtractText(), nil
}

// DocumentOption configures Document.
type DocumentOption func(*documentOptions)

type documentOptions struct {
	inheritStyles bool
}

// WithStyleInheritance fills formatting that a paragraph or span does not
// set directly from its named style chain and the default styles.
func WithStyleInheritance() DocumentOption {
	return func(o *documentOptions) {
		o.inheritStyles = true
	}
}

// Document returns a model.Document representation of the ODT content.
func (r *Reader) Document(opts ...DocumentOption) (*model.Document, error) {
	var o documentOptions
	for _, opt := range opts {
		opt(&o)
	}

	resolver := NewStyleResolver(r.contentStyles, r.docStyles)

	doc := model.NewDocument()
	doc.Metadata = r.Metadata()

	for _, p := range r.paragraphs {
		doc.AddParagraph(buildParagraph(p, resolver, o.inheritStyles))
	}

	for _, sec := range r.sections(resolver) {
		doc.AddSection(sec)
	}

	return doc, nil
}

// buildParagraph converts a parsed paragraph to the model.
func buildParagraph(p paragraphXML, resolver *StyleResolver, inherit bool) model.Paragraph {
	direct := resolver.Direct(familyParagraph, p.StyleName)

	para := model.Paragraph{
		Text:        p.Text(),
		StyleID:     p.StyleName,
		Alignment:   direct.Alignment,
		LeftIndent:  direct.LeftIndent,
		LineSpacing: direct.LineSpacing,
		Runs:        make([]model.Run, 0, len(p.Segments)),
	}

	for _, seg := range p.Segments {
		run := model.Run{Text: seg.Text}
		if seg.StyleName != "" {
			span := resolver.Direct(familyText, seg.StyleName)
			run.FontName, run.FontSize = span.FontName, span.FontSize
		}
		// Text properties of the paragraph's automatic style apply to
		// every run that does not override them.
		if run.FontName == "" {
			run.FontName = direct.FontName
		}
		if run.FontSize == nil {
			run.FontSize = direct.FontSize
		}
		if inherit {
			resolver.ResolveRun(p.StyleName, seg.StyleName, &run)
		}
		para.Runs = append(para.Runs, run)
	}

	if inherit {
		resolver.ResolveParagraph(&para)
	}

	return para
}

// sections returns one section per master page run: the initial master
// page, then one for each paragraph whose style switches master page.
// A document without master pages has no sections.
func (r *Reader) sections(resolver *StyleResolver) []model.Section {
	if r.docStyles == nil {
		return nil
	}

	layouts := make(map[string]pagePropsXML)
	for _, pl := range r.docStyles.AutoStyles.PageLayouts {
		layouts[pl.Name] = pl.PageProps
	}
	for _, pl := range r.docStyles.Styles.PageLayouts {
		if _, ok := layouts[pl.Name]; !ok {
			layouts[pl.Name] = pl.PageProps
		}
	}

	masters := make(map[string]string)
	for _, mp := range r.docStyles.MasterStyles.MasterPages {
		masters[mp.Name] = mp.PageLayoutName
	}
	if len(masters) == 0 {
		return nil
	}

	current := defaultMasterPage
	if _, ok := masters[current]; !ok {
		current = r.docStyles.MasterStyles.MasterPages[0].Name
	}

	var sections []model.Section
	for i, p := range r.paragraphs {
		next := resolver.MasterPage(p.StyleName)
		if _, ok := masters[next]; !ok {
			continue
		}
		if i > 0 {
			sections = append(sections, parseSection(layouts[masters[current]]))
		}
		current = next
	}
	sections = append(sections, parseSection(layouts[masters[current]]))

	return sections
}
