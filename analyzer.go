package revisor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/revisor/analysis"
	"github.com/tsawler/revisor/docx"
	"github.com/tsawler/revisor/format"
	"github.com/tsawler/revisor/model"
	"github.com/tsawler/revisor/odt"
)

// Analyzer provides a fluent interface for analyzing document formatting.
// Each configuration method returns a new Analyzer instance, making it
// safe for concurrent use and allowing method chaining.
type Analyzer struct {
	// Source
	filename string
	doc      *model.Document

	// Configuration
	options AnalyzeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Analyzer with a copy of options.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		filename: a.filename,
		doc:      a.doc,
		options:  a.options.clone(),
		err:      a.err,
	}
}

// ============================================================================
// Configuration Methods (return new Analyzer instance)
// ============================================================================

// InheritStyles makes unset paragraph and run formatting fall back to the
// document's style definitions. By default only direct formatting counts.
//
// Example:
//
//	report, err := revisor.Open("thesis.docx").InheritStyles().Report()
func (a *Analyzer) InheritStyles() *Analyzer {
	newA := a.clone()
	newA.options.inheritStyles = true
	return newA
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Format returns the detected format of the source file. Files without a
// recognized extension are identified by their content. An Analyzer made by
// FromDocument has no source file and reports Unknown.
func (a *Analyzer) Format() (format.Format, error) {
	if a.err != nil {
		return format.Unknown, a.err
	}
	if a.doc != nil {
		return format.Unknown, nil
	}
	return detectFile(a.filename)
}

// Document parses the source file into the document model.
func (a *Analyzer) Document() (*model.Document, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.doc != nil {
		return a.doc, nil
	}

	f, err := detectFile(a.filename)
	if err != nil {
		return nil, err
	}
	if !f.Supported() {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, filepath.Base(a.filename), f)
	}

	if f == format.ODT {
		return a.odtDocument()
	}
	return a.docxDocument()
}

// docxDocument reads the source file as a Word package.
func (a *Analyzer) docxDocument() (*model.Document, error) {
	r, err := docx.Open(a.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	var opts []docx.DocumentOption
	if a.options.inheritStyles {
		opts = append(opts, docx.WithStyleInheritance())
	}
	return r.Document(opts...)
}

// odtDocument reads the source file as an OpenDocument Text package.
func (a *Analyzer) odtDocument() (*model.Document, error) {
	r, err := odt.Open(a.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open ODT: %w", err)
	}
	defer r.Close()

	var opts []odt.DocumentOption
	if a.options.inheritStyles {
		opts = append(opts, odt.WithStyleInheritance())
	}
	return r.Document(opts...)
}

// Analyze runs the formatting analysis over the document.
func (a *Analyzer) Analyze() (*analysis.Result, error) {
	doc, err := a.Document()
	if err != nil {
		return nil, err
	}
	return analysis.Analyze(doc), nil
}

// Report returns the rendered analysis report.
//
// Example:
//
//	report, err := revisor.Open("thesis.docx").Report()
func (a *Analyzer) Report() (string, error) {
	result, err := a.Analyze()
	if err != nil {
		return "", err
	}
	return result.Report(), nil
}

// WriteReport analyzes the document and writes the report to path, creating
// parent directories as needed. The report is written to a temporary file in
// the same directory and renamed into place.
func (a *Analyzer) WriteReport(path string) error {
	result, err := a.Analyze()
	if err != nil {
		return err
	}
	return writeFileAtomic(path, result)
}

// detectFile determines the format of filename by extension, falling back to
// its content when the extension is not recognized.
func detectFile(filename string) (format.Format, error) {
	if f := format.Detect(filename); f != format.Unknown {
		return f, nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return format.Unknown, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return format.Unknown, err
	}
	return format.DetectFromReader(file, info.Size())
}

// writeFileAtomic writes result to a temporary file beside path and renames
// it into place.
func writeFileAtomic(path string, result *analysis.Result) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".revisor-*")
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	tmpPath := tmp.Name()

	bw := bufio.NewWriter(tmp)
	if _, err := result.WriteTo(bw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
