// Package revisor provides a fluent API for checking the formatting of Word
// (.docx) and OpenDocument Text (.odt) documents against manuscript
// conventions: fonts and sizes in use, page
// margins, paragraph indentation, line spacing, numbered lines and paragraph
// alignment up to the references section.
//
// Basic usage:
//
//	report, err := revisor.Open("thesis.docx").Report()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(report)
//
// With options:
//
//	err := revisor.Open("thesis.docx").
//	    InheritStyles().
//	    WriteReport(revisor.OutputPath("thesis.docx", revisor.DefaultSuffix))
//
// For lower-level access, the docx, odt and analysis packages are also
// available.
package revisor

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/tsawler/revisor/model"
)

// DefaultSuffix is appended to a document's stem to name its report file.
const DefaultSuffix = "_analysis"

// ReportExtension is the extension of report files.
const ReportExtension = ".txt"

// ErrUnsupportedFormat is returned when a file is not a document revisor can
// analyze.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Open returns an Analyzer for the named file. The file is not read until a
// terminal operation like Report() is called.
//
// Example:
//
//	result, err := revisor.Open("thesis.docx").Analyze()
func Open(filename string) *Analyzer {
	a := &Analyzer{
		filename: filename,
		options:  defaultOptions(),
	}
	if filename == "" {
		a.err = errors.New("no filename specified")
	}
	return a
}

// FromDocument creates an Analyzer over an already-built document model.
// This is useful when documents come from somewhere other than a file.
// InheritStyles has no effect on such an Analyzer.
func FromDocument(doc *model.Document) *Analyzer {
	a := &Analyzer{
		doc:     doc,
		options: defaultOptions(),
	}
	if doc == nil {
		a.err = errors.New("nil document")
	}
	return a
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	report := revisor.Must(revisor.Open("thesis.docx").Report())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// OutputPath returns the report path for input: the input's directory, its
// file name without extension, suffix, then ".txt".
//
//	OutputPath("papers/thesis.docx", "_analysis") // "papers/thesis_analysis.txt"
func OutputPath(input, suffix string) string {
	dir, name := filepath.Split(input)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, stem+suffix+ReportExtension)
}
