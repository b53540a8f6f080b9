// Package format recognizes word-processing documents by file extension and
// by content.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a recognized document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// DOC indicates a legacy binary Word (.doc) document.
	DOC
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
)

// formatInfo describes a recognized format.
type formatInfo struct {
	name      string
	extension string
	supported bool
}

var formats = map[Format]formatInfo{
	DOCX: {"DOCX", ".docx", true},
	DOC:  {"DOC", ".doc", false},
	ODT:  {"ODT", ".odt", true},
}

// String returns the string representation of the format.
func (f Format) String() string {
	if info, ok := formats[f]; ok {
		return info.name
	}
	return "Unknown"
}

// Extension returns the typical file extension for the format, or "" for
// Unknown.
func (f Format) Extension() string {
	return formats[f].extension
}

// Supported reports whether documents of this format can be analyzed.
func (f Format) Supported() bool {
	return formats[f].supported
}

// Detect determines file format from filename extension, ignoring case.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	for f, info := range formats {
		if info.extension == ext {
			return f
		}
	}
	return Unknown
}

// Signatures at the start of a file.
var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// odtMimeType prefixes the mimetype entry of text documents and templates.
const odtMimeType = "application/vnd.oasis.opendocument.text"

// DetectFromMagic identifies a format from the leading bytes of a file.
// ZIP archives return Unknown because the container alone does not identify
// the format; use DetectFromReader for those.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, oleMagic) {
		return DOC
	}
	return Unknown
}

// DetectFromReader inspects the content to determine format. Unlike Detect
// it can tell a Word package from an OpenDocument one or from any other ZIP
// archive.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, len(oleMagic))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if !bytes.HasPrefix(magic, zipMagic) {
		return DetectFromMagic(magic), nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}
	return detectPackage(zr), nil
}

// detectPackage identifies a ZIP package by its marker entries: an
// OpenDocument mimetype entry, or the main part of a Word document.
func detectPackage(zr *zip.Reader) Format {
	docx := false
	for _, f := range zr.File {
		switch f.Name {
		case "mimetype":
			if readMimeType(f) {
				return ODT
			}
		case "word/document.xml":
			docx = true
		}
	}
	if docx {
		return DOCX
	}
	return Unknown
}

// readMimeType reports whether the mimetype entry names a text document.
func readMimeType(f *zip.File) bool {
	rc, err := f.Open()
	if err != nil {
		return false
	}
	defer rc.Close()

	data, _ := io.ReadAll(io.LimitReader(rc, 256))
	return strings.HasPrefix(strings.TrimSpace(string(data)), odtMimeType)
}
