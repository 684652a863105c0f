// Package format provides input format detection for the htmltable
// library, so obviously foreign inputs (PDFs, ZIP-based office files)
// fail with a useful error instead of being fed to the HTML parser.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML or XHTML document.
	HTML
	// PDF indicates a PDF document.
	PDF
	// Archive indicates a ZIP container (xlsx, docx, odt, epub).
	Archive
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case PDF:
		return "PDF"
	case Archive:
		return "ZIP archive"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case PDF:
		return ".pdf"
	case Archive:
		return ".zip"
	default:
		return ""
	}
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".pdf":
		return PDF
	case ".xlsx", ".docx", ".pptx", ".odt", ".epub", ".zip":
		return Archive
	default:
		return Unknown
	}
}

var htmlSignatures = [][]byte{
	[]byte("<!doctype html"),
	[]byte("<html"),
	[]byte("<head"),
	[]byte("<body"),
	[]byte("<table"),
	[]byte("<?xml"),
}

// DetectFromMagic checks leading bytes to determine format. This provides
// more reliable detection than extension-based detection. Returns Unknown
// if the format cannot be determined from the bytes alone; since the HTML
// parser is lenient, unrecognized input is still worth handing to it.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// ZIP magic (xlsx, docx, odt are ZIP archives): PK\x03\x04
	if bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}) {
		return Archive
	}

	// Skip a UTF-8 BOM and leading whitespace before looking for markup.
	trimmed := bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	trimmed = bytes.TrimLeft(trimmed, " \t\r\n")

	lower := bytes.ToLower(trimmed)
	for _, sig := range htmlSignatures {
		if bytes.HasPrefix(lower, sig) {
			return HTML
		}
	}

	return Unknown
}
