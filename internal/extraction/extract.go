// Package extraction turns raw resume document bytes into plain text.
//
// Extraction is deliberately best-effort: the PDF path is a lossy heuristic
// scan rather than a faithful text-layer decode, and callers must treat the
// output as approximate. Only a document whose kind is unsupported, or whose
// content yields nothing at all, fails the call.
package extraction

import (
	"path/filepath"
	"strings"
)

// Kind identifies the document container format.
type Kind string

// Supported document kinds.
const (
	KindPDF     Kind = "pdf"
	KindDOC     Kind = "doc"
	KindDOCX    Kind = "docx"
	KindUnknown Kind = "unknown"
)

// RawDocument is an immutable byte buffer plus its declared media kind.
// It exists only between upload and parse.
type RawDocument struct {
	Data      []byte
	Kind      Kind
	Name      string
	MediaType string
}

// NewRawDocument builds a RawDocument, resolving the kind from the declared
// media type with the filename extension as a tie-breaker.
func NewRawDocument(data []byte, mediaType, filename string) RawDocument {
	return RawDocument{
		Data:      data,
		Kind:      DetectKind(mediaType, filename),
		Name:      filename,
		MediaType: mediaType,
	}
}

// DetectKind maps a declared media type and filename onto a document kind.
// Unrecognized inputs map to KindUnknown rather than guessing from content.
func DetectKind(mediaType, filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "application/pdf":
		return KindPDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return KindDOCX
	case "application/msword":
		return KindDOC
	}
	switch ext {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	case ".doc":
		return KindDOC
	}
	return KindUnknown
}

// ExtractText dispatches on the document kind and returns plain text.
// An unknown kind fails with UnsupportedFormatError before any extraction
// attempt; a supported kind that yields no usable text fails with
// ExtractionError.
func ExtractText(doc RawDocument) (string, error) {
	switch doc.Kind {
	case KindPDF:
		return extractPDF(doc.Data)
	case KindDOCX:
		return extractDOCX(doc.Data)
	case KindDOC:
		return extractDOC(doc.Data)
	default:
		return "", &UnsupportedFormatError{MediaType: doc.MediaType, Filename: doc.Name}
	}
}
