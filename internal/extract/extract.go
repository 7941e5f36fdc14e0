// Package extract converts uploaded resume documents into plain text,
// dispatched on the declared content type.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	TypePDF   = "application/pdf"
	TypeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeDoc   = "application/msword"
	TypePlain = "text/plain"
)

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// ParseError wraps the underlying extraction failure for a supported format.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error processing %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Supported reports whether the declared content type has an extractor.
func Supported(contentType string) bool {
	switch contentType {
	case TypePDF, TypeDocx, TypeDoc, TypePlain:
		return true
	}
	return false
}

// Text extracts UTF-8 text from raw file bytes. The declared content type is
// validated before any extraction is attempted, and empty or oversized input
// is rejected with a distinct error from parse failure.
func Text(contentType string, data []byte, maxBytes int64) (string, error) {
	if !Supported(contentType) {
		return "", ErrUnsupportedType
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(data)) > maxBytes {
		return "", ErrFileTooLarge
	}

	switch contentType {
	case TypePDF:
		return pdfText(data)
	case TypeDocx, TypeDoc:
		return docxText(data)
	default:
		// Best-effort decode: undecodable bytes are dropped, never an error.
		return strings.ToValidUTF8(string(data), ""), nil
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "PDF", Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page with no extractable text contributes nothing.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "DOCX", Err: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
