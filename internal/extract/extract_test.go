package extract

import (
	"errors"
	"strings"
	"testing"
)

const maxBytes = 10 << 20

func TestTextUnsupportedType(t *testing.T) {
	_, err := Text("image/png", []byte("data"), maxBytes)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestTextEmptyFile(t *testing.T) {
	_, err := Text(TypePlain, nil, maxBytes)
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("err = %v, want ErrEmptyFile", err)
	}
}

func TestTextTooLarge(t *testing.T) {
	_, err := Text(TypePlain, make([]byte, 11), 10)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestTextPlain(t *testing.T) {
	got, err := Text(TypePlain, []byte("Python and Docker\nand more"), maxBytes)
	if err != nil {
		t.Fatalf("plain text: %v", err)
	}
	if got != "Python and Docker\nand more" {
		t.Fatalf("got %q", got)
	}
}

func TestTextPlainInvalidUTF8(t *testing.T) {
	// Undecodable bytes are dropped, never an error.
	got, err := Text(TypePlain, []byte{'o', 'k', 0xff, 0xfe, '!'}, maxBytes)
	if err != nil {
		t.Fatalf("invalid utf-8: %v", err)
	}
	if !strings.Contains(got, "ok") || !strings.Contains(got, "!") {
		t.Fatalf("got %q", got)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text(TypePDF, []byte("this is not a pdf"), maxBytes)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if parseErr.Format != "PDF" {
		t.Fatalf("format = %q", parseErr.Format)
	}
}

func TestTextCorruptDocx(t *testing.T) {
	for _, contentType := range []string{TypeDocx, TypeDoc} {
		_, err := Text(contentType, []byte("this is not a docx"), maxBytes)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%s: err = %v, want *ParseError", contentType, err)
		}
	}
}

func TestSupported(t *testing.T) {
	for _, ct := range []string{TypePDF, TypeDocx, TypeDoc, TypePlain} {
		if !Supported(ct) {
			t.Fatalf("%s should be supported", ct)
		}
	}
	if Supported("application/json") {
		t.Fatal("application/json should not be supported")
	}
}
