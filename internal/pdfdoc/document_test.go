package pdfdoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStaticBounds(t *testing.T) {
	doc := &Static{
		Texts: []string{"erste Seite", "zweite Seite"},
		Tables: [][]Table{
			{{{"a", "b"}}},
		},
	}

	if got := doc.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}
	if got := doc.PageText(1); got != "zweite Seite" {
		t.Errorf("PageText(1) = %q", got)
	}
	if got := doc.PageText(5); got != "" {
		t.Errorf("PageText(5) = %q, want empty", got)
	}
	if got := doc.PageTables(0); len(got) != 1 {
		t.Errorf("PageTables(0) = %v, want one table", got)
	}
	if got := doc.PageTables(1); got != nil {
		t.Errorf("PageTables(1) = %v, want nil", got)
	}
	if got := doc.PageTables(-1); got != nil {
		t.Errorf("PageTables(-1) = %v, want nil", got)
	}
}

func TestReadRejectsEmptyInput(t *testing.T) {
	_, err := Read(bytes.NewReader(nil))
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Read(empty) = %v, want ErrEmptyDocument", err)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("definitely not a PDF document"))
	if !errors.Is(err, ErrInvalidPDF) {
		t.Errorf("Read(garbage) = %v, want ErrInvalidPDF", err)
	}

	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("Read(garbage) error type = %T, want *DocumentError", err)
	}
	if docErr.Op != "Read" {
		t.Errorf("Op = %q, want Read", docErr.Op)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("does-not-exist.pdf")
	if err == nil {
		t.Fatal("Open(missing) = nil error")
	}

	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("Open(missing) error type = %T, want *DocumentError", err)
	}
	if docErr.Path != "does-not-exist.pdf" {
		t.Errorf("Path = %q", docErr.Path)
	}
}
