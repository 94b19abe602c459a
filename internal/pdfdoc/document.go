// Package pdfdoc provides read access to the page contents of an invoice
// document: ordered page texts and ordered per-page table structures.
//
// The package decouples the extraction pipeline from any particular PDF
// library. The default implementation is backed by github.com/ledongthuc/pdf
// and recovers tables from positional text rows; Static wraps pre-extracted
// pages for tests and non-PDF callers.
package pdfdoc

// Table is one recovered table: ordered rows of string cells. Cells may be
// empty; rows may have differing lengths.
type Table [][]string

// Document exposes the page-level content the extraction pipeline consumes.
// Page indexes are 0-based and follow document order.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageText returns the extracted text of one page. Pages without
	// extractable text return the empty string.
	PageText(i int) string

	// PageTables returns the table structures recovered from one page, in
	// the order they appear. Pages without tables return nil.
	PageTables(i int) []Table
}

// Static is an in-memory Document built from pre-extracted page contents.
// Texts and Tables are indexed by page; missing entries read as empty.
type Static struct {
	Texts  []string
	Tables [][]Table
}

func (s *Static) PageCount() int {
	if len(s.Texts) > len(s.Tables) {
		return len(s.Texts)
	}
	return len(s.Tables)
}

func (s *Static) PageText(i int) string {
	if i < 0 || i >= len(s.Texts) {
		return ""
	}
	return s.Texts[i]
}

func (s *Static) PageTables(i int) []Table {
	if i < 0 || i >= len(s.Tables) {
		return nil
	}
	return s.Tables[i]
}
