package pdfdoc

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"invoiceqc/internal/logger"
)

// Open reads the PDF at path and extracts all page contents in one pass.
func Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DocumentError{Op: "Open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &DocumentError{Op: "Open", Path: path, Err: err}
	}
	if info.Size() == 0 {
		return nil, &DocumentError{Op: "Open", Path: path, Err: ErrEmptyDocument}
	}

	doc, err := load(f, info.Size())
	if err != nil {
		return nil, &DocumentError{Op: "Open", Path: path, Err: err}
	}
	return doc, nil
}

// Read extracts all page contents from PDF data supplied by r.
func Read(r io.Reader) (Document, error) {
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(r)
	if err != nil {
		return nil, &DocumentError{Op: "Read", Err: err}
	}
	if size == 0 {
		return nil, &DocumentError{Op: "Read", Err: ErrEmptyDocument}
	}

	doc, err := load(bytes.NewReader(buf.Bytes()), size)
	if err != nil {
		return nil, &DocumentError{Op: "Read", Err: err}
	}
	return doc, nil
}

// load walks every page once and captures its text and recovered tables.
// The row grouping of GetTextByRow stands in for real table detection: each
// page yields one table whose rows are the positional text rows and whose
// cells are the words of a row. Pages that fail to extract degrade to empty
// content rather than failing the whole document.
func load(ra io.ReaderAt, size int64) (Document, error) {
	log := logger.WithComponent("pdfdoc")

	reader, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, ErrInvalidPDF
	}

	numPages := reader.NumPage()
	doc := &Static{
		Texts:  make([]string, numPages),
		Tables: make([][]Table, numPages),
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			log.Warn().
				Err(err).
				Int("page", i).
				Msg("Failed to extract page rows, leaving page empty")
			continue
		}

		var text strings.Builder
		var table Table
		for _, row := range rows {
			var cells []string
			for _, word := range row.Content {
				cells = append(cells, word.S)
			}
			if len(cells) == 0 {
				continue
			}
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			text.WriteString(strings.Join(cells, " "))
			table = append(table, cells)
		}

		doc.Texts[i-1] = text.String()
		if len(table) > 0 {
			doc.Tables[i-1] = []Table{table}
		}
	}

	return doc, nil
}
