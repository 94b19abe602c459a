// Package extractor recognizes invoice fields in semi-structured PDF content.
//
// The extractors are heuristic and locale-specific: they target German
// invoice layouts (Bestellung/AUFNR order references, "Gesamtwert EUR"
// totals, the fixed 19,00% MwSt. rate, Kundenanschrift address blocks).
// Every extractor degrades to nil when its pattern does not match; the
// pipeline never fails on missing data and a fully empty record is a valid
// output.
package extractor

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"invoiceqc/internal/logger"
	"invoiceqc/internal/normalize"
	"invoiceqc/internal/pdfdoc"
	"invoiceqc/pkg/models"
)

// Currency is the only currency this extractor emits. The layouts it targets
// carry EUR amounts exclusively, so the record currency is fixed rather than
// recognized.
const Currency = "EUR"

// ItemDescription is the placeholder used for every extracted line item;
// real descriptions are not recovered from the table layout.
const ItemDescription = "Item"

var (
	// Order reference: "Bestellung AUFNR12345". Fallback accepts a bare
	// AUFNR token followed by digits.
	reOrderRef         = regexp.MustCompile(`Bestellung\s+AUFNR\s*([A-Z0-9]+)`)
	reOrderRefFallback = regexp.MustCompile(`AUFNR\s*([0-9]+)`)

	reNetTotal   = regexp.MustCompile(`Gesamtwert\s+EUR\s+([0-9\.,]+)`)
	reTaxAmount  = regexp.MustCompile(`MwSt\.\s*19,00%\s*EUR\s*([0-9\.,]+)`)
	reGrossTotal = regexp.MustCompile(`Gesamtwert inkl\. MwSt\.\s*EUR\s*([0-9\.,]+)`)

	// Buyer name: first line of the address block following "Kundenanschrift".
	reBuyerBlock = regexp.MustCompile(`Kundenanschrift\s+([\s\S]{20,200})`)

	// A table cell counts as numeric when it starts with a numeric token.
	reNumericCell = regexp.MustCompile(`^[0-9\.,]+`)
)

// Service runs the field extractors and assembles invoice records.
type Service struct {
	log zerolog.Logger

	// sellerPattern matches any of the configured known seller names;
	// nil when no sellers are configured.
	sellerPattern *regexp.Regexp
}

// New creates an extraction service. knownSellers is the closed list of
// seller names the name extractor recognizes (first occurrence in document
// order wins); an empty list disables seller recognition.
func New(knownSellers []string) *Service {
	s := &Service{
		log: logger.WithComponent("extractor"),
	}
	if len(knownSellers) > 0 {
		quoted := make([]string, len(knownSellers))
		for i, name := range knownSellers {
			quoted[i] = regexp.QuoteMeta(name)
		}
		s.sellerPattern = regexp.MustCompile(strings.Join(quoted, "|"))
	}
	return s
}

// Extract runs every field extractor against doc and assembles the
// normalized invoice record. The text extractors scan the concatenated page
// texts; the line-item extractor scans the recovered page tables.
func (s *Service) Extract(doc pdfdoc.Document) *models.InvoiceRecord {
	text := corpus(doc)

	invoiceID := s.ExtractInvoiceID(text)
	total, tax, totalWithTax := s.ExtractTotals(text)
	buyer, seller := s.ExtractNames(text)
	items := s.ExtractLineItems(doc)
	if items == nil {
		items = []models.LineItem{}
	}

	record := &models.InvoiceRecord{
		InvoiceID:    invoiceID,
		InvoiceDate:  "", // not present in the targeted layouts
		BuyerName:    buyer,
		SellerName:   seller,
		TotalAmount:  total,
		TaxAmount:    tax,
		TotalWithTax: totalWithTax,
		Currency:     Currency,
		LineItems:    items,
	}

	s.log.Debug().
		Bool("has_invoice_id", invoiceID != nil).
		Bool("has_total", total != nil).
		Int("line_items", len(items)).
		Msg("Extraction completed")

	return record
}

// ExtractInvoiceID locates the order reference. The primary pattern requires
// the "Bestellung" prefix; the fallback accepts any digit run after "AUFNR".
// The first match in document order wins.
func (s *Service) ExtractInvoiceID(text string) *string {
	if m := reOrderRef.FindStringSubmatch(text); m != nil {
		return models.String("AUFNR" + m[1])
	}
	if m := reOrderRefFallback.FindStringSubmatch(text); m != nil {
		return models.String("AUFNR" + m[1])
	}
	return nil
}

// ExtractTotals locates the net total, the 19% MwSt. amount and the gross
// total. The three searches are independent: a missing amount does not block
// the others. Only the fixed 19,00% rate is recognized; other rates yield nil.
func (s *Service) ExtractTotals(text string) (total, tax, totalWithTax *float64) {
	if m := reNetTotal.FindStringSubmatch(text); m != nil {
		total = normalize.Number(m[1])
	}
	if m := reTaxAmount.FindStringSubmatch(text); m != nil {
		tax = normalize.Number(m[1])
	}
	if m := reGrossTotal.FindStringSubmatch(text); m != nil {
		totalWithTax = normalize.Number(m[1])
	}
	return total, tax, totalWithTax
}

// ExtractNames locates the buyer and seller names. The buyer is the first
// line of the address block following "Kundenanschrift". The seller is the
// first occurrence of any configured known seller name; this is a lookup
// against a fixed list, not a general heuristic.
func (s *Service) ExtractNames(text string) (buyer, seller *string) {
	if m := reBuyerBlock.FindStringSubmatch(text); m != nil {
		block := normalize.Text(m[1])
		if block != "" {
			line := normalize.Text(strings.SplitN(block, "\n", 2)[0])
			buyer = models.String(line)
		}
	}

	if s.sellerPattern != nil {
		if m := s.sellerPattern.FindString(text); m != "" {
			seller = models.String(m)
		}
	}

	return buyer, seller
}

// ExtractLineItems scans every recovered table on every page for price-bearing
// rows and emits line items in document scan order (page, table, row).
//
// A row is a candidate when its joined lowercase text contains "ve" (the
// packaging-unit column of the targeted layout) and at least one cell carries
// a comma, the signal for a German-formatted decimal. Candidate rows need at
// least two numeric cells; the first becomes the quantity, the second the
// unit price and the last the line total, skipping any intermediate columns.
func (s *Service) ExtractLineItems(doc pdfdoc.Document) []models.LineItem {
	var items []models.LineItem

	for p := 0; p < doc.PageCount(); p++ {
		for _, table := range doc.PageTables(p) {
			// Header-only or empty tables carry no items.
			if len(table) < 2 {
				continue
			}

			for _, row := range table {
				if !isCandidateRow(row) {
					continue
				}

				var numbers []*float64
				for _, cell := range row {
					if cell != "" && reNumericCell.MatchString(cell) {
						numbers = append(numbers, normalize.Number(cell))
					}
				}
				if len(numbers) < 2 {
					continue
				}

				items = append(items, models.LineItem{
					Description: ItemDescription,
					Quantity:    numbers[0],
					UnitPrice:   numbers[1],
					LineTotal:   numbers[len(numbers)-1],
				})
			}
		}
	}

	return items
}

// isCandidateRow reports whether a table row looks like a line item.
func isCandidateRow(row []string) bool {
	joined := strings.ToLower(strings.Join(row, " "))
	if !strings.Contains(joined, "ve") {
		return false
	}
	for _, cell := range row {
		if cell != "" && strings.Contains(cell, ",") {
			return true
		}
	}
	return false
}

// corpus concatenates the text of every page, each preceded by a newline, as
// the search text for all text-based extractors.
func corpus(doc pdfdoc.Document) string {
	var b strings.Builder
	for i := 0; i < doc.PageCount(); i++ {
		b.WriteString("\n")
		b.WriteString(doc.PageText(i))
	}
	return b.String()
}
