package extractor_test

import (
	"fmt"

	"invoiceqc/internal/config"
	"invoiceqc/internal/extractor"
	"invoiceqc/internal/pdfdoc"
)

// Example demonstrates extracting a record from pre-extracted page content.
// Production callers obtain the document via pdfdoc.Open or pdfdoc.Read.
func Example() {
	doc := &pdfdoc.Static{
		Texts: []string{
			"Bestellung AUFNR12345\n" +
				"Kundenanschrift\n" +
				"Musterfirma GmbH\n" +
				"Musterstraße 1, 79100 Freiburg\n" +
				"Gesamtwert EUR 216,00",
		},
		Tables: [][]pdfdoc.Table{
			{
				{
					{"Artikel", "VE", "Menge", "Preis", "Gesamt"},
					{"Schrauben", "VE", "4,00", "54,00", "216,00"},
				},
			},
		},
	}

	svc := extractor.New(config.DefaultKnownSellers)
	record := svc.Extract(doc)

	fmt.Printf("%s %s %.2f %s, %d item(s)\n",
		*record.InvoiceID,
		*record.BuyerName,
		*record.TotalAmount,
		record.Currency,
		len(record.LineItems))
	// Output: AUFNR12345 Musterfirma GmbH 216.00 EUR, 1 item(s)
}
