package normalize

import "testing"

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{name: "thousands and decimal separator", raw: "1.234,56", want: 1234.56, ok: true},
		{name: "decimal separator only", raw: "64,00", want: 64, ok: true},
		{name: "plain integer", raw: "1000", want: 1000, ok: true},
		{name: "thousands separator only", raw: "1.000", want: 1000, ok: true},
		{name: "empty input", raw: "", ok: false},
		{name: "non-numeric", raw: "abc", ok: false},
		{name: "separator without digits", raw: ",", ok: false},
		{name: "trailing text", raw: "64,00 EUR", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Number(tt.raw)
			if !tt.ok {
				if got != nil {
					t.Fatalf("Number(%q) = %v, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Number(%q) = nil, want %v", tt.raw, tt.want)
			}
			if *got != tt.want {
				t.Errorf("Number(%q) = %v, want %v", tt.raw, *got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	if got := Text("  Musterfirma GmbH \n"); got != "Musterfirma GmbH" {
		t.Errorf("Text() = %q, want %q", got, "Musterfirma GmbH")
	}
	if got := Text("   "); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}
