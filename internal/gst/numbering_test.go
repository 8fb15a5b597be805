package gst

import "testing"

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		lastNumber int
		want       string
	}{
		{"first_invoice_defaults", DefaultNumberPrefix, DefaultLastNumber, "INV-1001"},
		{"continues_sequence", "INV-", 2030, "INV-2031"},
		{"custom_prefix", "GST-BILL-", 7, "GST-BILL-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextInvoiceNumber(tt.prefix, tt.lastNumber)
			if got != tt.want {
				t.Errorf("NextInvoiceNumber(%q, %d) = %q, want %q",
					tt.prefix, tt.lastNumber, got, tt.want)
			}
		})
	}
}

func TestParseInvoiceNumber(t *testing.T) {
	tests := []struct {
		name       string
		number     string
		wantPrefix string
		wantNumber int
		wantOK     bool
	}{
		{"round_trip", "INV-2031", "INV-", 2031, true},
		{"letters_only_prefix", "BILL123", "BILL", 123, true},
		{"hyphenated_prefix", "ACME-INV-55", "ACME-INV-", 55, true},
		{"no_letter_prefix", "2031", "", 0, false},
		{"digits_in_middle", "INV1-23A", "", 0, false},
		{"no_digits", "INVOICE", "", 0, false},
		{"empty", "", "", 0, false},
		{"backward_number_still_parses", "INV-1", "INV-", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, n, ok := ParseInvoiceNumber(tt.number)
			if ok != tt.wantOK {
				t.Fatalf("ParseInvoiceNumber(%q) ok = %v, want %v", tt.number, ok, tt.wantOK)
			}
			if prefix != tt.wantPrefix || n != tt.wantNumber {
				t.Errorf("ParseInvoiceNumber(%q) = (%q, %d), want (%q, %d)",
					tt.number, prefix, n, tt.wantPrefix, tt.wantNumber)
			}
		})
	}
}
