package gst

import (
	"math"
	"testing"
)

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestDetermineJurisdiction(t *testing.T) {
	tests := []struct {
		name           string
		supplier       string
		customer       string
		wantInterState bool
	}{
		{"same_state", "27AAAAA0000A1Z5", "27BBBBB1111B2Z6", false},
		{"different_state", "27AAAAA0000A1Z5", "29BBBBB1111B2Z6", true},
		{"no_customer_gstin_b2c", "27AAAAA0000A1Z5", "", false},
		{"short_customer_id", "27AAAAA0000A1Z5", "2", true},
		{"both_short_degrade_to_empty", "2", "7", false},
		{"short_supplier_matches_short_customer", "X", "Y", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineJurisdiction(tt.supplier, tt.customer)
			if got != tt.wantInterState {
				t.Errorf("DetermineJurisdiction(%q, %q) = %v, want %v",
					tt.supplier, tt.customer, got, tt.wantInterState)
			}
		})
	}
}

func TestComputeLineTax(t *testing.T) {
	tests := []struct {
		name         string
		taxableValue float64
		rate         float64
		interState   bool
		wantCGST     float64
		wantSGST     float64
		wantIGST     float64
		wantTotal    float64
	}{
		{"intra_state_18", 200, 18, false, 18, 18, 0, 236},
		{"inter_state_18", 200, 18, true, 0, 0, 36, 236},
		{"zero_rate", 500, 0, false, 0, 0, 0, 500},
		{"odd_half_split", 100, 5, false, 2.5, 2.5, 0, 105},
		{"negative_taxable_passthrough", -50, 18, false, -4.5, -4.5, 0, -59},
		{"nonstandard_rate", 100, 7.5, true, 0, 0, 7.5, 107.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLineTax(tt.taxableValue, tt.rate, tt.interState)
			if !floatClose(got.CGST, tt.wantCGST) {
				t.Errorf("CGST = %f, want %f", got.CGST, tt.wantCGST)
			}
			if !floatClose(got.SGST, tt.wantSGST) {
				t.Errorf("SGST = %f, want %f", got.SGST, tt.wantSGST)
			}
			if !floatClose(got.IGST, tt.wantIGST) {
				t.Errorf("IGST = %f, want %f", got.IGST, tt.wantIGST)
			}
			if !floatClose(got.TotalAmount, tt.wantTotal) {
				t.Errorf("TotalAmount = %f, want %f", got.TotalAmount, tt.wantTotal)
			}
			if !floatClose(got.TotalTax, got.CGST+got.SGST+got.IGST) {
				t.Errorf("TotalTax = %f, want sum of splits", got.TotalTax)
			}
		})
	}
}

func TestComputeInvoiceTotals_InterState(t *testing.T) {
	// Supplier in Maharashtra (27), customer in Karnataka (29).
	items := []LineItem{{Quantity: 2, Rate: 100, Discount: 0, TaxRate: 18}}
	got := ComputeInvoiceTotals(items, "27AAAAA0000A1Z5", "29BBBBB1111B2Z6")

	want := InvoiceTotals{
		Subtotal:          200,
		TotalTaxableValue: 200,
		TotalIGST:         36,
		TotalAmount:       236,
	}
	if got != want {
		t.Errorf("ComputeInvoiceTotals = %+v, want %+v", got, want)
	}
}

func TestComputeInvoiceTotals_IntraState(t *testing.T) {
	items := []LineItem{{Quantity: 2, Rate: 100, Discount: 0, TaxRate: 18}}

	// Registered customer in the same state and an unregistered (B2C)
	// customer both split the tax into equal CGST/SGST halves.
	for _, customer := range []string{"27BBBBB1111B2Z6", ""} {
		got := ComputeInvoiceTotals(items, "27AAAAA0000A1Z5", customer)
		want := InvoiceTotals{
			Subtotal:          200,
			TotalTaxableValue: 200,
			TotalCGST:         18,
			TotalSGST:         18,
			TotalAmount:       236,
		}
		if got != want {
			t.Errorf("customer %q: ComputeInvoiceTotals = %+v, want %+v", customer, got, want)
		}
	}
}

func TestComputeInvoiceTotals_EmptyItems(t *testing.T) {
	got := ComputeInvoiceTotals(nil, "27AAAAA0000A1Z5", "")
	if got != (InvoiceTotals{}) {
		t.Errorf("empty item list: got %+v, want all-zero totals", got)
	}
}

func TestComputeInvoiceTotals_DiscountAndAggregateRounding(t *testing.T) {
	items := []LineItem{
		{Quantity: 3, Rate: 123.45, Discount: 10.35, TaxRate: 12},
		{Quantity: 1, Rate: 99.99, Discount: 0, TaxRate: 5},
	}
	got := ComputeInvoiceTotals(items, "27AAAAA0000A1Z5", "27CCCCC2222C3Z7")

	// Subtotal: 370.35 + 99.99 = 470.34
	// Taxable:  360.00 + 99.99 = 459.99
	// Tax:      43.20 + 4.9995 = 48.1995 split into halves
	if !floatClose(got.Subtotal, 470.34) {
		t.Errorf("Subtotal = %f, want 470.34", got.Subtotal)
	}
	if !floatClose(got.TotalTaxableValue, 459.99) {
		t.Errorf("TotalTaxableValue = %f, want 459.99", got.TotalTaxableValue)
	}
	if !floatClose(got.TotalCGST, 24.10) {
		t.Errorf("TotalCGST = %f, want 24.10", got.TotalCGST)
	}
	if got.TotalCGST != got.TotalSGST {
		t.Errorf("CGST %f != SGST %f on intra-state invoice", got.TotalCGST, got.TotalSGST)
	}
	if got.TotalIGST != 0 {
		t.Errorf("TotalIGST = %f, want 0 on intra-state invoice", got.TotalIGST)
	}
	if !floatClose(got.TotalAmount, 508.19) {
		t.Errorf("TotalAmount = %f, want 508.19", got.TotalAmount)
	}
}

func TestComputeInvoiceTotals_Properties(t *testing.T) {
	items := []LineItem{
		{Quantity: 5, Rate: 250, Discount: 25, TaxRate: 28},
		{Quantity: 1.5, Rate: 80, Discount: 0, TaxRate: 5},
		{Quantity: 10, Rate: 12.50, Discount: 2, TaxRate: 0},
	}

	intra := ComputeInvoiceTotals(items, "27AAAAA0000A1Z5", "27BBBBB1111B2Z6")
	if intra.TotalIGST != 0 {
		t.Errorf("intra-state invoice has IGST %f", intra.TotalIGST)
	}
	if intra.TotalCGST != intra.TotalSGST {
		t.Errorf("intra-state CGST %f != SGST %f", intra.TotalCGST, intra.TotalSGST)
	}

	inter := ComputeInvoiceTotals(items, "27AAAAA0000A1Z5", "29BBBBB1111B2Z6")
	if inter.TotalCGST != 0 || inter.TotalSGST != 0 {
		t.Errorf("inter-state invoice has CGST %f / SGST %f", inter.TotalCGST, inter.TotalSGST)
	}
	if inter.TotalIGST <= 0 {
		t.Errorf("inter-state invoice with positive taxable value has IGST %f", inter.TotalIGST)
	}

	// Pure function: recomputation yields identical output.
	again := ComputeInvoiceTotals(items, "27AAAAA0000A1Z5", "27BBBBB1111B2Z6")
	if intra != again {
		t.Errorf("recompute differs: %+v vs %+v", intra, again)
	}
}
