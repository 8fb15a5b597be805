package gst

import "math"

// LineItem is one editable row of an invoice as entered on the form.
// Validation (positive quantity, known tax slabs) happens upstream;
// the engine accepts whatever arithmetic it is given.
type LineItem struct {
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Discount float64 `json:"discount"`
	TaxRate  float64 `json:"tax_rate"`
}

// LineTax is the computed tax split for a single taxable value.
type LineTax struct {
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	IGST        float64 `json:"igst"`
	TotalTax    float64 `json:"total_tax"`
	TotalAmount float64 `json:"total_amount"`
}

// InvoiceTotals aggregates all line items of one invoice.
// Every field is rounded to 2 decimals, independently, at the aggregate
// level only - per-line values stay unrounded.
type InvoiceTotals struct {
	Subtotal          float64 `json:"subtotal"`
	TotalTaxableValue float64 `json:"total_taxable_value"`
	TotalCGST         float64 `json:"total_cgst"`
	TotalSGST         float64 `json:"total_sgst"`
	TotalIGST         float64 `json:"total_igst"`
	TotalAmount       float64 `json:"total_amount"`
}

// stateCode extracts the 2-digit state code prefix of a GSTIN.
// Identifiers shorter than 2 characters degrade to an empty code
// instead of erroring - callers validate format upstream.
func stateCode(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

// DetermineJurisdiction reports whether a sale is inter-state.
// A missing customer GSTIN means a B2C sale, which is always billed
// intra-state regardless of where the customer actually is.
func DetermineJurisdiction(supplierGSTIN, customerGSTIN string) bool {
	if customerGSTIN == "" {
		return false
	}
	return stateCode(supplierGSTIN) != stateCode(customerGSTIN)
}

// ComputeLineTax splits the tax on a taxable value between CGST/SGST
// (intra-state, exact halves) or IGST (inter-state, full amount).
// Negative taxable values from oversized discounts pass through.
func ComputeLineTax(taxableValue, taxRatePercent float64, interState bool) LineTax {
	grossTax := taxableValue * taxRatePercent / 100

	tax := LineTax{
		TotalTax:    grossTax,
		TotalAmount: taxableValue + grossTax,
	}
	if interState {
		tax.IGST = grossTax
	} else {
		tax.CGST = grossTax / 2
		tax.SGST = grossTax / 2
	}
	return tax
}

// ComputeInvoiceTotals recomputes aggregate totals from the authoritative
// item list. The jurisdiction is determined once for the whole invoice,
// never per line. An empty item list yields all-zero totals.
func ComputeInvoiceTotals(items []LineItem, supplierGSTIN, customerGSTIN string) InvoiceTotals {
	interState := DetermineJurisdiction(supplierGSTIN, customerGSTIN)

	var totals InvoiceTotals
	for _, item := range items {
		gross := item.Quantity * item.Rate
		taxableValue := gross - item.Discount
		tax := ComputeLineTax(taxableValue, item.TaxRate, interState)

		totals.Subtotal += gross
		totals.TotalTaxableValue += taxableValue
		totals.TotalCGST += tax.CGST
		totals.TotalSGST += tax.SGST
		totals.TotalIGST += tax.IGST
		totals.TotalAmount += tax.TotalAmount
	}

	totals.Subtotal = round2(totals.Subtotal)
	totals.TotalTaxableValue = round2(totals.TotalTaxableValue)
	totals.TotalCGST = round2(totals.TotalCGST)
	totals.TotalSGST = round2(totals.TotalSGST)
	totals.TotalIGST = round2(totals.TotalIGST)
	totals.TotalAmount = round2(totals.TotalAmount)
	return totals
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
