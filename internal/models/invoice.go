package models

import "time"

// Invoice statuses stored at the persistence boundary. The UI also
// shows DRAFT and SENT labels; those collapse to CREDIT on save.
const (
	StatusCredit = "CREDIT"
	StatusPaid   = "PAID"
)

// NormalizeStatus maps any status label to the two-state storage
// enumeration: exactly "PAID" stays PAID, everything else is CREDIT.
func NormalizeStatus(status string) string {
	if status == StatusPaid {
		return StatusPaid
	}
	return StatusCredit
}

// Invoice is the immutable snapshot persisted on save. Customer details
// are denormalized and the totals plus amount-in-words are point-in-time
// values, never recomputed from the stored record.
type Invoice struct {
	ID              int       `json:"id"`
	InvoiceNumber   string    `json:"invoice_number"`
	InvoiceDate     time.Time `json:"invoice_date"`
	CustomerID      *int      `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerAddress string    `json:"customer_address"`
	CustomerGSTIN   string    `json:"customer_gstin"`
	InterState      bool      `json:"inter_state"`

	Subtotal          float64 `json:"subtotal"`
	TotalTaxableValue float64 `json:"total_taxable_value"`
	TotalCGST         float64 `json:"total_cgst"`
	TotalSGST         float64 `json:"total_sgst"`
	TotalIGST         float64 `json:"total_igst"`
	TotalAmount       float64 `json:"total_amount"`
	AmountInWords     string  `json:"amount_in_words"`

	Notes     string    `json:"notes"`
	Status    string    `json:"status"` // CREDIT or PAID
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvoiceItem is a persisted line with its computed per-line fields.
type InvoiceItem struct {
	ID           int     `json:"id"`
	InvoiceID    int     `json:"invoice_id"`
	ProductID    *int    `json:"product_id"`
	Description  string  `json:"description"`
	HSNCode      string  `json:"hsn_code"`
	Quantity     float64 `json:"quantity"`
	Rate         float64 `json:"rate"`
	Discount     float64 `json:"discount"`
	TaxRate      float64 `json:"tax_rate"`
	TaxableValue float64 `json:"taxable_value"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	LineTotal    float64 `json:"line_total"`
}

// CreateInvoiceItemRequest is one form row; computed fields are ignored
// on input and always recomputed server-side.
type CreateInvoiceItemRequest struct {
	ProductID   *int    `json:"product_id"`
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Discount    float64 `json:"discount"`
	TaxRate     float64 `json:"tax_rate"`
}

// CreateInvoiceRequest represents the request to create an invoice.
// InvoiceNumber may be empty (the next sequence number is used) or
// freely edited by the user.
type CreateInvoiceRequest struct {
	InvoiceNumber string                     `json:"invoice_number"`
	InvoiceDate   string                     `json:"invoice_date"` // 2006-01-02, IST; empty = today
	CustomerID    *int                       `json:"customer_id"`
	Notes         string                     `json:"notes"`
	Status        string                     `json:"status"`
	Items         []CreateInvoiceItemRequest `json:"items"`
}

// InvoiceWithItems includes the line items for detail views and printing.
type InvoiceWithItems struct {
	Invoice
	Items []InvoiceItem `json:"items"`
}

// NumberingState is the stored invoice numbering counter: the next
// invoice defaults to Prefix + (LastNumber + 1).
type NumberingState struct {
	Prefix     string    `json:"prefix"`
	LastNumber int       `json:"last_number"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateNumberingRequest represents the request body for editing the counter
type UpdateNumberingRequest struct {
	Prefix     string `json:"prefix"`
	LastNumber int    `json:"last_number"`
}

// UpdateInvoiceStatusRequest represents the request body for a status change
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}
