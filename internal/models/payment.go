package models

// PaymentLinkResponse is returned after a Razorpay payment link is
// created for an invoice. Amount is in paise.
type PaymentLinkResponse struct {
	InvoiceID     int    `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	LinkID        string `json:"link_id"`
	ShortURL      string `json:"short_url"`
	Amount        int    `json:"amount"`
	Currency      string `json:"currency"`
}
