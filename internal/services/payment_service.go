package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math"

	"gstbill-backend/internal/models"
	"gstbill-backend/internal/repositories"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentService creates Razorpay payment links for unpaid invoices and
// marks invoices PAID when the gateway confirms collection.
type PaymentService struct {
	invoiceRepo   *repositories.InvoiceRepository
	keyID         string
	keySecret     string
	webhookSecret string
}

func NewPaymentService(keyID, keySecret, webhookSecret string, invoiceRepo *repositories.InvoiceRepository) *PaymentService {
	return &PaymentService{
		invoiceRepo:   invoiceRepo,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}
}

func (s *PaymentService) client() *razorpay.Client {
	if s.keyID == "" || s.keySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// IsEnabled reports whether gateway credentials are configured.
func (s *PaymentService) IsEnabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

// CreatePaymentLink creates a Razorpay payment link for a CREDIT
// invoice. The amount is the stored grand total converted to paise.
func (s *PaymentService) CreatePaymentLink(ctx context.Context, invoiceID int) (*models.PaymentLinkResponse, error) {
	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("razorpay client not configured")
	}

	invoice, err := s.invoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}
	if invoice.Status == models.StatusPaid {
		return nil, fmt.Errorf("invoice %s is already paid", invoice.InvoiceNumber)
	}

	amountPaise := amountToPaise(invoice.TotalAmount)
	linkData := map[string]interface{}{
		"amount":      amountPaise,
		"currency":    "INR",
		"description": fmt.Sprintf("Payment for invoice %s", invoice.InvoiceNumber),
		"reference_id": invoice.InvoiceNumber,
		"notes": map[string]interface{}{
			"invoice_id":     invoice.ID,
			"invoice_number": invoice.InvoiceNumber,
		},
	}
	if invoice.CustomerName != "" {
		linkData["customer"] = map[string]interface{}{
			"name": invoice.CustomerName,
		}
	}

	link, err := client.PaymentLink.Create(linkData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	resp := &models.PaymentLinkResponse{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        amountPaise,
		Currency:      "INR",
	}
	if id, ok := link["id"].(string); ok {
		resp.LinkID = id
	}
	if url, ok := link["short_url"].(string); ok {
		resp.ShortURL = url
	}
	return resp, nil
}

// amountToPaise converts a rupee total to whole paise. Rounding, not
// truncation: float totals like 19.99 sit just below 1999.0.
func amountToPaise(total float64) int {
	return int(math.Round(total * 100))
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against
// the raw webhook body.
func (s *PaymentService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return true
	}
	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook handles payment link events. A confirmed collection
// flips the referenced invoice to PAID.
func (s *PaymentService) ProcessWebhook(ctx context.Context, event string, payload map[string]interface{}) error {
	if event != "payment_link.paid" {
		log.Printf("[Razorpay] Ignoring webhook event: %s", event)
		return nil
	}

	entity, ok := payload["payment_link"].(map[string]interface{})
	if ok {
		if inner, ok := entity["entity"].(map[string]interface{}); ok {
			entity = inner
		}
	} else {
		entity = payload
	}

	invoiceNumber, _ := entity["reference_id"].(string)
	if invoiceNumber == "" {
		return fmt.Errorf("missing reference_id in webhook")
	}

	invoice, err := s.invoiceRepo.GetByNumber(ctx, invoiceNumber)
	if err != nil {
		return fmt.Errorf("invoice %s not found: %w", invoiceNumber, err)
	}
	if invoice.Status == models.StatusPaid {
		return nil
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, invoice.ID, models.StatusPaid); err != nil {
		return fmt.Errorf("failed to mark invoice paid: %w", err)
	}
	log.Printf("[Razorpay] Invoice %s marked PAID via payment link", invoiceNumber)
	return nil
}
