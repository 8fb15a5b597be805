package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill-backend/internal/models"
)

type fakeNumbering struct {
	state   models.NumberingState
	setCall *struct {
		prefix     string
		lastNumber int
	}
	setErr error
}

func (f *fakeNumbering) Get(ctx context.Context) (*models.NumberingState, error) {
	state := f.state
	return &state, nil
}

func (f *fakeNumbering) Set(ctx context.Context, prefix string, lastNumber int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCall = &struct {
		prefix     string
		lastNumber int
	}{prefix, lastNumber}
	return nil
}

func TestAdvanceCounter(t *testing.T) {
	tests := []struct {
		name          string
		invoiceNumber string
		wantSet       bool
		wantPrefix    string
		wantLast      int
	}{
		{"sequence shaped", "INV-2031", true, "INV-", 2031},
		{"custom prefix", "BILL-7", true, "BILL-", 7},
		{"no prefix", "2031", false, "", 0},
		{"digits inside prefix", "INV1-23A", false, "", 0},
		{"free text", "draft", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeNumbering{}
			svc := &InvoiceService{Numbering: store}

			svc.advanceCounter(context.Background(), tt.invoiceNumber)

			if !tt.wantSet {
				assert.Nil(t, store.setCall, "counter must not advance")
				return
			}
			require.NotNil(t, store.setCall, "counter should advance")
			assert.Equal(t, tt.wantPrefix, store.setCall.prefix)
			assert.Equal(t, tt.wantLast, store.setCall.lastNumber)
		})
	}
}

func TestAdvanceCounter_StoreFailureIsSwallowed(t *testing.T) {
	store := &fakeNumbering{setErr: errors.New("connection reset")}
	svc := &InvoiceService{Numbering: store}

	// Must not panic or surface the error in any way.
	svc.advanceCounter(context.Background(), "INV-1001")
}

func TestNextInvoiceNumber_Preview(t *testing.T) {
	store := &fakeNumbering{state: models.NumberingState{Prefix: "INV-", LastNumber: 1000}}
	svc := &InvoiceService{Numbering: store}

	number, err := svc.NextInvoiceNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", number)
	assert.Nil(t, store.setCall, "preview must not advance the counter")
}

func TestBuildInvoiceSnapshot_InterState(t *testing.T) {
	profile := &models.CompanyProfile{GSTIN: "27AAPFU0939F1ZV"}
	customer := &models.Customer{
		ID:      7,
		Name:    "Sharma Traders",
		Address: "Jaipur",
		GSTIN:   "29AAPFU0939F1ZV",
	}
	req := &models.CreateInvoiceRequest{
		InvoiceNumber: "INV-1001",
		Items: []models.CreateInvoiceItemRequest{
			{Description: "Widget", Quantity: 2, Rate: 100, TaxRate: 18},
		},
	}

	invoice, items := buildInvoiceSnapshot(req, profile, customer, time.Now())

	assert.True(t, invoice.InterState)
	require.Len(t, items, 1)
	assert.InDelta(t, 200.0, items[0].TaxableValue, 0.001)
	assert.InDelta(t, 36.0, items[0].IGST, 0.001)
	assert.InDelta(t, 0.0, items[0].CGST, 0.001)
	assert.InDelta(t, 236.0, invoice.TotalAmount, 0.001)
	assert.Equal(t, "Two Hundred Thirty Six Rupees Only", invoice.AmountInWords)
	assert.Equal(t, "Sharma Traders", invoice.CustomerName)
	assert.Equal(t, models.StatusCredit, invoice.Status)
}

func TestBuildInvoiceSnapshot_WalkInCustomerIsIntraState(t *testing.T) {
	profile := &models.CompanyProfile{GSTIN: "27AAPFU0939F1ZV"}
	req := &models.CreateInvoiceRequest{
		InvoiceNumber: "INV-1002",
		Status:        "PAID",
		Items: []models.CreateInvoiceItemRequest{
			{Description: "Widget", Quantity: 1, Rate: 100, TaxRate: 18},
		},
	}

	invoice, _ := buildInvoiceSnapshot(req, profile, nil, time.Now())

	assert.False(t, invoice.InterState)
	assert.InDelta(t, 9.0, invoice.TotalCGST, 0.001)
	assert.InDelta(t, 9.0, invoice.TotalSGST, 0.001)
	assert.InDelta(t, 0.0, invoice.TotalIGST, 0.001)
	assert.Nil(t, invoice.CustomerID)
	assert.Equal(t, models.StatusPaid, invoice.Status)
}

func TestBuildInvoiceSnapshot_StatusCoercion(t *testing.T) {
	profile := &models.CompanyProfile{GSTIN: "27AAPFU0939F1ZV"}
	for _, status := range []string{"", "DRAFT", "SENT", "paid", "OVERDUE"} {
		req := &models.CreateInvoiceRequest{InvoiceNumber: "INV-1003", Status: status}
		invoice, _ := buildInvoiceSnapshot(req, profile, nil, time.Now())
		assert.Equal(t, models.StatusCredit, invoice.Status, "status %q", status)
	}
}

func TestBuildInvoiceSnapshot_InvoiceDate(t *testing.T) {
	profile := &models.CompanyProfile{GSTIN: "27AAPFU0939F1ZV"}
	req := &models.CreateInvoiceRequest{InvoiceNumber: "INV-1004", InvoiceDate: "2026-04-01"}

	invoice, _ := buildInvoiceSnapshot(req, profile, nil, time.Now())

	assert.Equal(t, 2026, invoice.InvoiceDate.Year())
	assert.Equal(t, time.April, invoice.InvoiceDate.Month())
	assert.Equal(t, 1, invoice.InvoiceDate.Day())
}
