package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill-backend/internal/models"
	"gstbill-backend/internal/timeutil"
)

func testCompanyProfile() *models.CompanyProfile {
	return &models.CompanyProfile{
		Name:          "Sharma Electricals",
		GSTIN:         "27AAPFU0939F1ZV",
		Address:       "14 MG Road",
		City:          "Pune",
		State:         "Maharashtra",
		Pincode:       "411001",
		Phone:         "9800000000",
		BankName:      "SBI",
		BankAccountNo: "123456789",
		BankIFSC:      "SBIN0000001",
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	svc := NewPDFService()
	invoice := &models.InvoiceWithItems{
		Invoice: models.Invoice{
			InvoiceNumber:     "INV-1001",
			InvoiceDate:       timeutil.Now(),
			CustomerName:      "Gupta Traders",
			CustomerGSTIN:     "29AAPFU0939F1ZV",
			InterState:        true,
			TotalTaxableValue: 200,
			TotalIGST:         36,
			TotalAmount:       236,
			AmountInWords:     "Two Hundred Thirty Six Rupees Only",
			Status:            models.StatusCredit,
		},
		Items: []models.InvoiceItem{
			{Description: "Copper Wire 1.5mm", HSNCode: "8544", Quantity: 2, Rate: 100,
				TaxRate: 18, TaxableValue: 200, IGST: 36, LineTotal: 236},
		},
	}

	data, err := svc.GenerateInvoicePDF(testCompanyProfile(), invoice)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateInvoicePDF_WalkInIntraState(t *testing.T) {
	svc := NewPDFService()
	invoice := &models.InvoiceWithItems{
		Invoice: models.Invoice{
			InvoiceNumber:     "INV-1002",
			InvoiceDate:       timeutil.Now(),
			TotalTaxableValue: 100,
			TotalCGST:         9,
			TotalSGST:         9,
			TotalAmount:       118,
			AmountInWords:     "One Hundred Eighteen Rupees Only",
			Status:            models.StatusPaid,
		},
		Items: []models.InvoiceItem{
			{Description: "Switch Board", Quantity: 1, Rate: 100, TaxRate: 18,
				TaxableValue: 100, CGST: 9, SGST: 9, LineTotal: 118},
		},
	}

	data, err := svc.GenerateInvoicePDF(testCompanyProfile(), invoice)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
