package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gstbill-backend/internal/models"
	"gstbill-backend/internal/timeutil"
)

func TestGenerateInvoiceRegister(t *testing.T) {
	svc := NewExportService()
	invoices := []*models.Invoice{
		{
			InvoiceNumber:     "INV-1001",
			InvoiceDate:       timeutil.Now(),
			CustomerName:      "Gupta Traders",
			CustomerGSTIN:     "29AAPFU0939F1ZV",
			InterState:        true,
			TotalTaxableValue: 200,
			TotalIGST:         36,
			TotalAmount:       236,
			Status:            models.StatusCredit,
		},
		{
			InvoiceNumber: "INV-1002",
			InvoiceDate:   timeutil.Now(),
			TotalAmount:   118,
			Status:        models.StatusPaid,
		},
	}

	data, err := svc.GenerateInvoiceRegister(invoices)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	number, err := f.GetCellValue("Invoices", "B2")
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", number)

	supplyType, err := f.GetCellValue("Invoices", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Inter-State", supplyType)

	gstin, err := f.GetCellValue("Invoices", "E3")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered", gstin)
}

func TestGenerateInvoiceRegister_Empty(t *testing.T) {
	svc := NewExportService()

	data, err := svc.GenerateInvoiceRegister(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
