package services

import (
	"bytes"
	"fmt"

	"gstbill-backend/internal/models"
	"gstbill-backend/internal/timeutil"

	"github.com/xuri/excelize/v2"
)

// ExportService builds the invoice register spreadsheet the accountant
// hands over at GST filing time.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// GenerateInvoiceRegister writes all invoices to a single-sheet xlsx,
// one row per invoice with the stored aggregate tax amounts.
func (s *ExportService) GenerateInvoiceRegister(invoices []*models.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Invoices"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"#", "Invoice No", "Date", "Customer", "GSTIN", "Type",
		"Taxable Value", "CGST", "SGST", "IGST", "Total", "Status",
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, inv := range invoices {
		supplyType := "Intra-State"
		if inv.InterState {
			supplyType = "Inter-State"
		}
		customerGSTIN := inv.CustomerGSTIN
		if customerGSTIN == "" {
			customerGSTIN = "Unregistered"
		}

		values := []interface{}{
			i + 1,
			inv.InvoiceNumber,
			timeutil.FormatIST(inv.InvoiceDate, timeutil.DateLayout),
			inv.CustomerName,
			customerGSTIN,
			supplyType,
			inv.TotalTaxableValue,
			inv.TotalCGST,
			inv.TotalSGST,
			inv.TotalIGST,
			inv.TotalAmount,
			inv.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
