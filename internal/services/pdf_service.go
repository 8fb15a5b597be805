package services

import (
	"bytes"
	"fmt"

	"gstbill-backend/internal/models"
	"gstbill-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders GST tax invoices for download and printing.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateInvoicePDF renders a single invoice. The layout switches its
// tax columns on the invoice's stored jurisdiction: CGST and SGST for
// intra-state, a single IGST column otherwise.
func (s *PDFService) GenerateInvoicePDF(company *models.CompanyProfile, invoice *models.InvoiceWithItems) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 5, company.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("%s, %s - %s", company.City, company.State, company.Pincode), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("GSTIN: %s  |  Phone: %s", company.GSTIN, company.Phone), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 9, "TAX INVOICE", "1", 1, "C", false, 0, "")

	// Invoice meta + customer box
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Invoice No: %s", invoice.InvoiceNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", timeutil.FormatIST(invoice.InvoiceDate, "02-Jan-2006")), "RB", 1, "L", false, 0, "")

	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 7, "Bill To", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	customerName := invoice.CustomerName
	if customerName == "" {
		customerName = "Cash / Walk-in Customer"
	}
	pdf.CellFormat(190, 6, customerName, "LR", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, invoice.CustomerAddress, "LR", 1, "L", false, 0, "")
	gstinLine := "GSTIN: Unregistered"
	if invoice.CustomerGSTIN != "" {
		gstinLine = fmt.Sprintf("GSTIN: %s", invoice.CustomerGSTIN)
	}
	pdf.CellFormat(190, 6, gstinLine, "LRB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Items table header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "HSN", "1", 0, "C", true, 0, "")
	pdf.CellFormat(15, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Taxable", "1", 0, "C", true, 0, "")
	if invoice.InterState {
		pdf.CellFormat(20, 7, "IGST", "1", 0, "C", true, 0, "")
	} else {
		pdf.CellFormat(10, 7, "CGST", "1", 0, "C", true, 0, "")
		pdf.CellFormat(10, 7, "SGST", "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(25, 7, "Amount", "1", 1, "C", true, 0, "")

	// Items rows
	pdf.SetFont("Arial", "", 9)
	for i, item := range invoice.Items {
		description := item.Description
		if len(description) > 30 {
			description = description[:27] + "..."
		}
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, item.HSNCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", item.TaxableValue), "1", 0, "R", false, 0, "")
		if invoice.InterState {
			pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", item.IGST), "1", 0, "R", false, 0, "")
		} else {
			pdf.CellFormat(10, 6, fmt.Sprintf("%.2f", item.CGST), "1", 0, "R", false, 0, "")
			pdf.CellFormat(10, 6, fmt.Sprintf("%.2f", item.SGST), "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", item.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Totals box
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Taxable Value", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", invoice.TotalTaxableValue), "1", 1, "R", false, 0, "")
	if invoice.InterState {
		pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, "IGST", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", invoice.TotalIGST), "1", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, "CGST", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", invoice.TotalCGST), "1", 1, "R", false, 0, "")
		pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, "SGST", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", invoice.TotalSGST), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Grand Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("Rs. %.2f", invoice.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Amount in words
	pdf.SetFont("Arial", "BI", 10)
	pdf.CellFormat(190, 7, fmt.Sprintf("Amount in Words: %s", invoice.AmountInWords), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Bank details and signature
	if company.BankName != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 7, "Bank Details", "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(190, 6, fmt.Sprintf("Bank: %s  |  A/C No: %s  |  IFSC: %s",
			company.BankName, company.BankAccountNo, company.BankIFSC), "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("For %s", company.Name), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Authorised Signatory", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
