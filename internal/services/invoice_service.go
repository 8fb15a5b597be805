package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"gstbill-backend/internal/gst"
	"gstbill-backend/internal/models"
	"gstbill-backend/internal/repositories"
	"gstbill-backend/internal/timeutil"
)

// NumberingStore is the persistence boundary for the invoice numbering
// counter. Implemented by repositories.NumberingRepository.
type NumberingStore interface {
	Get(ctx context.Context) (*models.NumberingState, error)
	Set(ctx context.Context, prefix string, lastNumber int) error
}

type InvoiceService struct {
	Repo         *repositories.InvoiceRepository
	CustomerRepo *repositories.CustomerRepository
	Company      *CompanyService
	Numbering    NumberingStore
}

func NewInvoiceService(
	repo *repositories.InvoiceRepository,
	customerRepo *repositories.CustomerRepository,
	company *CompanyService,
	numbering NumberingStore,
) *InvoiceService {
	return &InvoiceService{
		Repo:         repo,
		CustomerRepo: customerRepo,
		Company:      company,
		Numbering:    numbering,
	}
}

// NextInvoiceNumber previews the default number for a new invoice
// without advancing the stored counter.
func (s *InvoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	state, err := s.Numbering.Get(ctx)
	if err != nil {
		return "", err
	}
	return gst.NextInvoiceNumber(state.Prefix, state.LastNumber), nil
}

// CreateInvoice recomputes all totals server-side from the submitted
// item list, snapshots the result and advances the numbering counter.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.InvoiceWithItems, error) {
	profile, err := s.Company.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	var customer *models.Customer
	if req.CustomerID != nil {
		customer, err = s.CustomerRepo.Get(ctx, *req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("customer lookup failed: %w", err)
		}
	}

	if req.InvoiceNumber == "" {
		state, err := s.Numbering.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("numbering state read failed: %w", err)
		}
		req.InvoiceNumber = gst.NextInvoiceNumber(state.Prefix, state.LastNumber)
	}

	invoice, items := buildInvoiceSnapshot(req, profile, customer, timeutil.Now())

	if err := s.Repo.Create(ctx, invoice, items); err != nil {
		return nil, err
	}

	// The counter advance runs after the save and outside its
	// transaction: a failure here must never undo the invoice.
	s.advanceCounter(ctx, invoice.InvoiceNumber)

	return &models.InvoiceWithItems{Invoice: *invoice, Items: items}, nil
}

// buildInvoiceSnapshot assembles the immutable invoice record: one
// jurisdiction determination for the whole invoice, unrounded per-line
// tax fields, aggregate totals rounded by the engine, and the
// amount-in-words string rendered once from the final total.
func buildInvoiceSnapshot(req *models.CreateInvoiceRequest, profile *models.CompanyProfile, customer *models.Customer, now time.Time) (*models.Invoice, []models.InvoiceItem) {
	invoice := &models.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   now,
		Notes:         req.Notes,
		Status:        models.NormalizeStatus(req.Status),
	}
	if req.InvoiceDate != "" {
		if d, err := timeutil.ParseInIST(timeutil.DateLayout, req.InvoiceDate); err == nil {
			invoice.InvoiceDate = d
		}
	}

	var customerGSTIN string
	if customer != nil {
		invoice.CustomerID = &customer.ID
		invoice.CustomerName = customer.Name
		invoice.CustomerAddress = customer.Address
		invoice.CustomerGSTIN = customer.GSTIN
		customerGSTIN = customer.GSTIN
	}

	interState := gst.DetermineJurisdiction(profile.GSTIN, customerGSTIN)
	invoice.InterState = interState

	engineItems := make([]gst.LineItem, 0, len(req.Items))
	items := make([]models.InvoiceItem, 0, len(req.Items))
	for _, row := range req.Items {
		engineItems = append(engineItems, gst.LineItem{
			Quantity: row.Quantity,
			Rate:     row.Rate,
			Discount: row.Discount,
			TaxRate:  row.TaxRate,
		})

		taxableValue := row.Quantity*row.Rate - row.Discount
		tax := gst.ComputeLineTax(taxableValue, row.TaxRate, interState)
		items = append(items, models.InvoiceItem{
			ProductID:    row.ProductID,
			Description:  row.Description,
			HSNCode:      row.HSNCode,
			Quantity:     row.Quantity,
			Rate:         row.Rate,
			Discount:     row.Discount,
			TaxRate:      row.TaxRate,
			TaxableValue: taxableValue,
			CGST:         tax.CGST,
			SGST:         tax.SGST,
			IGST:         tax.IGST,
			LineTotal:    tax.TotalAmount,
		})
	}

	totals := gst.ComputeInvoiceTotals(engineItems, profile.GSTIN, customerGSTIN)
	invoice.Subtotal = totals.Subtotal
	invoice.TotalTaxableValue = totals.TotalTaxableValue
	invoice.TotalCGST = totals.TotalCGST
	invoice.TotalSGST = totals.TotalSGST
	invoice.TotalIGST = totals.TotalIGST
	invoice.TotalAmount = totals.TotalAmount
	invoice.AmountInWords = gst.AmountToWords(totals.TotalAmount)

	return invoice, items
}

// advanceCounter updates the stored prefix/counter pair from a saved
// invoice number. Numbers that are not sequence-shaped are skipped
// silently, and store failures are logged but never surfaced: the
// invoice save has already succeeded.
func (s *InvoiceService) advanceCounter(ctx context.Context, invoiceNumber string) {
	prefix, n, ok := gst.ParseInvoiceNumber(invoiceNumber)
	if !ok {
		return
	}
	if err := s.Numbering.Set(ctx, prefix, n); err != nil {
		log.Printf("[Invoice] Counter advance failed for %s: %v", invoiceNumber, err)
	}
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int) (*models.InvoiceWithItems, error) {
	return s.Repo.Get(ctx, id)
}

func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, number string) (*models.InvoiceWithItems, error) {
	return s.Repo.GetByNumber(ctx, number)
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return s.Repo.List(ctx)
}

func (s *InvoiceService) GetCustomerInvoices(ctx context.Context, customerID int) ([]*models.Invoice, error) {
	return s.Repo.GetByCustomer(ctx, customerID)
}

// UpdateStatus applies the write-boundary status mapping: anything
// other than exactly PAID is stored as CREDIT.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id int, status string) error {
	return s.Repo.UpdateStatus(ctx, id, models.NormalizeStatus(status))
}

// GetNumberingState exposes the stored counter for the settings screen.
func (s *InvoiceService) GetNumberingState(ctx context.Context) (*models.NumberingState, error) {
	return s.Numbering.Get(ctx)
}

// SetNumberingState lets an admin reseat the prefix/counter pair.
func (s *InvoiceService) SetNumberingState(ctx context.Context, req *models.UpdateNumberingRequest) error {
	return s.Numbering.Set(ctx, req.Prefix, req.LastNumber)
}
