package repositories

import (
	"context"

	"gstbill-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// Create persists an invoice snapshot with its items in one transaction.
// All computed fields must already be filled in by the service.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice, items []models.InvoiceItem) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(invoice_number, invoice_date, customer_id, customer_name,
		                      customer_address, customer_gstin, inter_state,
		                      subtotal, total_taxable_value, total_cgst, total_sgst,
		                      total_igst, total_amount, amount_in_words, notes, status)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id, created_at, updated_at`,
		invoice.InvoiceNumber, invoice.InvoiceDate, invoice.CustomerID, invoice.CustomerName,
		invoice.CustomerAddress, invoice.CustomerGSTIN, invoice.InterState,
		invoice.Subtotal, invoice.TotalTaxableValue, invoice.TotalCGST, invoice.TotalSGST,
		invoice.TotalIGST, invoice.TotalAmount, invoice.AmountInWords, invoice.Notes, invoice.Status,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].InvoiceID = invoice.ID
		_, err = tx.Exec(ctx,
			`INSERT INTO invoice_items(invoice_id, product_id, description, hsn_code,
			                           quantity, rate, discount, tax_rate,
			                           taxable_value, cgst, sgst, igst, line_total)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			invoice.ID, items[i].ProductID, items[i].Description, items[i].HSNCode,
			items[i].Quantity, items[i].Rate, items[i].Discount, items[i].TaxRate,
			items[i].TaxableValue, items[i].CGST, items[i].SGST, items[i].IGST, items[i].LineTotal,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const invoiceColumns = `id, invoice_number, invoice_date, customer_id, customer_name,
	customer_address, customer_gstin, inter_state, subtotal, total_taxable_value,
	total_cgst, total_sgst, total_igst, total_amount, amount_in_words, notes, status,
	created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }, inv *models.Invoice) error {
	return row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.CustomerID,
		&inv.CustomerName, &inv.CustomerAddress, &inv.CustomerGSTIN, &inv.InterState,
		&inv.Subtotal, &inv.TotalTaxableValue, &inv.TotalCGST, &inv.TotalSGST,
		&inv.TotalIGST, &inv.TotalAmount, &inv.AmountInWords, &inv.Notes, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt)
}

// Get retrieves an invoice by ID with items
func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.InvoiceWithItems, error) {
	var inv models.InvoiceWithItems
	row := r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	if err := scanInvoice(row, &inv.Invoice); err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

// GetByNumber retrieves an invoice by its invoice number
func (r *InvoiceRepository) GetByNumber(ctx context.Context, invoiceNumber string) (*models.InvoiceWithItems, error) {
	var inv models.InvoiceWithItems
	row := r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, invoiceNumber)
	if err := scanInvoice(row, &inv.Invoice); err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

func (r *InvoiceRepository) listItems(ctx context.Context, invoiceID int) ([]models.InvoiceItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, invoice_id, product_id, description, hsn_code, quantity, rate,
		        discount, tax_rate, taxable_value, cgst, sgst, igst, line_total
		 FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		var item models.InvoiceItem
		err := rows.Scan(&item.ID, &item.InvoiceID, &item.ProductID, &item.Description,
			&item.HSNCode, &item.Quantity, &item.Rate, &item.Discount, &item.TaxRate,
			&item.TaxableValue, &item.CGST, &item.SGST, &item.IGST, &item.LineTotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// List returns all invoices, newest first
func (r *InvoiceRepository) List(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, nil
}

// GetByCustomer returns all invoices for a customer, newest first
func (r *InvoiceRepository) GetByCustomer(ctx context.Context, customerID int) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, nil
}

// UpdateStatus sets the stored status; callers normalize the value first.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, id)
	return err
}
