package repositories

import (
	"context"
	"errors"

	"gstbill-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	DB *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

// Get returns the single company profile row, or nil when the profile
// has not been set up yet.
func (r *CompanyRepository) Get(ctx context.Context) (*models.CompanyProfile, error) {
	var c models.CompanyProfile
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, gstin, address, city, state, pincode, phone, email,
		        bank_name, bank_account_no, bank_ifsc, updated_at
		 FROM company_profile
		 ORDER BY id LIMIT 1`,
	).Scan(&c.ID, &c.Name, &c.GSTIN, &c.Address, &c.City, &c.State, &c.Pincode,
		&c.Phone, &c.Email, &c.BankName, &c.BankAccountNo, &c.BankIFSC, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert creates the profile on first save and overwrites it afterwards.
// The table holds a single row keyed by id = 1.
func (r *CompanyRepository) Upsert(ctx context.Context, req *models.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	var c models.CompanyProfile
	err := r.DB.QueryRow(ctx,
		`INSERT INTO company_profile(id, name, gstin, address, city, state, pincode,
		                             phone, email, bank_name, bank_account_no, bank_ifsc, updated_at)
		 VALUES(1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP)
		 ON CONFLICT (id)
		 DO UPDATE SET name = $1, gstin = $2, address = $3, city = $4, state = $5,
		               pincode = $6, phone = $7, email = $8, bank_name = $9,
		               bank_account_no = $10, bank_ifsc = $11, updated_at = CURRENT_TIMESTAMP
		 RETURNING id, name, gstin, address, city, state, pincode, phone, email,
		           bank_name, bank_account_no, bank_ifsc, updated_at`,
		req.Name, req.GSTIN, req.Address, req.City, req.State, req.Pincode,
		req.Phone, req.Email, req.BankName, req.BankAccountNo, req.BankIFSC,
	).Scan(&c.ID, &c.Name, &c.GSTIN, &c.Address, &c.City, &c.State, &c.Pincode,
		&c.Phone, &c.Email, &c.BankName, &c.BankAccountNo, &c.BankIFSC, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
