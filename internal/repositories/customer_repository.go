package repositories

import (
	"context"

	"gstbill-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx,
		`INSERT INTO customers(name, phone, email, gstin, address, city, state, pincode)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, name, phone, email, gstin, address, city, state, pincode, created_at, updated_at`,
		req.Name, req.Phone, req.Email, req.GSTIN, req.Address, req.City, req.State, req.Pincode,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.GSTIN, &c.Address, &c.City,
		&c.State, &c.Pincode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, email, gstin, address, city, state, pincode, created_at, updated_at
		 FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.GSTIN, &c.Address, &c.City,
		&c.State, &c.Pincode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, email, gstin, address, city, state, pincode, created_at, updated_at
		 FROM customers WHERE phone = $1`, phone,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.GSTIN, &c.Address, &c.City,
		&c.State, &c.Pincode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, email, gstin, address, city, state, pincode, created_at, updated_at
		 FROM customers ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.GSTIN, &c.Address,
			&c.City, &c.State, &c.Pincode, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx,
		`UPDATE customers
		 SET name = $1, phone = $2, email = $3, gstin = $4, address = $5,
		     city = $6, state = $7, pincode = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9
		 RETURNING id, name, phone, email, gstin, address, city, state, pincode, created_at, updated_at`,
		req.Name, req.Phone, req.Email, req.GSTIN, req.Address, req.City,
		req.State, req.Pincode, id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.GSTIN, &c.Address, &c.City,
		&c.State, &c.Pincode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}
