package repositories

import (
	"context"

	"gstbill-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	var p models.Product
	err := r.DB.QueryRow(ctx,
		`INSERT INTO products(name, hsn_code, unit, rate, tax_rate)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id, name, hsn_code, unit, rate, tax_rate, created_at, updated_at`,
		req.Name, req.HSNCode, req.Unit, req.Rate, req.TaxRate,
	).Scan(&p.ID, &p.Name, &p.HSNCode, &p.Unit, &p.Rate, &p.TaxRate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, hsn_code, unit, rate, tax_rate, created_at, updated_at
		 FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.HSNCode, &p.Unit, &p.Rate, &p.TaxRate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, hsn_code, unit, rate, tax_rate, created_at, updated_at
		 FROM products ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.HSNCode, &p.Unit, &p.Rate, &p.TaxRate,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error) {
	var p models.Product
	err := r.DB.QueryRow(ctx,
		`UPDATE products
		 SET name = $1, hsn_code = $2, unit = $3, rate = $4, tax_rate = $5,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING id, name, hsn_code, unit, rate, tax_rate, created_at, updated_at`,
		req.Name, req.HSNCode, req.Unit, req.Rate, req.TaxRate, id,
	).Scan(&p.ID, &p.Name, &p.HSNCode, &p.Unit, &p.Rate, &p.TaxRate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
