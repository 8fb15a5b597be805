package models

import "time"

type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	HSNCode   string    `json:"hsn_code"`
	Unit      string    `json:"unit"`
	Rate      float64   `json:"rate"`
	TaxRate   float64   `json:"tax_rate"` // GST slab percent: 0, 5, 12, 18, 28
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name    string  `json:"name"`
	HSNCode string  `json:"hsn_code"`
	Unit    string  `json:"unit"`
	Rate    float64 `json:"rate"`
	TaxRate float64 `json:"tax_rate"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name    string  `json:"name"`
	HSNCode string  `json:"hsn_code"`
	Unit    string  `json:"unit"`
	Rate    float64 `json:"rate"`
	TaxRate float64 `json:"tax_rate"`
}
