package services

import (
	"context"
	"encoding/json"

	"gstbill-backend/internal/cache"
	"gstbill-backend/internal/models"
	"gstbill-backend/internal/repositories"
)

type ProductService struct {
	Repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product, err := s.Repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.ProductListKey)
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	if data, ok := cache.Get(ctx, cache.ProductListKey); ok {
		var products []*models.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
	}

	products, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(products); err == nil {
		cache.Set(ctx, cache.ProductListKey, data)
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.ProductListKey)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.ProductListKey)
	return nil
}
