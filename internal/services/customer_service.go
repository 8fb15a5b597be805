package services

import (
	"context"
	"encoding/json"

	"gstbill-backend/internal/cache"
	"gstbill-backend/internal/models"
	"gstbill-backend/internal/repositories"
)

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.CustomerListKey)
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) SearchByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return s.Repo.GetByPhone(ctx, phone)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	if data, ok := cache.Get(ctx, cache.CustomerListKey); ok {
		var customers []*models.Customer
		if err := json.Unmarshal(data, &customers); err == nil {
			return customers, nil
		}
	}

	customers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(customers); err == nil {
		cache.Set(ctx, cache.CustomerListKey, data)
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.CustomerListKey)
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.CustomerListKey)
	return nil
}
