package services

import (
	"context"
	"encoding/json"
	"errors"

	"gstbill-backend/internal/cache"
	"gstbill-backend/internal/models"
	"gstbill-backend/internal/repositories"
)

// ErrNoCompanyProfile is returned when billing is attempted before the
// supplier profile (and therefore the supplier GSTIN) has been set up.
var ErrNoCompanyProfile = errors.New("company profile not set up")

type CompanyService struct {
	Repo *repositories.CompanyRepository
}

func NewCompanyService(repo *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{Repo: repo}
}

func (s *CompanyService) GetProfile(ctx context.Context) (*models.CompanyProfile, error) {
	if data, ok := cache.Get(ctx, cache.CompanyProfileKey); ok {
		var profile models.CompanyProfile
		if err := json.Unmarshal(data, &profile); err == nil {
			return &profile, nil
		}
	}

	profile, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoCompanyProfile
	}
	if data, err := json.Marshal(profile); err == nil {
		cache.Set(ctx, cache.CompanyProfileKey, data)
	}
	return profile, nil
}

func (s *CompanyService) SaveProfile(ctx context.Context, req *models.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile, err := s.Repo.Upsert(ctx, req)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.CompanyProfileKey)
	return profile, nil
}
