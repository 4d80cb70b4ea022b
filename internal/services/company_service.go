package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/models"
	"github.com/magnolias-hr/magnolias-api/internal/utils"
)

type CompanyService struct {
	companies CompanyRepository
}

func NewCompanyService(companies CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

func (s *CompanyService) Register(ctx context.Context, req *dtos.CreateCompanyRequest) (*models.Company, error) {
	if _, err := s.companies.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	company := &models.Company{
		TaxID:        req.TaxID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		Status:       models.AccountActive,
	}
	// The unique index on email catches the race between the pre-check and
	// this insert.
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.companies.FindAll(ctx)
}

func (s *CompanyService) Get(ctx context.Context, id uint) (*models.Company, error) {
	return s.companies.FindByID(ctx, id)
}

func (s *CompanyService) Update(ctx context.Context, id uint, req *dtos.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TaxID != nil {
		company.TaxID = *req.TaxID
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		company.PasswordHash = hash
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Deactivate soft-deletes: the record stays, only the status flips.
func (s *CompanyService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.companies.FindByID(ctx, id); err != nil {
		return err
	}
	return s.companies.UpdateStatus(ctx, id, models.AccountInactive)
}
