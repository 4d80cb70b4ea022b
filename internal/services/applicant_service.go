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

type ApplicantService struct {
	applicants ApplicantRepository
}

func NewApplicantService(applicants ApplicantRepository) *ApplicantService {
	return &ApplicantService{applicants: applicants}
}

func (s *ApplicantService) Register(ctx context.Context, req *dtos.CreateApplicantRequest) (*models.Applicant, error) {
	if _, err := s.applicants.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	applicant := &models.Applicant{
		TaxID:           req.TaxID,
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		Phone:           req.Phone,
		LinkedInURL:     req.LinkedInURL,
		Skills:          req.Skills,
		YearsExperience: req.YearsExperience,
		Status:          models.AccountActive,
	}
	if err := s.applicants.Create(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

func (s *ApplicantService) List(ctx context.Context) ([]models.Applicant, error) {
	return s.applicants.FindAll(ctx)
}

func (s *ApplicantService) Get(ctx context.Context, id uint) (*models.Applicant, error) {
	return s.applicants.FindByID(ctx, id)
}

func (s *ApplicantService) Update(ctx context.Context, id uint, req *dtos.UpdateApplicantRequest) (*models.Applicant, error) {
	applicant, err := s.applicants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TaxID != nil {
		applicant.TaxID = *req.TaxID
	}
	if req.Name != nil {
		applicant.Name = *req.Name
	}
	if req.Email != nil {
		applicant.Email = *req.Email
	}
	if req.Phone != nil {
		applicant.Phone = *req.Phone
	}
	if req.LinkedInURL != nil {
		applicant.LinkedInURL = *req.LinkedInURL
	}
	if req.Skills != nil {
		applicant.Skills = req.Skills
	}
	if req.YearsExperience != nil {
		applicant.YearsExperience = *req.YearsExperience
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		applicant.PasswordHash = hash
	}

	if err := s.applicants.Update(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

// UpdateCVURL records the public URL of a freshly uploaded CV.
func (s *ApplicantService) UpdateCVURL(ctx context.Context, id uint, cvURL string) error {
	return s.applicants.UpdateCVURL(ctx, id, cvURL)
}

// Deactivate soft-deletes: the record stays, only the status flips.
func (s *ApplicantService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.applicants.FindByID(ctx, id); err != nil {
		return err
	}
	return s.applicants.UpdateStatus(ctx, id, models.AccountInactive)
}
