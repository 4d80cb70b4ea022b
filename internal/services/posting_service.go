package services

import (
	"context"
	"fmt"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/models"
)

type PostingService struct {
	postings PostingRepository
}

func NewPostingService(postings PostingRepository) *PostingService {
	return &PostingService{postings: postings}
}

func (s *PostingService) Create(ctx context.Context, companyID uint, req *dtos.CreatePostingRequest) (*models.Posting, error) {
	posting := &models.Posting{
		CompanyID:       companyID,
		Title:           req.Title,
		Description:     req.Description,
		ContractType:    req.ContractType,
		Location:        req.Location,
		WorkMode:        req.WorkMode,
		EstimatedSalary: req.EstimatedSalary,
		Questions:       req.Questions,
		Requirements:    req.Requirements,
		ClosingDate:     req.ClosingDate,
		Status:          models.PostingOpen,
	}
	if err := s.postings.Create(ctx, posting); err != nil {
		return nil, err
	}
	return s.postings.FindByID(ctx, posting.ID)
}

func (s *PostingService) List(ctx context.Context, status string) ([]models.Posting, error) {
	return s.postings.FindAll(ctx, status)
}

func (s *PostingService) ListByCompany(ctx context.Context, companyID uint) ([]models.Posting, error) {
	return s.postings.FindByCompany(ctx, companyID)
}

func (s *PostingService) Get(ctx context.Context, id uint) (*models.Posting, error) {
	return s.postings.FindByID(ctx, id)
}

// Update applies a partial update after verifying the caller owns the
// posting.
func (s *PostingService) Update(ctx context.Context, id, companyID uint, req *dtos.UpdatePostingRequest) (*models.Posting, error) {
	posting, err := s.postings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.CompanyID != companyID {
		return nil, fmt.Errorf("%w: posting belongs to another company", apperrors.ErrForbidden)
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.ContractType != nil {
		posting.ContractType = *req.ContractType
	}
	if req.Location != nil {
		posting.Location = *req.Location
	}
	if req.WorkMode != nil {
		posting.WorkMode = *req.WorkMode
	}
	if req.EstimatedSalary != nil {
		posting.EstimatedSalary = req.EstimatedSalary
	}
	if req.Questions != nil {
		posting.Questions = req.Questions
	}
	if req.Requirements != nil {
		posting.Requirements = *req.Requirements
	}
	if req.ClosingDate != nil {
		posting.ClosingDate = req.ClosingDate
	}

	if err := s.postings.Update(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}

// Close flips the posting to closed. Closing an already closed posting is a
// no-op; postings are never physically deleted.
func (s *PostingService) Close(ctx context.Context, id, companyID uint) (*models.Posting, error) {
	posting, err := s.postings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.CompanyID != companyID {
		return nil, fmt.Errorf("%w: posting belongs to another company", apperrors.ErrForbidden)
	}
	if err := s.postings.UpdateStatus(ctx, id, models.PostingClosed); err != nil {
		return nil, err
	}
	posting.Status = models.PostingClosed
	return posting, nil
}
