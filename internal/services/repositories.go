package services

import (
	"context"

	"github.com/magnolias-hr/magnolias-api/internal/models"
)

// Repository interfaces consumed by the services. The gorm implementations
// live in internal/repository; tests substitute in-memory fakes.

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindAll(ctx context.Context) ([]models.Company, error)
	FindByID(ctx context.Context, id uint) (*models.Company, error)
	FindByEmail(ctx context.Context, email string) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *models.Applicant) error
	FindAll(ctx context.Context) ([]models.Applicant, error)
	FindByID(ctx context.Context, id uint) (*models.Applicant, error)
	FindByEmail(ctx context.Context, email string) (*models.Applicant, error)
	Update(ctx context.Context, applicant *models.Applicant) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	UpdateCVURL(ctx context.Context, id uint, cvURL string) error
}

type PostingRepository interface {
	Create(ctx context.Context, posting *models.Posting) error
	FindAll(ctx context.Context, status string) ([]models.Posting, error)
	FindByCompany(ctx context.Context, companyID uint) ([]models.Posting, error)
	FindByID(ctx context.Context, id uint) (*models.Posting, error)
	Update(ctx context.Context, posting *models.Posting) error
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id uint) (*models.Application, error)
	FindByApplicantAndPosting(ctx context.Context, applicantID, postingID uint) (*models.Application, error)
	ListByPosting(ctx context.Context, postingID uint) ([]models.Application, error)
	ListByApplicant(ctx context.Context, applicantID uint) ([]models.Application, error)
	ListByCompany(ctx context.Context, companyID uint) ([]models.Application, error)
	Patch(ctx context.Context, id uint, fields map[string]any) error
	UpdateEvaluation(ctx context.Context, id uint, score float64, feedback, status string) error
}
