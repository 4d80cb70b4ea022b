package repository

import (
	"context"

	"github.com/magnolias-hr/magnolias-api/internal/models"
	"gorm.io/gorm"
)

type ApplicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) Create(ctx context.Context, applicant *models.Applicant) error {
	return translate(r.db.WithContext(ctx).Create(applicant).Error, "applicant")
}

func (r *ApplicantRepository) FindAll(ctx context.Context) ([]models.Applicant, error) {
	var applicants []models.Applicant
	err := r.db.WithContext(ctx).Find(&applicants).Error
	return applicants, translate(err, "applicants")
}

func (r *ApplicantRepository) FindByID(ctx context.Context, id uint) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := r.db.WithContext(ctx).First(&applicant, id).Error; err != nil {
		return nil, translate(err, "applicant")
	}
	return &applicant, nil
}

func (r *ApplicantRepository) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&applicant).Error; err != nil {
		return nil, translate(err, "applicant")
	}
	return &applicant, nil
}

func (r *ApplicantRepository) Update(ctx context.Context, applicant *models.Applicant) error {
	return translate(r.db.WithContext(ctx).Save(applicant).Error, "applicant")
}

func (r *ApplicantRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	err := r.db.WithContext(ctx).Model(&models.Applicant{}).Where("id = ?", id).Update("status", status).Error
	return translate(err, "applicant")
}

func (r *ApplicantRepository) UpdateCVURL(ctx context.Context, id uint, cvURL string) error {
	err := r.db.WithContext(ctx).Model(&models.Applicant{}).Where("id = ?", id).Update("cv_url", cvURL).Error
	return translate(err, "applicant")
}
