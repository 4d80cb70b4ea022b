package repository

import (
	"context"

	"github.com/magnolias-hr/magnolias-api/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return translate(r.db.WithContext(ctx).Create(app).Error, "application")
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Posting").
		Preload("Posting.Company").
		First(&app, id).Error
	if err != nil {
		return nil, translate(err, "application")
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByApplicantAndPosting(ctx context.Context, applicantID, postingID uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Where("applicant_id = ? AND posting_id = ?", applicantID, postingID).
		First(&app).Error
	if err != nil {
		return nil, translate(err, "application")
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByPosting(ctx context.Context, postingID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Where("posting_id = ?", postingID).
		Find(&apps).Error
	return apps, translate(err, "applications")
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Posting").
		Preload("Posting.Company").
		Where("applicant_id = ?", applicantID).
		Find(&apps).Error
	return apps, translate(err, "applications")
}

func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Posting").
		Joins("JOIN postings ON postings.id = applications.posting_id").
		Where("postings.company_id = ?", companyID).
		Find(&apps).Error
	return apps, translate(err, "applications")
}

// Patch applies a partial column update. Callers are responsible for only
// passing validated fields.
func (r *ApplicationRepository) Patch(ctx context.Context, id uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(fields).Error
	return translate(err, "application")
}

func (r *ApplicationRepository) UpdateEvaluation(ctx context.Context, id uint, score float64, feedback, status string) error {
	err := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(map[string]any{
		"ai_score":    score,
		"ai_feedback": feedback,
		"status":      status,
	}).Error
	return translate(err, "application")
}
