package repository

import (
	"context"

	"github.com/magnolias-hr/magnolias-api/internal/models"
	"gorm.io/gorm"
)

type PostingRepository struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) *PostingRepository {
	return &PostingRepository{db: db}
}

func (r *PostingRepository) Create(ctx context.Context, posting *models.Posting) error {
	return translate(r.db.WithContext(ctx).Create(posting).Error, "posting")
}

// FindAll lists postings newest first, optionally filtered by status.
func (r *PostingRepository) FindAll(ctx context.Context, status string) ([]models.Posting, error) {
	q := r.db.WithContext(ctx).Preload("Company").Order("published_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var postings []models.Posting
	err := q.Find(&postings).Error
	return postings, translate(err, "postings")
}

func (r *PostingRepository) FindByCompany(ctx context.Context, companyID uint) ([]models.Posting, error) {
	var postings []models.Posting
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("published_at DESC").
		Find(&postings).Error
	return postings, translate(err, "postings")
}

func (r *PostingRepository) FindByID(ctx context.Context, id uint) (*models.Posting, error) {
	var posting models.Posting
	if err := r.db.WithContext(ctx).Preload("Company").First(&posting, id).Error; err != nil {
		return nil, translate(err, "posting")
	}
	return &posting, nil
}

func (r *PostingRepository) Update(ctx context.Context, posting *models.Posting) error {
	return translate(r.db.WithContext(ctx).Save(posting).Error, "posting")
}

func (r *PostingRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	err := r.db.WithContext(ctx).Model(&models.Posting{}).Where("id = ?", id).Update("status", status).Error
	return translate(err, "posting")
}
