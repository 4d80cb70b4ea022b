package repository

import (
	"context"

	"github.com/magnolias-hr/magnolias-api/internal/models"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return translate(r.db.WithContext(ctx).Create(company).Error, "company")
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).Find(&companies).Error
	return companies, translate(err, "companies")
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, translate(err, "company")
	}
	return &company, nil
}

func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&company).Error; err != nil {
		return nil, translate(err, "company")
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	return translate(r.db.WithContext(ctx).Save(company).Error, "company")
}

func (r *CompanyRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	err := r.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Update("status", status).Error
	return translate(err, "company")
}
