package dtos

import "gorm.io/datatypes"

type CreateApplicantRequest struct {
	TaxID           string         `json:"tax_id" binding:"required"`
	Name            string         `json:"name" binding:"required"`
	Email           string         `json:"email" binding:"required,email"`
	Password        string         `json:"password" binding:"required,min=6"`
	Phone           string         `json:"phone"`
	LinkedInURL     string         `json:"linkedin_url" binding:"omitempty,url"`
	Skills          datatypes.JSON `json:"skills"`
	YearsExperience int            `json:"years_experience" binding:"omitempty,min=0"`
}

type UpdateApplicantRequest struct {
	TaxID           *string        `json:"tax_id"`
	Name            *string        `json:"name"`
	Email           *string        `json:"email" binding:"omitempty,email"`
	Password        *string        `json:"password" binding:"omitempty,min=6"`
	Phone           *string        `json:"phone"`
	LinkedInURL     *string        `json:"linkedin_url" binding:"omitempty,url"`
	Skills          datatypes.JSON `json:"skills"`
	YearsExperience *int           `json:"years_experience" binding:"omitempty,min=0"`
}
