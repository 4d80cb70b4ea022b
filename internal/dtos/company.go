package dtos

type CreateCompanyRequest struct {
	TaxID       string `json:"tax_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url"`
}

// UpdateCompanyRequest is a partial update: nil fields are left untouched.
type UpdateCompanyRequest struct {
	TaxID       *string `json:"tax_id"`
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,url"`
}
