package services

import (
	"context"
	"fmt"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"github.com/magnolias-hr/magnolias-api/internal/auth"
	"github.com/magnolias-hr/magnolias-api/internal/utils"
)

type AuthService struct {
	companies  CompanyRepository
	applicants ApplicantRepository
	tokens     *auth.TokenProvider
}

func NewAuthService(companies CompanyRepository, applicants ApplicantRepository, tokens *auth.TokenProvider) *AuthService {
	return &AuthService{companies: companies, applicants: applicants, tokens: tokens}
}

// LoginResult carries the signed token and the redacted principal. The
// password hash never serializes (json:"-" on the models).
type LoginResult struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// LoginCompany verifies credentials for the company namespace. Unknown
// email and wrong password fail identically so callers cannot probe which
// check failed.
func (s *AuthService) LoginCompany(ctx context.Context, email, password string) (*LoginResult, error) {
	company, err := s.companies.FindByEmail(ctx, email)
	if err != nil || !utils.CheckPassword(company.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(company.ID, company.Email, auth.RoleCompany)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: company}, nil
}

// LoginApplicant is the applicant-namespace counterpart of LoginCompany.
func (s *AuthService) LoginApplicant(ctx context.Context, email, password string) (*LoginResult, error) {
	applicant, err := s.applicants.FindByEmail(ctx, email)
	if err != nil || !utils.CheckPassword(applicant.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(applicant.ID, applicant.Email, auth.RoleApplicant)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: applicant}, nil
}
