package services

import (
	"context"
	"errors"
	"testing"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/models"
	"github.com/magnolias-hr/magnolias-api/internal/utils"
)

func TestCompanyRegister_HashesPassword(t *testing.T) {
	companies := newFakeCompanyRepo()
	service := NewCompanyService(companies)

	company, err := service.Register(context.Background(), &dtos.CreateCompanyRequest{
		TaxID:    "76543210-1",
		Name:     "Magnolias SpA",
		Email:    "hr@magnolias.cl",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if company.Status != models.AccountActive {
		t.Fatalf("expected status %q, got %q", models.AccountActive, company.Status)
	}
	if company.PasswordHash == "s3cret-pw" {
		t.Fatal("password stored in plaintext")
	}
	if !utils.CheckPassword(company.PasswordHash, "s3cret-pw") {
		t.Fatal("stored hash does not verify against the password")
	}
}

func TestCompanyRegister_DuplicateEmail(t *testing.T) {
	companies := newFakeCompanyRepo()
	service := NewCompanyService(companies)

	req := &dtos.CreateCompanyRequest{
		TaxID:    "76543210-1",
		Name:     "Magnolias SpA",
		Email:    "hr@magnolias.cl",
		Password: "s3cret-pw",
	}
	if _, err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("expected first registration to succeed, got %v", err)
	}
	_, err := service.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCompanyUpdate_RehashesPassword(t *testing.T) {
	companies := newFakeCompanyRepo()
	service := NewCompanyService(companies)

	company := seedCompany(t, companies, "hr@magnolias.cl", "old-pw")

	newPassword := "new-pw"
	name := "Magnolias Holding"
	updated, err := service.Update(context.Background(), company.ID, &dtos.UpdateCompanyRequest{
		Name:     &name,
		Password: &newPassword,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Name != "Magnolias Holding" {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
	if !utils.CheckPassword(updated.PasswordHash, "new-pw") {
		t.Fatal("expected new password to verify")
	}
	if utils.CheckPassword(updated.PasswordHash, "old-pw") {
		t.Fatal("expected old password to stop verifying")
	}
	if updated.Email != "hr@magnolias.cl" {
		t.Fatalf("expected untouched fields preserved, got %q", updated.Email)
	}
}

func TestCompanyDeactivate_KeepsRecord(t *testing.T) {
	companies := newFakeCompanyRepo()
	service := NewCompanyService(companies)

	company := seedCompany(t, companies, "hr@magnolias.cl", "s3cret-pw")

	if err := service.Deactivate(context.Background(), company.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	stored, err := companies.FindByID(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("expected record to survive deactivation, got %v", err)
	}
	if stored.Status != models.AccountInactive {
		t.Fatalf("expected status %q, got %q", models.AccountInactive, stored.Status)
	}

	if err := service.Deactivate(context.Background(), 404); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for missing company, got %v", err)
	}
}
