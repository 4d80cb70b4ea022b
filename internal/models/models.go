package models

import (
	"time"

	"gorm.io/datatypes"
)

// Account statuses shared by companies and applicants. Records are never
// physically deleted, only flipped to inactive.
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)

// Posting statuses. Closing is one-way: there is no reopen operation.
const (
	PostingOpen   = "open"
	PostingClosed = "closed"
)

// Application statuses. Transitions are deliberately unconstrained: any
// known value may overwrite any other (see DESIGN.md).
const (
	ApplicationPending   = "pending"
	ApplicationInReview  = "in_review"
	ApplicationEvaluated = "evaluated"
	ApplicationRejected  = "rejected"
	ApplicationSelected  = "selected"
)

// IsKnownApplicationStatus reports whether s is one of the five allowed
// application statuses.
func IsKnownApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationInReview, ApplicationEvaluated,
		ApplicationRejected, ApplicationSelected:
		return true
	default:
		return false
	}
}

type Company struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TaxID        string    `gorm:"not null" json:"tax_id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Description  string    `gorm:"type:text" json:"description"`
	LogoURL      string    `json:"logo_url"`
	Status       string    `gorm:"default:'active'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 'omitempty' prevents infinite loops when fetching a Posting -> Company -> Postings -> ...
	Postings []Posting `json:"postings,omitempty"`
}

type Applicant struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	TaxID           string         `gorm:"not null" json:"tax_id"`
	Name            string         `gorm:"not null" json:"name"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string         `gorm:"not null" json:"-"`
	Phone           string         `json:"phone"`
	CVURL           string         `json:"cv_url"`
	LinkedInURL     string         `json:"linkedin_url"`
	Skills          datatypes.JSON `json:"skills"`
	YearsExperience int            `json:"years_experience"`
	Status          string         `gorm:"default:'active'" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	Applications []Application `json:"applications,omitempty"`
}

type Posting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Foreign key. GORM needs Preload() to fill the association.
	CompanyID uint    `gorm:"not null;index" json:"company_id"`
	Company   Company `json:"company,omitempty"`

	Title           string         `gorm:"not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	ContractType    string         `gorm:"not null" json:"contract_type"`
	Location        string         `json:"location"`
	WorkMode        string         `gorm:"not null" json:"work_mode"`
	EstimatedSalary *float64       `json:"estimated_salary"`
	Questions       datatypes.JSON `json:"questions"`
	Requirements    string         `gorm:"type:text" json:"requirements"`
	ClosingDate     *time.Time     `json:"closing_date"`
	Status          string         `gorm:"default:'open'" json:"status"`
	PublishedAt     time.Time      `gorm:"autoCreateTime" json:"published_at"`
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// The composite unique index is the authoritative guard against two
	// concurrent submissions for the same pair; the service pre-check only
	// provides the friendly error message.
	ApplicantID uint      `gorm:"not null;uniqueIndex:idx_applicant_posting" json:"applicant_id"`
	Applicant   Applicant `json:"applicant,omitempty"`
	PostingID   uint      `gorm:"not null;uniqueIndex:idx_applicant_posting" json:"posting_id"`
	Posting     Posting   `json:"posting,omitempty"`

	Answers     datatypes.JSON `json:"answers"`
	AIScore     *float64       `json:"ai_score"`
	AIFeedback  *string        `json:"ai_feedback"`
	Status      string         `gorm:"default:'pending'" json:"status"`
	SubmittedAt time.Time      `gorm:"autoCreateTime" json:"submitted_at"`
}
