package dtos

import (
	"time"

	"gorm.io/datatypes"
)

type CreatePostingRequest struct {
	Title           string         `json:"title" binding:"required"`
	Description     string         `json:"description" binding:"required"`
	ContractType    string         `json:"contract_type" binding:"required,oneof=full_time part_time contract internship"`
	Location        string         `json:"location" binding:"required"`
	WorkMode        string         `json:"work_mode" binding:"required,oneof=on_site remote hybrid"`
	EstimatedSalary *float64       `json:"estimated_salary"`
	Questions       datatypes.JSON `json:"questions"`
	Requirements    string         `json:"requirements"`
	ClosingDate     *time.Time     `json:"closing_date"`
}

type UpdatePostingRequest struct {
	Title           *string        `json:"title"`
	Description     *string        `json:"description"`
	ContractType    *string        `json:"contract_type" binding:"omitempty,oneof=full_time part_time contract internship"`
	Location        *string        `json:"location"`
	WorkMode        *string        `json:"work_mode" binding:"omitempty,oneof=on_site remote hybrid"`
	EstimatedSalary *float64       `json:"estimated_salary"`
	Questions       datatypes.JSON `json:"questions"`
	Requirements    *string        `json:"requirements"`
	ClosingDate     *time.Time     `json:"closing_date"`
}
