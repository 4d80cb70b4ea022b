package dtos

import "gorm.io/datatypes"

type CreateApplicationRequest struct {
	PostingID uint           `json:"posting_id" binding:"required"`
	Answers   datatypes.JSON `json:"answers"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationRequest is the loose partial update used by the
// evaluation callback. Each field is applied independently; invalid status
// values are logged and dropped instead of failing the whole patch.
type UpdateApplicationRequest struct {
	AIScore    *float64       `json:"ai_score"`
	AIFeedback *string        `json:"ai_feedback"`
	Status     *string        `json:"status"`
	Answers    datatypes.JSON `json:"answers"`
}
