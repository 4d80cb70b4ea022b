package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/services"
)

type ApplicantHandler struct {
	Applicants *services.ApplicantService
}

func NewApplicantHandler(applicants *services.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{Applicants: applicants}
}

func (h *ApplicantHandler) Create(c *gin.Context) {
	var req dtos.CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	applicant, err := h.Applicants.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, applicant)
}

func (h *ApplicantHandler) List(c *gin.Context) {
	applicants, err := h.Applicants.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicants)
}

func (h *ApplicantHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	applicant, err := h.Applicants.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicant)
}

func (h *ApplicantHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req dtos.UpdateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	applicant, err := h.Applicants.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicant)
}

func (h *ApplicantHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Applicants.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Applicant deactivated"})
}
