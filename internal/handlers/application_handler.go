package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/middleware"
	"github.com/magnolias-hr/magnolias-api/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Create submits an application for the authenticated applicant. The
// response returns as soon as the record is persisted; evaluation runs
// detached.
func (h *ApplicationHandler) Create(c *gin.Context) {
	applicantID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	var req dtos.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.Submit(c.Request.Context(), applicantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListByPosting(c *gin.Context) {
	postingID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	apps, err := h.Applications.ListByPosting(c.Request.Context(), postingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListByApplicant(c *gin.Context) {
	applicantID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	apps, err := h.Applications.ListByApplicant(c.Request.Context(), applicantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListByCompany(c *gin.Context) {
	companyID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	apps, err := h.Applications.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	app, err := h.Applications.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Update is the loose partial update used by the evaluation callback.
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req dtos.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req dtos.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
