package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// LoginCompany is POST /auth/login/company
func (h *AuthHandler) LoginCompany(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	result, err := h.Auth.LoginCompany(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LoginApplicant is POST /auth/login/applicant
func (h *AuthHandler) LoginApplicant(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	result, err := h.Auth.LoginApplicant(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
