package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magnolias-hr/magnolias-api/internal/clients"
	"github.com/magnolias-hr/magnolias-api/internal/middleware"
	"github.com/magnolias-hr/magnolias-api/internal/services"
)

type StorageHandler struct {
	Storage    *clients.SupabaseStorage
	Applicants *services.ApplicantService
}

func NewStorageHandler(storage *clients.SupabaseStorage, applicants *services.ApplicantService) *StorageHandler {
	return &StorageHandler{Storage: storage, Applicants: applicants}
}

// UploadCV is POST /storage/upload-cv (multipart, field "file"). The stored
// URL is also persisted on the applicant's profile.
func (h *StorageHandler) UploadCV(c *gin.Context) {
	applicantID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}

	cvURL, err := h.Storage.UploadCV(c.Request.Context(), content, header.Header.Get("Content-Type"), applicantID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Applicants.UpdateCVURL(c.Request.Context(), applicantID, cvURL); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "CV uploaded successfully",
		"cv_url":  cvURL,
	})
}
