package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/middleware"
	"github.com/magnolias-hr/magnolias-api/internal/services"
)

type PostingHandler struct {
	Postings *services.PostingService
}

func NewPostingHandler(postings *services.PostingService) *PostingHandler {
	return &PostingHandler{Postings: postings}
}

// Create registers a posting owned by the authenticated company.
func (h *PostingHandler) Create(c *gin.Context) {
	companyID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	var req dtos.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	posting, err := h.Postings.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posting)
}

// List is GET /postings?status=open|closed
func (h *PostingHandler) List(c *gin.Context) {
	postings, err := h.Postings.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

func (h *PostingHandler) ListByCompany(c *gin.Context) {
	companyID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	postings, err := h.Postings.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

func (h *PostingHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	posting, err := h.Postings.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *PostingHandler) Update(c *gin.Context) {
	companyID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req dtos.UpdatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	posting, err := h.Postings.Update(c.Request.Context(), id, companyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// Delete closes the posting; there is no hard delete.
func (h *PostingHandler) Delete(c *gin.Context) {
	companyID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	posting, err := h.Postings.Close(c.Request.Context(), id, companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}
