package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startedAt   time.Time
	environment string
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), environment: environment}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.startedAt).Seconds(),
		"environment": h.environment,
	})
}
