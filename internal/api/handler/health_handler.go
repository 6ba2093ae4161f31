package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramin/internal/models"
	"gramin/internal/util"
)

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Welcome handles the root endpoint
// @Summary Welcome
// @Description Check that the API is up and get the welcome message
// @Tags Health
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Status:  "ok",
		Message: util.WelcomeMessage,
	})
}

// Check handles health check requests
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "gramin-api",
	})
}
