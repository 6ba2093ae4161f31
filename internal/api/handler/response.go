package handler

import (
	"github.com/gin-gonic/gin"

	"gramin/internal/api/middleware"
	"gramin/internal/models"
)

func respondError(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, models.ErrorResponse{
		Detail:    detail,
		RequestID: c.GetString(middleware.ContextKeyRequestID),
	})
}
