package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gramin/internal/models"
	"gramin/internal/util"
)

// Answerer answers a health question with user-facing text
type Answerer interface {
	Answer(ctx context.Context, req *models.AskRequest) string
}

// AssistantHandler handles health question requests
type AssistantHandler struct {
	assistant Answerer
	logger    *util.Logger
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant Answerer) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    util.NewLogger("AssistantHandler"),
	}
}

// Ask handles health questions
// @Summary Ask the rural health assistant
// @Description Answer a health question in simple Hindi. When latitude and longitude are both sent, nearby hospitals are suggested.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body models.AskRequest true "Question"
// @Success 200 {object} models.AskResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /ask-rural-assistant/ [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req models.AskRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		respondError(c, http.StatusBadRequest, util.EmptyQueryMessage)
		return
	}

	h.logger.KeyValue("received query", "text", req.Text, "located", req.HasLocation())

	answer := h.assistant.Answer(c.Request.Context(), &req)
	if answer == "" {
		respondError(c, http.StatusInternalServerError, util.EmptyAnswerMessage)
		return
	}

	c.JSON(http.StatusOK, models.AskResponse{Answer: answer})
}
