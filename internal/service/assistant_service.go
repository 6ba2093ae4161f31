package service

import (
	"context"
	"errors"

	"gramin/internal/config"
	"gramin/internal/models"
	"gramin/internal/prompts"
	"gramin/internal/reply"
	"gramin/internal/util"
)

// ChatCompleter produces a raw model reply for a system+user message pair
type ChatCompleter interface {
	StreamReply(ctx context.Context, systemPrompt, userText string) (string, error)
}

// NearbyFinder returns at most util.MaxPlaces places and never fails
type NearbyFinder interface {
	FindNearby(ctx context.Context, lat, lon float64, category string) []models.Place
}

// AssistantService answers health questions
type AssistantService struct {
	completer ChatCompleter
	places    NearbyFinder
	validator *reply.Validator
	logger    *util.Logger
}

// NewAssistantService creates a new assistant service
func NewAssistantService(cfg *config.Config, completer ChatCompleter, places NearbyFinder) *AssistantService {
	return &AssistantService{
		completer: completer,
		places:    places,
		validator: reply.NewValidator(cfg.ReplyTerminators),
		logger:    util.NewLogger("AssistantService"),
	}
}

// Answer answers a question, adding nearby hospitals to the prompt when the
// request carries both coordinates.
func (as *AssistantService) Answer(ctx context.Context, req *models.AskRequest) string {
	as.logger.Start("Answer")
	defer as.logger.End("Answer")

	localContext := ""
	switch {
	case req.HasLocation():
		hospitals := as.places.FindNearby(ctx, *req.Latitude, *req.Longitude, util.HospitalCategory)
		localContext = prompts.NearbyPlacesContext(hospitals)
		as.logger.KeyValue("location context", "hospitals", len(hospitals))
	case req.Latitude != nil || req.Longitude != nil:
		as.logger.Warn("Ignoring partial location", errors.New("latitude and longitude must be sent together"))
	}

	return as.Complete(ctx, req.Text, localContext)
}

// Complete runs the completion pipeline: model call, reasoning removal,
// completeness check, markdown cleanup. It always returns user-facing text;
// failures become one of the fixed reply messages.
func (as *AssistantService) Complete(ctx context.Context, userText, localContext string) string {
	systemPrompt := prompts.AssistantSystemPrompt(localContext)

	as.logger.Section("Calling LLM")
	raw, err := as.completer.StreamReply(ctx, systemPrompt, userText)
	if err != nil {
		as.logger.Error("Failed to get completion", err)
		return reply.NoAnswerMessage
	}

	answer := reply.ExtractAnswer(raw)
	if err := as.validator.Validate(answer); err != nil {
		as.logger.Warn("Discarding truncated completion", err, "chars", len(answer))
		return reply.IncompleteMessage
	}

	return reply.Sanitize(answer)
}
