package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"gramin/internal/config"
	"gramin/internal/util"
)

// CompletionService streams chat completions from an OpenAI-compatible API
type CompletionService struct {
	client          *openai.Client
	model           string
	reasoningEffort string
	maxTokens       int
	logger          *util.Logger
}

// NewCompletionService creates a completion service pointed at cfg.LLMBaseURL
func NewCompletionService(cfg *config.Config) *CompletionService {
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		clientCfg.BaseURL = cfg.LLMBaseURL
	}

	return &CompletionService{
		client:          openai.NewClientWithConfig(clientCfg),
		model:           cfg.LLMModel,
		reasoningEffort: cfg.LLMReasoningEffort,
		maxTokens:       cfg.LLMMaxTokens,
		logger:          util.NewLogger("CompletionService"),
	}
}

// StreamReply sends a system+user message pair and returns the streamed
// content concatenated in arrival order. The text is returned as received,
// reasoning trace included.
func (cs *CompletionService) StreamReply(ctx context.Context, systemPrompt, userText string) (string, error) {
	cs.logger.Start("Stream Reply")
	defer cs.logger.End("Stream Reply")

	stream, err := cs.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: cs.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		ReasoningEffort:     cs.reasoningEffort,
		MaxCompletionTokens: cs.maxTokens,
		Stream:              true,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion stream failed: %w", err)
	}
	defer stream.Close()

	var reply strings.Builder
	chunks := 0
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("chat completion stream interrupted: %w", err)
		}

		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		reply.WriteString(chunk.Choices[0].Delta.Content)
		chunks++
	}

	cs.logger.KeyValue("stream finished", "chunks", chunks, "chars", reply.Len())
	return reply.String(), nil
}
