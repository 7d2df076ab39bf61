// internal/generator/generator.go
package generator

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	apperrors "marketing-asset-backend/pkg/errors"
)

// SystemPrompt establishes the copywriter persona for every generation.
const SystemPrompt = "You are an expert marketing copywriter and strategist. Create compelling, professional marketing content that drives results."

var errEmptyCompletion = errors.New("model returned no content")

// ContentGenerator turns a rendered prompt into marketing copy.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type openAIGenerator struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewOpenAIGenerator returns a ContentGenerator backed by the chat completions API.
// Every call is an independent exchange; no conversation state is kept.
func NewOpenAIGenerator(cfg Config) ContentGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &openAIGenerator{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	sessionID := uuid.NewString()
	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		User:      sessionID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		zap.L().Error("AI generation error",
			zap.String("session_id", sessionID),
			zap.String("model", g.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", apperrors.NewGenerationFailureError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		zap.L().Error("AI generation returned empty content",
			zap.String("session_id", sessionID),
			zap.String("model", g.model))
		return "", apperrors.NewGenerationFailureError(errEmptyCompletion)
	}

	zap.L().Info("AI generation completed",
		zap.String("session_id", sessionID),
		zap.String("model", resp.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}
