package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/seniorworks/chatbot-backend/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Generator invokes the Gemini chat model with a fully assembled prompt.
// Callers are expected to treat any returned error as a soft failure.
type Generator struct {
	client *genai.Client
	config config.GeminiConfig
	logger *zap.Logger
}

func NewGenerator(client *genai.Client, cfg config.GeminiConfig, logger *zap.Logger) *Generator {
	return &Generator{
		client: client,
		config: cfg,
		logger: logger,
	}
}

func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	opts := append(g.config.Retry.ToRetryOptions(), retry.Context(ctx))

	text, err := retry.DoWithData(func() (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
		return g.complete(callCtx, prompt)
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("generate completion: %w", err)
	}

	ctxzap.Info(ctx, "completion generated",
		zap.Int("prompt_length", len(prompt)),
		zap.Int("response_length", len(text)),
	)

	return text, nil
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.config.Temperature),
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, g.config.ChatModel, contents, cfg)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("no text in provider response")
	}

	return text.String(), nil
}
