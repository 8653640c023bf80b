package gemini

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/seniorworks/chatbot-backend/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Embedder produces fixed-dimension vectors via the Gemini embedding
// model. Each call is independent; a failure never corrupts prior state.
type Embedder struct {
	client *genai.Client
	config config.GeminiConfig
	logger *zap.Logger
}

func NewEmbedder(client *genai.Client, cfg config.GeminiConfig, logger *zap.Logger) *Embedder {
	return &Embedder{
		client: client,
		config: cfg,
		logger: logger,
	}
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	opts := append(e.config.Retry.ToRetryOptions(), retry.Context(ctx))

	vec, err := retry.DoWithData(func() ([]float32, error) {
		callCtx, cancel := context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
		return e.embed(callCtx, text)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}

	ctxzap.Debug(ctx, "text embedded",
		zap.Int("text_length", len(text)),
		zap.Int("dimension", len(vec)),
	)

	return vec, nil
}

func (e *Embedder) embed(ctx context.Context, text string) ([]float32, error) {
	outputDim := int32(e.config.EmbedDimension)
	cfg := &genai.EmbedContentConfig{
		OutputDimensionality: &outputDim,
	}

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	result, err := e.client.Models.EmbedContent(ctx, e.config.EmbedModel, contents, cfg)
	if err != nil {
		return nil, err
	}

	if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0].Values == nil {
		return nil, fmt.Errorf("no embedding returned from provider")
	}

	vec := result.Embeddings[0].Values
	if len(vec) != e.config.EmbedDimension {
		return nil, fmt.Errorf("embedding dimension mismatch: expected %d, got %d", e.config.EmbedDimension, len(vec))
	}

	return vec, nil
}
