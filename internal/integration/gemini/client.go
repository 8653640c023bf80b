package gemini

import (
	"context"
	"fmt"

	"github.com/seniorworks/chatbot-backend/internal/config"
	"google.golang.org/genai"
)

// NewClient builds the shared genai client used by both the embedding and
// generation connectors. The embedding space must match between indexing
// and querying, so both sides share one client and one configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set GEMINI_API_KEY)")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize genai client: %w", err)
	}

	return client, nil
}
