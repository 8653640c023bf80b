package chat

import (
	"context"

	"github.com/seniorworks/chatbot-backend/internal/entity"
)

// RAGEngine answers a user query given recent dialogue. It is fail-soft:
// the returned text is always safe to show the user.
type RAGEngine interface {
	Answer(ctx context.Context, query string, history []*entity.Conversation) string
}
