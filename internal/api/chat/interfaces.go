package chat

import (
	"context"

	"github.com/seniorworks/chatbot-backend/internal/entity"
)

type ChatUsecase interface {
	Chat(ctx context.Context, req *entity.ChatRequest, userAgent string) (*entity.ChatResponse, error)
	Conversations(ctx context.Context, sessionID string, page, perPage int) (*entity.ConversationPage, error)
}
