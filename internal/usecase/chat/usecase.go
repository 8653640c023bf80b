package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/repository"
	"go.uber.org/zap"
)

// ChatUsecase implements one chat exchange: recent history in, generated
// answer out, new turn persisted.
type ChatUsecase struct {
	convRepo          repository.ConversationRepository
	engine            RAGEngine
	historyFetchLimit int
	logger            *zap.Logger
}

func NewUsecase(
	convRepo repository.ConversationRepository,
	engine RAGEngine,
	historyFetchLimit int,
	logger *zap.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		convRepo:          convRepo,
		engine:            engine,
		historyFetchLimit: historyFetchLimit,
		logger:            logger,
	}
}

// Chat runs one exchange. A missing session ID starts a new session. The
// engine is fail-soft, so the only errors surfaced here come from the
// conversation store.
func (uc *ChatUsecase) Chat(ctx context.Context, req *entity.ChatRequest, userAgent string) (*entity.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
		ctxzap.Info(ctx, "new chat session started", zap.String("session_id", sessionID))
	}

	history, err := uc.convRepo.RecentBySession(ctx, sessionID, uc.historyFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch conversation history: %w", err)
	}

	answer := uc.engine.Answer(ctx, req.Message, history)

	turn := &entity.Conversation{
		SessionID:   sessionID,
		UserMessage: req.Message,
		BotResponse: answer,
		UserAgent:   userAgent,
	}
	created, err := uc.convRepo.Create(ctx, turn)
	if err != nil {
		return nil, fmt.Errorf("persist conversation turn: %w", err)
	}

	return &entity.ChatResponse{
		Response:  answer,
		SessionID: sessionID,
		Timestamp: created.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Conversations returns one page of stored history, newest first.
func (uc *ChatUsecase) Conversations(ctx context.Context, sessionID string, page, perPage int) (*entity.ConversationPage, error) {
	convs, total, err := uc.convRepo.ListPage(ctx, sessionID, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	pages := (total + perPage - 1) / perPage

	return &entity.ConversationPage{
		Conversations: convs,
		Total:         total,
		Pages:         pages,
		CurrentPage:   page,
	}, nil
}
