package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seniorworks/chatbot-backend/internal/entity"
)

// ConversationRepository is the conversation-store interface the core
// consumes: fetch the most recent turns for a session and append a new
// one. Existing turns are never mutated or deleted.
type ConversationRepository interface {
	Create(ctx context.Context, conv *entity.Conversation) (*entity.Conversation, error)
	RecentBySession(ctx context.Context, sessionID string, limit int) ([]*entity.Conversation, error)
	ListPage(ctx context.Context, sessionID string, page, perPage int) ([]*entity.Conversation, int, error)
}

var _ ConversationRepository = &ConversationPostgres{}

// ConversationPostgres implements ConversationRepository using PostgreSQL
type ConversationPostgres struct {
	db *pgxpool.Pool
}

func NewConversationPostgres(db *pgxpool.Pool) *ConversationPostgres {
	return &ConversationPostgres{db: db}
}

func (r *ConversationPostgres) Create(ctx context.Context, conv *entity.Conversation) (*entity.Conversation, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO conversations (session_id, user_message, bot_response, user_agent)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		conv.SessionID, conv.UserMessage, conv.BotResponse, conv.UserAgent,
	)

	created := *conv
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	return &created, nil
}

// RecentBySession returns the newest turns first, at most limit of them.
func (r *ConversationPostgres) RecentBySession(ctx context.Context, sessionID string, limit int) ([]*entity.Conversation, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, user_message, bot_response, COALESCE(user_agent, ''), created_at
		FROM conversations
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent conversations: %w", err)
	}
	defer rows.Close()

	return scanConversations(rows)
}

// ListPage returns one page of conversations, newest first, together with
// the total row count for the filter. An empty sessionID lists across all
// sessions.
func (r *ConversationPostgres) ListPage(ctx context.Context, sessionID string, page, perPage int) ([]*entity.Conversation, int, error) {
	offset := (page - 1) * perPage

	var total int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM conversations
		WHERE ($1 = '' OR session_id = $1)`,
		sessionID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count conversations: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, user_message, bot_response, COALESCE(user_agent, ''), created_at
		FROM conversations
		WHERE ($1 = '' OR session_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		sessionID, perPage, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query conversations page: %w", err)
	}
	defer rows.Close()

	convs, err := scanConversations(rows)
	if err != nil {
		return nil, 0, err
	}

	return convs, total, nil
}

func scanConversations(rows pgx.Rows) ([]*entity.Conversation, error) {
	var convs []*entity.Conversation
	for rows.Next() {
		conv := &entity.Conversation{}
		if err := rows.Scan(
			&conv.ID, &conv.SessionID, &conv.UserMessage,
			&conv.BotResponse, &conv.UserAgent, &conv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		convs = append(convs, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}
	return convs, nil
}
