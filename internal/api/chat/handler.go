package chat

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/pkg/logger"
	"github.com/seniorworks/chatbot-backend/internal/pkg/response"
	"github.com/seniorworks/chatbot-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

type Handler struct {
	usecase   ChatUsecase
	validator *validator.Validator
}

func NewHandler(usecase ChatUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// Chat handles POST /api/chat - one chat exchange
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Chat")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateChat(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "메시지가 비어있습니다.")
		return
	}

	ctx = logger.AddFields(ctx, zap.String("session_id", req.SessionID))
	ctxzap.Info(ctx, "handling chat exchange", zap.Int("message_length", len(req.Message)))

	resp, err := h.usecase.Chat(ctx, &req, r.Header.Get("User-Agent"))
	if err != nil {
		ctxzap.Error(ctx, "chat exchange failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		return
	}

	response.Success(w, resp)
}

// Conversations handles GET /api/conversations - paginated history
func (h *Handler) Conversations(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Conversations")

	sessionID := r.URL.Query().Get("session_id")
	page := queryInt(r, "page", defaultPage)
	perPage := queryInt(r, "per_page", defaultPerPage)

	if err := h.validator.ValidatePagination(page, perPage); err != nil {
		ctxzap.Error(ctx, "invalid pagination parameters", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	pageData, err := h.usecase.Conversations(ctx, sessionID, page, perPage)
	if err != nil {
		ctxzap.Error(ctx, "failed to list conversations", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		return
	}

	response.Success(w, pageData)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
