package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitfield/udl-assistant/internal/model/chat"
	chatService "github.com/mwhitfield/udl-assistant/internal/service/chat"
	"github.com/mwhitfield/udl-assistant/pkg/utils"
)

// ReplyGenerator produces the assistant reply for one chat turn. Implemented
// by the AI service; stubbed in tests.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, token string, messages []chat.Message, userMessage string) (string, error)
}

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc   *chatService.Service
	generator ReplyGenerator
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, generator ReplyGenerator) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		generator: generator,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/session/{token}", h.handleGetSession)
	r.Get("/sessions", h.handleListSessions)
	r.Get("/health", h.handleHealth)
}

// handleChat 处理一轮对话：定位或创建会话，追加用户消息，调用模型，
// 追加助手回复。模型失败时用户消息保留，助手侧不写入。
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, utils.KindInvalidInput, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, utils.KindInvalidInput, "message is required")
		return
	}

	ctx := r.Context()
	session, err := h.resolveSession(ctx, payload.Token)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, utils.KindInternal, "failed to create session")
		return
	}

	// History before this turn; the new message travels as the query slot.
	history, err := h.chatSvc.Transcript(ctx, session.Token)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, utils.KindInternal, "failed to load transcript")
		return
	}

	if _, err := h.chatSvc.AppendMessage(ctx, session.Token, chat.RoleUser, message); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, utils.KindInternal, "failed to record message")
		return
	}

	reply, err := h.generator.GenerateReply(ctx, session.Token, history, message)
	if err != nil {
		log.Printf("[chat] model call failed for session=%s: %v", session.Token, err)
		utils.RespondError(w, http.StatusBadGateway, utils.KindModelUnavailable, "model provider unavailable")
		return
	}

	if _, err := h.chatSvc.AppendMessage(ctx, session.Token, chat.RoleAssistant, reply); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, utils.KindInternal, "failed to record reply")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"token":        session.Token,
		"reply":        reply,
		"messageCount": len(history) + 2,
	})
}

// resolveSession 返回既有会话；token 为空或未知时创建新会话。
func (h *Handler) resolveSession(ctx context.Context, token string) (chat.Session, error) {
	token = strings.TrimSpace(token)
	if token != "" {
		session, err := h.chatSvc.GetSession(ctx, token)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, chatService.ErrSessionNotFound) {
			return chat.Session{}, err
		}
	}
	return h.chatSvc.CreateSession(ctx)
}

// handleGetSession 返回单个会话的完整历史
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	session, err := h.chatSvc.GetSession(r.Context(), token)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, utils.KindSessionNotFound, "session not found")
		return
	}

	messages, err := h.chatSvc.Transcript(r.Context(), token)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, utils.KindSessionNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"token":        session.Token,
		"createdAt":    session.CreatedAt,
		"lastActivity": session.LastActiveAt,
		"messages":     messages,
	})
}

// handleListSessions 列出所有会话摘要，仅用于诊断，不含消息内容
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	summaries := h.chatSvc.ListSessions(r.Context())
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessions": summaries,
		"count":    len(summaries),
	})
}

// handleHealth 健康检查
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"activeSessions": h.chatSvc.ActiveSessions(r.Context()),
	})
}
