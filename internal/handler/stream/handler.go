package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/cloudwego/eino/schema"

	"github.com/mwhitfield/udl-assistant/internal/model/chat"
	aiService "github.com/mwhitfield/udl-assistant/internal/service/ai"
	chatService "github.com/mwhitfield/udl-assistant/internal/service/chat"
	"github.com/mwhitfield/udl-assistant/pkg/utils"
)

// Handler manages streaming assistant replies via Server-Sent Events
type Handler struct {
	aiService *aiService.Service
	chatSvc   *chatService.Service
}

// New creates a new stream handler
func New(aiSvc *aiService.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{
		aiService: aiSvc,
		chatSvc:   chatSvc,
	}
}

// StreamResponse represents a streaming response chunk
type StreamResponse struct {
	Event    string `json:"event"`
	Content  string `json:"content,omitempty"`
	Token    string `json:"token,omitempty"`
	Finished bool   `json:"finished,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleStreamRequest processes one streaming chat turn for an existing
// session. Unlike POST /api/chat it never creates sessions.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, token string, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	session, err := h.chatSvc.GetSession(ctx, token)
	if err != nil {
		h.sendSSEError(w, flusher, "session not found")
		return err
	}

	history, err := h.chatSvc.Transcript(ctx, session.Token)
	if err != nil {
		h.sendSSEError(w, flusher, "failed to load conversation")
		return err
	}

	// Save user message. When the client already persisted the turn via REST,
	// avoid duplicating it.
	if !hasMatchingUserMessage(history, userMessage) {
		if _, err := h.chatSvc.AppendMessage(ctx, session.Token, chat.RoleUser, userMessage); err != nil {
			log.Printf("[stream] failed to save user message: %v", err)
		}
	} else {
		// The stored duplicate is this turn's query, not prior history.
		history = history[:len(history)-1]
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event: "start",
		Token: session.Token,
	})

	response, err := h.dispatchReply(ctx, w, flusher, session.Token, history, userMessage)
	if err != nil {
		h.sendSSEError(w, flusher, "assistant reply generation failed")
		return err
	}

	if _, err := h.chatSvc.AppendMessage(ctx, session.Token, chat.RoleAssistant, response.Content); err != nil {
		log.Printf("[stream] failed to save assistant message: %v", err)
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:    "end",
		Token:    session.Token,
		Finished: true,
	})

	log.Printf("[stream] completed reply for session=%s", session.Token)
	return nil
}

func (h *Handler) dispatchReply(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, token string, history []chat.Message, userMessage string) (*schema.Message, error) {
	if h.aiService.StreamingEnabled() {
		return h.streamReply(ctx, w, flusher, token, history, userMessage)
	}

	reply, err := h.aiService.GenerateReply(ctx, token, history, userMessage)
	if err != nil {
		return nil, err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:   "message",
		Token:   token,
		Content: reply,
	})

	return &schema.Message{Role: schema.Assistant, Content: reply}, nil
}

func (h *Handler) streamReply(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, token string, history []chat.Message, userMessage string) (*schema.Message, error) {
	stream, err := h.aiService.StreamReply(ctx, history, userMessage)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)

	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return nil, recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.sendSSE(w, flusher, StreamResponse{
				Event:   "delta",
				Token:   token,
				Content: chunk.Content,
			})
		}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return nil, err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:   "message",
		Token:   token,
		Content: response.Content,
	})

	return response, nil
}

func hasMatchingUserMessage(messages []chat.Message, content string) bool {
	if len(messages) == 0 {
		return false
	}

	last := messages[len(messages)-1]
	return last.Role == chat.RoleUser && last.Content == content
}

// sendSSE sends a Server-Sent Event
func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEChunk(w, flusher, response)
}

// sendSSEError sends an error via Server-Sent Events
func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{
		Event: "error",
		Error: errorMsg,
	})
}
