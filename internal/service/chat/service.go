package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/udl-assistant/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidRole     = errors.New("invalid message role")
)

// Service owns all conversation state. Sessions live for the process
// lifetime; there is no eviction or expiry.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
}

// NewService bootstraps the in-memory session store.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]chat.Session),
		messages: make(map[string][]chat.Message),
	}
}

// CreateSession provisions an empty session under a fresh token. The token is
// guaranteed absent from the store at the time it is returned.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	for {
		if _, exists := s.sessions[token]; !exists {
			break
		}
		token = uuid.NewString()
	}

	session := chat.Session{
		Token:        token,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	s.sessions[token] = session
	s.messages[token] = make([]chat.Message, 0, 16)

	return session, nil
}

// GetSession retrieves a session by token.
func (s *Service) GetSession(_ context.Context, token string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// AppendMessage appends a turn to the session history and bumps the
// last-activity timestamp. History is append-only and holds user and
// assistant turns only; system content is injected at prompt-build time.
func (s *Service) AppendMessage(_ context.Context, token, role, content string) (chat.Message, error) {
	if role != chat.RoleUser && role != chat.RoleAssistant {
		return chat.Message{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return chat.Message{}, ErrSessionNotFound
	}

	message := chat.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	s.messages[token] = append(s.messages[token], message)
	session.LastActiveAt = message.CreatedAt
	s.sessions[token] = session

	return message, nil
}

// Transcript returns a snapshot of the session history in append order.
func (s *Service) Transcript(_ context.Context, token string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[token]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// ListSessions returns diagnostic summaries for all live sessions.
func (s *Service) ListSessions(_ context.Context) []chat.SessionSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]chat.SessionSummary, 0, len(s.sessions))
	for token, session := range s.sessions {
		summaries = append(summaries, chat.SessionSummary{
			Token:        token,
			MessageCount: len(s.messages[token]),
			CreatedAt:    session.CreatedAt,
			LastActiveAt: session.LastActiveAt,
		})
	}
	return summaries
}

// ActiveSessions reports the number of live sessions for health checks.
func (s *Service) ActiveSessions(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
