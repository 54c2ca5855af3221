package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/mwhitfield/udl-assistant/internal/analysis/intent"
	"github.com/mwhitfield/udl-assistant/internal/config"
	"github.com/mwhitfield/udl-assistant/internal/model/chat"
	"github.com/mwhitfield/udl-assistant/internal/model/udl"
)

// Service owns the prompt chain against the model provider. One chain is
// compiled at startup and shared by all sessions.
type Service struct {
	chatModel model.ChatModel
	prompts   *AssistantPromptManager
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the chat chain from the configured model and the UDL
// framework knowledge.
func NewService(ctx context.Context, framework udl.Framework, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		prompts:   NewAssistantPromptManager(framework),
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled 指示是否开启 SSE 流式输出。
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// GenerateReply runs one chat turn: the prior history plus the new user
// message, under the configured upstream timeout. Failures come back as *Error
// with a classified kind; no retries.
func (s *Service) GenerateReply(ctx context.Context, token string, messages []chat.Message, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	label := intent.Classify(userMessage)
	input := buildChainInput(s.prompts, label, messages, userMessage)

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", classifyErr(err)
	}
	if response == nil || response.Content == "" {
		return "", &Error{Kind: KindMalformed, Err: fmt.Errorf("empty completion")}
	}

	log.Printf("[ai] generated reply for session=%s, intent=%s, length=%d", token, label, len(response.Content))
	return response.Content, nil
}

// StreamReply streams chat turn chunks via the configured chain.
func (s *Service) StreamReply(ctx context.Context, messages []chat.Message, userMessage string) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	label := intent.Classify(userMessage)
	input := buildChainInput(s.prompts, label, messages, userMessage)

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return nil, classifyErr(err)
	}

	return stream, nil
}

// buildChainInput fills the three prompt slots: the system block, the prior
// history in order, and the new user message last.
func buildChainInput(prompts *AssistantPromptManager, label intent.Label, messages []chat.Message, userMessage string) map[string]any {
	return map[string]any{
		"system":  prompts.BuildSystemPrompt(label),
		"history": buildHistoryMessages(messages),
		"query":   userMessage,
	}
}

// buildHistoryMessages converts the stored transcript into schema messages.
// The full history is resent on every turn; ordering is preserved exactly.
func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}
