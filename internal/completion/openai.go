package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hawkarm/heval-bot/internal/models"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Map our turn roles onto chat-completion roles.
var roleNames = map[models.Role]string{
	models.RoleUser:  openai.ChatMessageRoleUser,
	models.RoleModel: openai.ChatMessageRoleAssistant,
}

type OpenAICompleter struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewOpenAICompleter(apiKey string, model string, maxTokens int, temperature float64, logger *zap.Logger) *OpenAICompleter {
	return &OpenAICompleter{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, history []models.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, turn := range history {
		role, ok := roleNames[turn.Role]
		if !ok {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
		},
	)
	if err != nil {
		c.logger.Debug("Chat completion request failed", zap.Error(err))
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat completion returned empty text")
	}
	return reply, nil
}
