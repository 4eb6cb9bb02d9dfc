package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/larderlog/backend/internal/config"
)

// ErrChatDisabled is returned when no API key is configured.
var ErrChatDisabled = errors.New("chat is not configured")

// ChatService forwards messages to an OpenAI-compatible chat-completions
// endpoint, prefixing a system prompt built from the caller's inventory.
type ChatService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewChatService builds the pass-through client.
func NewChatService(cfg config.ChatConfig) *ChatService {
	return &ChatService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether an API key is configured.
func (s *ChatService) Enabled() bool {
	return s.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the user message with the inventory context and returns
// the assistant reply.
func (s *ChatService) Complete(ctx context.Context, inventoryContext, message string) (string, error) {
	if !s.Enabled() {
		return "", ErrChatDisabled
	}

	system := "You are a helpful home-inventory assistant. The user's current inventory: " + inventoryContext
	reqBody := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: message},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("chat completion failed: %s", out.Error.Message)
		}
		return "", fmt.Errorf("chat completion failed with status %d", resp.StatusCode)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
