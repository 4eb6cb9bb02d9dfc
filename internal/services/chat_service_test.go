package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larderlog/backend/internal/config"
)

func TestChatService_Disabled(t *testing.T) {
	svc := NewChatService(config.ChatConfig{})

	assert.False(t, svc.Enabled())

	_, err := svc.Complete(context.Background(), "empty", "hello")
	assert.ErrorIs(t, err, ErrChatDisabled)
}

func TestChatService_Complete(t *testing.T) {
	var gotAuth string
	var gotReq chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "use the milk first"}},
			},
		})
	}))
	defer server.Close()

	svc := NewChatService(config.ChatConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test-model",
	})

	reply, err := svc.Complete(context.Background(), "milk (1.0 l, expires 2026-09-02)", "what should I cook?")
	assert.NoError(t, err)
	assert.Equal(t, "use the milk first", reply)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	if assert.Len(t, gotReq.Messages, 2) {
		assert.Equal(t, "system", gotReq.Messages[0].Role)
		assert.Contains(t, gotReq.Messages[0].Content, "milk")
		assert.Equal(t, "what should I cook?", gotReq.Messages[1].Content)
	}
}

func TestChatService_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer server.Close()

	svc := NewChatService(config.ChatConfig{APIKey: "test-key", BaseURL: server.URL, Model: "test-model"})

	_, err := svc.Complete(context.Background(), "empty", "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
