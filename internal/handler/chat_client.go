package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrChatUpstream marks a non-success status from the completion API.
var ErrChatUpstream = errors.New("chat upstream error")

// ChatCompleter requests a completion for a user message.
type ChatCompleter interface {
	Complete(ctx context.Context, message string) (string, error)
}

// ChatClient talks to an OpenAI-compatible chat-completions endpoint.
type ChatClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	system  string
}

// NewChatClient builds a chat client for the given endpoint and model.
func NewChatClient(client *http.Client, baseURL, apiKey, model, systemPrompt string) *ChatClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ChatClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		system:  systemPrompt,
	}
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
}

// Complete sends the system persona plus the user message and returns the
// first completion's text, empty when the upstream supplies none.
func (c *ChatClient) Complete(ctx context.Context, message string) (string, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.system},
			{Role: "user", Content: message},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrChatUpstream, resp.StatusCode, string(detail))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("could not decode chat response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

var _ ChatCompleter = (*ChatClient)(nil)
