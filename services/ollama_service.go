package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ChatMessage is one turn sent to or received from the completion service.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the narrow surface the chat pipeline needs from a language
// model: submit ordered messages, get back text or an error.
type Completer interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

type OllamaService struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaService() *OllamaService {
	base := os.Getenv("OLLAMA_URL")
	if base == "" {
		base = "http://localhost:11434"
	}
	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		model = "tinyllama"
	}
	return &OllamaService{
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type ollamaOptions struct {
	NumCtx      int     `json:"num_ctx"`
	TopK        int     `json:"top_k"`
	TopP        float64 `json:"top_p"`
	Temperature float64 `json:"temperature"`
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options"`
}

type ollamaChatResponse struct {
	Message ChatMessage `json:"message"`
}

func (s *OllamaService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    s.model,
		Messages: messages,
		Stream:   false,
		Options:  ollamaOptions{NumCtx: 2048, TopK: 30, TopP: 0.9, Temperature: 0.7},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot connect to Ollama at %s: %w", s.baseURL, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out ollamaChatResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if out.Message.Content == "" {
		return "", fmt.Errorf("no response from model")
	}
	return out.Message.Content, nil
}
