package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultRouterURL is the Hugging Face inference router, an
// OpenAI-compatible chat-completions endpoint.
const DefaultRouterURL = "https://router.huggingface.co/v1/chat/completions"

// RouterClient calls an OpenAI-compatible Chat Completions API.
type RouterClient struct {
	http        *http.Client
	apiKey      string
	model       string
	baseURL     string
	maxTokens   int
	temperature float32
}

// NewRouterClient creates a client for one hosted model. An empty baseURL
// selects the Hugging Face router.
func NewRouterClient(apiKey, model, baseURL string, maxTokens int, temperature float32) *RouterClient {
	if baseURL == "" {
		baseURL = DefaultRouterURL
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &RouterClient{
		http:        &http.Client{Timeout: 60 * time.Second},
		apiKey:      apiKey,
		model:       model,
		baseURL:     baseURL,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (c *RouterClient) Name() string { return "Router:" + c.model }
func (c *RouterClient) Close() error { return nil }

type chatReq struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
}
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type chatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as a single user message and returns the
// first choice's content, trimmed.
func (c *RouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatReq{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(body) > max {
			body = body[:max]
		}
		err := fmt.Errorf("router: unexpected status %s: %s", resp.Status, string(body))
		if resp.StatusCode == 400 && strings.Contains(string(body), `"code":"context_length_exceeded"`) {
			return "", NewPermanentError(err)
		}
		return "", err
	}
	var out chatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
