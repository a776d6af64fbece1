package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

var ErrMissingGroqAPIKey = errors.New("missing GROQ_API_KEY")

const (
	groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	groqModel    = "llama-3.1-8b-instant"

	systemPrompt = "You are a helpful e-commerce assistant. Answer clearly and shortly."
)

// GroqClient answers shopping-assistant questions through Groq's
// OpenAI-compatible chat-completions API.
type GroqClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewGroqClient(apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		log.Printf("[chat][gateway] missing GROQ_API_KEY")
		return nil, ErrMissingGroqAPIKey
	}
	return &GroqClient{
		apiKey:     apiKey,
		endpoint:   groqEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *GroqClient) Reply(ctx context.Context, message string) (string, string, error) {
	body, err := json.Marshal(completionRequest{
		Model: groqModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[chat][gateway] request failed err=%v", err)
		return "", "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[chat][gateway] upstream error status=%d body_len=%d", resp.StatusCode, len(respBody))
		return "", "", fmt.Errorf("assistant upstream returned status %d", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", "", err
	}
	if len(completion.Choices) == 0 {
		return "", "", errors.New("no reply from assistant")
	}

	reply := completion.Choices[0].Message
	return reply.Role, reply.Content, nil
}
