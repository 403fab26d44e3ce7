/*
Package genai wraps the external text-generation backend. The client
speaks the OpenAI chat-completions wire format; the pool bounds how many
generation calls may be in flight at once across the whole process.
*/
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// --- Backend configuration ---
const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-4o"
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
	requestTimeout     = 30 * time.Second
)

// Options are the sampling parameters for one generation call. Zero
// values fall back to the defaults above.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.Temperature == 0 {
		o.Temperature = defaultTemperature
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = defaultMaxTokens
	}
	return o
}

// --- Structs for the chat-completions request/response ---

type chatPayload struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client issues synchronous generation calls. There is deliberately no
// retry loop: a failed call is reported to the caller, who decides how
// to surface it.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a client for the given credential. baseURL may be
// empty to use the public endpoint.
func NewClient(apiKey, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// NewClientFromEnv reads OPENAI_API_KEY and the optional OPENAI_BASE_URL.
func NewClientFromEnv(log zerolog.Logger) (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	return NewClient(apiKey, os.Getenv("OPENAI_BASE_URL"), log), nil
}

// Generate sends one prompt to the backend and returns the generated
// text. The prompt is carried as the system message, matching the
// backend contract the templates were written against.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	opts = opts.withDefaults()

	payload := chatPayload{
		Model:       opts.Model,
		Messages:    []chatMessage{{Role: "system", Content: prompt}},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.Info().Str("model", opts.Model).Int("prompt_len", len(prompt)).Msg("Calling generation backend")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn().Int("status", resp.StatusCode).Bytes("body", body).Msg("Generation backend returned non-200")
		return "", fmt.Errorf("backend returned %s", resp.Status)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("no content found in backend response")
	}
	return chat.Choices[0].Message.Content, nil
}
