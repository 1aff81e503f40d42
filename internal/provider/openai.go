package provider

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

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultMaxTokens     = 2000
)

// OpenAIService talks to the OpenAI chat-completions API (or any
// API-compatible endpoint).
type OpenAIService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenAIService(apiKey, baseURL, model string) *OpenAIService {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		// Per-attempt deadlines come from the caller's context; the
		// transport timeout is only a safety net.
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (s *OpenAIService) Name() string {
	return "openai"
}

func (s *OpenAIService) Generate(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
	start := time.Now()

	apiKey := s.apiKey
	if cfg.APIKey != "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return nil, &Error{Service: s.Name(), Status: http.StatusUnauthorized, Message: "OpenAI API key is not configured"}
	}

	model := s.model
	if cfg.Model != "" {
		model = cfg.Model
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.Prompt},
		},
		"max_tokens":  maxTokens,
		"temperature": req.Temperature,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Service: s.Name(), Message: fmt.Sprintf("failed to marshal request: %v", err), Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, &Error{Service: s.Name(), Message: fmt.Sprintf("failed to create request: %v", err), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(s.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Service: s.Name(),
			Status:  resp.StatusCode,
			Message: readAPIError(resp.Body),
		}
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, &Error{Service: s.Name(), Message: fmt.Sprintf("failed to decode response: %v", err), Err: err}
	}
	if len(completion.Choices) == 0 {
		return nil, &Error{Service: s.Name(), Message: "response contained no choices"}
	}

	return &GenerateResult{
		ServiceName: s.Name(),
		Text:        strings.TrimSpace(completion.Choices[0].Message.Content),
		Model:       model,
		Latency:     time.Since(start),
	}, nil
}

func (s *OpenAIService) IsAvailable(ctx context.Context) error {
	if s.apiKey == "" {
		return fmt.Errorf("OpenAI API key required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("OpenAI not available: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OpenAI returned status %d", resp.StatusCode)
	}
	return nil
}

// readAPIError pulls the provider's error message out of a non-200 body.
// The message is kept for display only; it plays no part in retry
// classification.
func readAPIError(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return strings.TrimSpace(string(data))
}
