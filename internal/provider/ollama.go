package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOllamaModel   = "llama3.2"
)

// OllamaService talks to a self-hosted Ollama instance. Useful for running
// the whole pipeline without an external API key.
type OllamaService struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = DefaultOllamaBaseURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	return &OllamaService{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (s *OllamaService) Name() string {
	return "ollama"
}

func (s *OllamaService) Generate(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
	start := time.Now()

	model := s.model
	if cfg.Model != "" {
		model = cfg.Model
	}

	body := map[string]any{
		"model":  model,
		"system": req.System,
		"prompt": req.Prompt,
		"stream": false,
		"options": map[string]any{
			"temperature": req.Temperature,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Service: s.Name(), Message: fmt.Sprintf("failed to marshal request: %v", err), Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/generate", bytes.NewReader(jsonData))
	if err != nil {
		return nil, &Error{Service: s.Name(), Message: fmt.Sprintf("failed to create request: %v", err), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(s.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Service: s.Name(), Status: resp.StatusCode, Message: readAPIError(resp.Body)}
	}

	var ollamaResp struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return nil, &Error{Service: s.Name(), Message: fmt.Sprintf("failed to decode response: %v", err), Err: err}
	}

	return &GenerateResult{
		ServiceName: s.Name(),
		Text:        strings.TrimSpace(ollamaResp.Response),
		Model:       model,
		Latency:     time.Since(start),
	}, nil
}

func (s *OllamaService) IsAvailable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("Ollama not available: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Ollama returned status %d", resp.StatusCode)
	}
	return nil
}
