package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIService_Generate_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "  Restyled output.  "}},
			},
		})
	}))
	defer server.Close()

	svc := NewOpenAIService("test-key", server.URL, "")
	res, err := svc.Generate(context.Background(), ServiceConfig{}, GenerateRequest{
		Prompt:      "rewrite this",
		System:      "system text",
		Temperature: 0.57,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Restyled output." {
		t.Errorf("expected trimmed text, got %q", res.Text)
	}
	if res.Model != DefaultOpenAIModel {
		t.Errorf("expected default model, got %q", res.Model)
	}
	if gotBody["temperature"].(float64) != 0.57 {
		t.Errorf("temperature not forwarded: %v", gotBody["temperature"])
	}
}

func TestOpenAIService_Generate_NoAPIKey(t *testing.T) {
	svc := NewOpenAIService("", "", "")

	_, err := svc.Generate(context.Background(), ServiceConfig{}, GenerateRequest{})
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", perr.Status)
	}
	if perr.Retryable() {
		t.Error("missing API key must not be retryable")
	}
}

func TestOpenAIService_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Rate limit reached"},
		})
	}))
	defer server.Close()

	svc := NewOpenAIService("test-key", server.URL, "")
	_, err := svc.Generate(context.Background(), ServiceConfig{}, GenerateRequest{})
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Status != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", perr.Status)
	}
	if perr.Message != "Rate limit reached" {
		t.Errorf("expected API message, got %q", perr.Message)
	}
	if !perr.Retryable() {
		t.Error("429 must be retryable")
	}
}

func TestOpenAIService_Generate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	svc := NewOpenAIService("test-key", server.URL, "")
	if _, err := svc.Generate(context.Background(), ServiceConfig{}, GenerateRequest{}); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestOpenAIService_Generate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	svc := NewOpenAIService("test-key", server.URL, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, ServiceConfig{}, GenerateRequest{})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("expected *Error, got %T", err)
	}
}

func TestOllamaService_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["stream"] != false {
			t.Error("expected stream=false")
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "Local restyle."})
	}))
	defer server.Close()

	svc := NewOllamaService(server.URL, "")
	res, err := svc.Generate(context.Background(), ServiceConfig{}, GenerateRequest{Prompt: "p", Temperature: 0.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Local restyle." {
		t.Errorf("unexpected text %q", res.Text)
	}
	if res.ServiceName != "ollama" {
		t.Errorf("unexpected service name %q", res.ServiceName)
	}
}

func TestOllamaService_Generate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model crashed"))
	}))
	defer server.Close()

	svc := NewOllamaService(server.URL, "")
	_, err := svc.Generate(context.Background(), ServiceConfig{}, GenerateRequest{})
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", perr.Status)
	}
}

func TestOllamaService_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewOllamaService(server.URL, "")
	if err := svc.IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
