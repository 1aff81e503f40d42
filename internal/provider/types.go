// Package provider contains the clients that submit composed prompts to
// external text-generation services, plus the retry and error
// classification layer shared by all of them.
package provider

import (
	"context"
	"time"
)

// ServiceConfig carries per-request provider settings. Zero values fall
// back to service defaults.
type ServiceConfig struct {
	APIKey    string        `mapstructure:"api_key" json:"api_key"`
	Model     string        `mapstructure:"model" json:"model"`
	BaseURL   string        `mapstructure:"base_url" json:"base_url"`
	MaxTokens int           `mapstructure:"max_tokens" json:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout"`
}

// GenerateRequest is one composed generation call.
type GenerateRequest struct {
	// Prompt is the full user prompt: style instruction, length
	// instruction, language-preservation block, and the original text.
	Prompt string `json:"prompt"`
	// System is the system instruction sent alongside the prompt.
	System string `json:"system"`
	// Temperature is the resolved sampling temperature.
	Temperature float64 `json:"temperature"`
}

// GenerateResult is the raw output of one successful generation call.
type GenerateResult struct {
	ServiceName string        `json:"service_name"`
	Text        string        `json:"text"`
	Model       string        `json:"model"`
	Latency     time.Duration `json:"latency"`
}

// GenerationService is the boundary to one external text-generation
// provider. Implementations hold no mutable state between calls; a single
// instance is safe to use from concurrent sessions.
type GenerationService interface {
	Name() string
	Generate(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error)
	IsAvailable(ctx context.Context) error
}
