// Package transformer orchestrates one text style transformation:
// validate, resolve the style profile and temperature, call the generation
// provider, and wrap the outcome. It is the only component allowed to talk
// to the generation client, and every failure it returns is a typed
// *internal.Error.
package transformer

import (
	"context"
	"log/slog"
	"time"

	"github.com/valpere/restyle/internal"
	"github.com/valpere/restyle/internal/detector"
	"github.com/valpere/restyle/internal/logging"
	"github.com/valpere/restyle/internal/postprocess"
	"github.com/valpere/restyle/internal/provider"
	"github.com/valpere/restyle/internal/styles"
	"github.com/valpere/restyle/internal/textstat"
	"github.com/valpere/restyle/internal/validator"
)

// Transformer is the single entry point for transformations. Safe for
// concurrent use across sessions; it holds no per-request state.
type Transformer struct {
	catalog   *styles.Catalog
	validator *validator.Validator
	client    provider.GenerationService
	cfg       provider.ServiceConfig
	logger    *slog.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) { t.logger = logger }
}

// WithServiceConfig sets per-request provider settings (model, API key,
// token limit) forwarded to the generation client.
func WithServiceConfig(cfg provider.ServiceConfig) Option {
	return func(t *Transformer) { t.cfg = cfg }
}

// New creates a Transformer over the given catalog and generation client.
// The client is expected to carry its own retry policy (provider.Client).
func New(catalog *styles.Catalog, client provider.GenerationService, opts ...Option) *Transformer {
	t := &Transformer{
		catalog:   catalog,
		validator: validator.New(catalog),
		client:    client,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SupportedStyles returns the ids the catalog can resolve, for
// introspection endpoints.
func (t *Transformer) SupportedStyles() []string {
	return t.catalog.IDs()
}

// Transform runs the full sequence for one request. Validation always runs
// to completion before any network work; on success the result carries the
// elapsed wall-clock time in milliseconds.
func (t *Transformer) Transform(ctx context.Context, req internal.TransformRequest) (*internal.TransformResult, error) {
	start := time.Now()

	if err := t.validator.Validate(req.Text, req.StyleID); err != nil {
		return nil, err
	}

	profile, err := t.catalog.Resolve(req.StyleID)
	if err != nil {
		return nil, err
	}

	originalLength := textstat.Length(req.Text)
	temperature := styles.ResolveTemperature(profile, originalLength, req.TargetLength)
	prompt := provider.BuildPrompt(profile.Prompt, req.TargetLength, req.Text)

	res, err := t.client.Generate(ctx, t.cfg, provider.GenerateRequest{
		Prompt:      prompt,
		System:      provider.SystemInstruction,
		Temperature: temperature,
	})
	if err != nil {
		terr := mapProviderError(err)
		t.logger.Error("transformation failed",
			"request_id", req.ID,
			"style", req.StyleID,
			"code", terr.APICode(),
			"error", err,
		)
		return nil, terr
	}

	text := postprocess.Clean(res.Text)
	if text == "" {
		return nil, internal.NewError(internal.KindProviderTransient, "provider returned an empty response, please try again")
	}

	if !detector.SameScript(req.Text, text) {
		t.logger.Warn("output script differs from input",
			"request_id", req.ID,
			"input_script", detector.DetectScript(req.Text),
			"output_script", detector.DetectScript(text),
		)
	}

	elapsed := time.Since(start)
	t.logger.Info("transformation completed",
		"request_id", req.ID,
		"style", req.StyleID,
		"service", res.ServiceName,
		"model", res.Model,
		"temperature", temperature,
		"processing_ms", elapsed.Milliseconds(),
	)

	return &internal.TransformResult{
		TransformedText: text,
		OriginalText:    req.Text,
		StyleID:         req.StyleID,
		ProcessingTime:  elapsed.Milliseconds(),
	}, nil
}

// mapProviderError converts a provider failure into the typed error set.
// The mapping is structural: status and kind flags, never message text.
func mapProviderError(err error) *internal.Error {
	perr, ok := err.(*provider.Error)
	if !ok {
		return &internal.Error{Kind: internal.KindNetwork, Message: "generation request failed", Err: err}
	}

	terr := &internal.Error{Status: perr.Status, Message: perr.Message, Err: perr}
	switch {
	case perr.Timeout:
		terr.Kind = internal.KindTimeout
		terr.Message = "the generation service timed out, please try again"
	case perr.Status == 0:
		terr.Kind = internal.KindNetwork
		terr.Message = "could not reach the generation service"
	case perr.Retryable():
		// Retries are already exhausted by the time the error gets here.
		terr.Kind = internal.KindProviderTransient
		terr.Message = "the generation service is temporarily unavailable, please try again later"
	default:
		terr.Kind = internal.KindProviderFatal
		terr.Message = "the generation service rejected the request"
	}
	return terr
}
