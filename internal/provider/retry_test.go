package provider

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

type mockService struct {
	nameVal      string
	generateFunc func(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error)
	callCount    atomic.Int32
}

func (m *mockService) Name() string {
	if m.nameVal == "" {
		return "mock"
	}
	return m.nameVal
}

func (m *mockService) Generate(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
	m.callCount.Add(1)
	if m.generateFunc != nil {
		return m.generateFunc(ctx, cfg, req)
	}
	return &GenerateResult{ServiceName: m.Name(), Text: "mock output"}, nil
}

func (m *mockService) IsAvailable(ctx context.Context) error { return nil }

// fastPolicy keeps retry tests quick.
func fastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		AttemptTimeout: time.Second,
		BaseDelay:      time.Millisecond,
		MaxJitter:      time.Millisecond,
	}
}

func TestClient_SucceedsFirstAttempt(t *testing.T) {
	mock := &mockService{}
	c := NewClient(mock, fastPolicy())

	res, err := c.Generate(context.Background(), ServiceConfig{}, GenerateRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "mock output" {
		t.Errorf("unexpected text %q", res.Text)
	}
	if got := mock.callCount.Load(); got != 1 {
		t.Errorf("expected 1 attempt, got %d", got)
	}
}

func TestClient_RetriesServerErrorThenSucceeds(t *testing.T) {
	mock := &mockService{}
	mock.generateFunc = func(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
		if mock.callCount.Load() < 3 {
			return nil, &Error{Service: "mock", Status: http.StatusInternalServerError, Message: "boom"}
		}
		return &GenerateResult{ServiceName: "mock", Text: "third time lucky"}, nil
	}
	c := NewClient(mock, fastPolicy())

	res, err := c.Generate(context.Background(), ServiceConfig{}, GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "third time lucky" {
		t.Errorf("unexpected text %q", res.Text)
	}
	if got := mock.callCount.Load(); got != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", got)
	}
}

func TestClient_NonRetryableFailsImmediately(t *testing.T) {
	mock := &mockService{
		generateFunc: func(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
			return nil, &Error{Service: "mock", Status: http.StatusUnauthorized, Message: "bad key"}
		},
	}
	c := NewClient(mock, fastPolicy())

	_, err := c.Generate(context.Background(), ServiceConfig{}, GenerateRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := mock.callCount.Load(); got != 1 {
		t.Errorf("expected exactly 1 attempt for 401, got %d", got)
	}

	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Retryable() {
		t.Error("401 must not be retryable")
	}
}

func TestClient_RateLimitIsRetried(t *testing.T) {
	mock := &mockService{
		generateFunc: func(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
			return nil, &Error{Service: "mock", Status: http.StatusTooManyRequests, Message: "slow down"}
		},
	}
	c := NewClient(mock, fastPolicy())

	_, err := c.Generate(context.Background(), ServiceConfig{}, GenerateRequest{})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if got := mock.callCount.Load(); got != 3 {
		t.Errorf("expected 3 attempts for 429, got %d", got)
	}

	perr := err.(*Error)
	if perr.Status != http.StatusTooManyRequests {
		t.Errorf("expected last error status 429, got %d", perr.Status)
	}
}

func TestClient_ReturnsLastErrorOnExhaustion(t *testing.T) {
	statuses := []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable}
	mock := &mockService{}
	mock.generateFunc = func(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
		return nil, &Error{Service: "mock", Status: statuses[mock.callCount.Load()-1], Message: "down"}
	}
	c := NewClient(mock, fastPolicy())

	_, err := c.Generate(context.Background(), ServiceConfig{}, GenerateRequest{})
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Status != http.StatusServiceUnavailable {
		t.Errorf("expected last status 503, got %d", perr.Status)
	}
}

func TestClient_CancelDuringBackoffStopsRetrying(t *testing.T) {
	mock := &mockService{
		generateFunc: func(ctx context.Context, cfg ServiceConfig, req GenerateRequest) (*GenerateResult, error) {
			return nil, &Error{Service: "mock", Status: http.StatusInternalServerError, Message: "down"}
		},
	}
	// Long backoff so cancellation lands inside the wait.
	c := NewClient(mock, RetryPolicy{MaxAttempts: 3, AttemptTimeout: time.Second, BaseDelay: 10 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Generate(ctx, ServiceConfig{}, GenerateRequest{})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected error after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Generate did not return promptly after cancellation")
	}

	if got := mock.callCount.Load(); got != 1 {
		t.Errorf("expected no further attempts after cancel, got %d", got)
	}
}

func TestBackoffDelay_Bounds(t *testing.T) {
	p := DefaultRetryPolicy()

	for attempt := 1; attempt <= 3; attempt++ {
		min := time.Duration(1<<(attempt-1)) * p.BaseDelay
		max := min + p.MaxJitter
		for i := 0; i < 50; i++ {
			d := backoffDelay(attempt, p)
			if d < min {
				t.Fatalf("attempt %d: delay %v below minimum %v", attempt, d, min)
			}
			if d >= max {
				t.Fatalf("attempt %d: delay %v not below %v", attempt, d, max)
			}
		}
	}
}
