// Package session implements the client-side controller that sequences one
// user's transformation lifecycle. A session owns a four-phase state
// machine and guarantees that at most one transformation is in flight at
// any time.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/valpere/restyle/internal"
	"github.com/valpere/restyle/internal/logging"
)

// State is the UI-visible phase of a session.
type State string

const (
	StateIdle         State = "idle"
	StateReady        State = "readyToTransform"
	StateTransforming State = "transforming"
	StateTransformed  State = "transformed"
)

// Transformer is the orchestration boundary the session drives. Exactly
// one call is outstanding per session at any time.
type Transformer interface {
	Transform(ctx context.Context, req internal.TransformRequest) (*internal.TransformResult, error)
}

// Snapshot is an immutable view of the session, delivered to the listener
// after every applied transition.
type Snapshot struct {
	State        State
	Text         string
	OriginalText string
	StyleID      string
	// Err holds the failure that caused the most recent fall back to
	// readyToTransform, nil otherwise.
	Err *internal.Error
}

// Listener receives a snapshot after each transition, in transition
// order. It runs with the session lock held and must not call back into
// the session; hand the snapshot off to a channel or queue instead.
type Listener func(Snapshot)

// Session sequences text edits, style application, and outcome handling
// for one user. All transitions run under one mutex, so they are applied
// strictly in the order their triggering events are observed.
type Session struct {
	transformer Transformer
	listener    Listener
	logger      *slog.Logger

	mu           sync.Mutex
	state        State
	text         string
	originalText string
	styleID      string
	targetLength int

	// generation invalidates in-flight work: a completion whose
	// generation no longer matches is discarded, so a restart can never
	// be resurrected by a late provider response.
	generation uint64
	cancel     context.CancelFunc
	lastErr    *internal.Error
}

// Option configures a Session.
type Option func(*Session)

// WithListener registers a transition listener.
func WithListener(l Listener) Option {
	return func(s *Session) { s.listener = l }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// New creates an idle session driving the given transformer.
func New(tr Transformer, opts ...Option) *Session {
	s := &Session{
		transformer: tr,
		state:       StateIdle,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetText updates the working text. Non-empty text moves an idle session
// to readyToTransform; empty text moves it back. Edits are ignored while
// a transformation is in flight or displayed.
func (s *Session) SetText(text string) {
	s.mu.Lock()

	switch s.state {
	case StateIdle, StateReady:
	default:
		s.mu.Unlock()
		return
	}

	s.text = text
	if isBlank(text) {
		s.state = StateIdle
	} else {
		s.state = StateReady
	}

	s.notifyLocked()
	s.mu.Unlock()
}

// SetTargetLength sets the desired output length in characters for the
// next transformation; zero means no preference.
func (s *Session) SetTargetLength(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 0 {
		n = 0
	}
	s.targetLength = n
}

// ApplyStyle applies a style to the current text, entering transforming
// and issuing exactly one orchestrator call. The trigger is rejected
// (returns false) unless the session is readyToTransform; a second style
// while already transforming is ignored, never queued.
func (s *Session) ApplyStyle(styleID string) bool {
	s.mu.Lock()

	if s.state != StateReady {
		s.mu.Unlock()
		return false
	}

	s.styleID = styleID
	s.originalText = s.text
	s.state = StateTransforming
	s.lastErr = nil

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	gen := s.generation

	req := internal.TransformRequest{
		ID:           uuid.New().String(),
		Text:         s.text,
		StyleID:      styleID,
		TargetLength: s.targetLength,
		Timestamp:    time.Now(),
	}

	s.notifyLocked()
	s.mu.Unlock()

	go s.run(ctx, gen, req)
	return true
}

// run performs the orchestrator call and applies the outcome, unless the
// session has been restarted in the meantime.
func (s *Session) run(ctx context.Context, gen uint64, req internal.TransformRequest) {
	res, err := s.transformer.Transform(ctx, req)

	s.mu.Lock()

	if gen != s.generation || s.state != StateTransforming {
		// Stale completion; the session has moved on.
		s.mu.Unlock()
		s.logger.Debug("discarded stale completion", "request_id", req.ID)
		return
	}
	s.cancel = nil

	if err != nil {
		var terr *internal.Error
		if !errors.As(err, &terr) {
			terr = &internal.Error{Kind: internal.KindNetwork, Message: "transformation failed", Err: err}
		}
		// The user's text survives every failure.
		s.text = s.originalText
		s.state = StateReady
		s.lastErr = terr
	} else {
		s.text = res.TransformedText
		s.state = StateTransformed
		s.lastErr = nil
	}

	s.notifyLocked()
	s.mu.Unlock()
}

// TryAnotherStyle returns a transformed session to readyToTransform,
// restoring the saved original text and clearing the chosen style. It
// reports whether the transition applied.
func (s *Session) TryAnotherStyle() bool {
	s.mu.Lock()

	if s.state != StateTransformed {
		s.mu.Unlock()
		return false
	}

	s.text = s.originalText
	s.styleID = ""
	s.state = StateReady
	s.lastErr = nil

	s.notifyLocked()
	s.mu.Unlock()
	return true
}

// Restart returns the session to idle from any state, clearing all text
// and cancelling any in-flight transformation. The cancellation aborts a
// pending retry wait, and the generation bump guarantees a late provider
// response is discarded.
func (s *Session) Restart() {
	s.mu.Lock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++

	s.state = StateIdle
	s.text = ""
	s.originalText = ""
	s.styleID = ""
	s.targetLength = 0
	s.lastErr = nil

	s.notifyLocked()
	s.mu.Unlock()
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:        s.state,
		Text:         s.text,
		OriginalText: s.originalText,
		StyleID:      s.styleID,
		Err:          s.lastErr,
	}
}

// notifyLocked delivers the current snapshot to the listener while the
// session lock is held, so snapshots arrive in transition order. The
// listener must not call back into the session.
func (s *Session) notifyLocked() {
	if s.listener != nil {
		s.listener(s.snapshotLocked())
	}
}

func isBlank(text string) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
