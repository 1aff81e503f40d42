package internal

import "time"

// MaxTextLength is the maximum accepted input length in characters.
// Longer texts are rejected by the validator before any provider call.
const MaxTextLength = 5000

// TransformRequest describes one style transformation of a piece of text.
// It is created per user action and never mutated after validation.
type TransformRequest struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	StyleID      string    `json:"style"`
	TargetLength int       `json:"target_length,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// TransformResult is the outcome of a successful transformation.
// The JSON field names are part of the API envelope and must not change.
type TransformResult struct {
	TransformedText string `json:"transformedText"`
	OriginalText    string `json:"originalText"`
	StyleID         string `json:"style"`
	ProcessingTime  int64  `json:"processingTime"` // milliseconds
}
