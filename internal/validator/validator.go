// Package validator checks raw transformation requests against structural
// constraints before any network work is attempted.
package validator

import (
	"strings"

	"github.com/valpere/restyle/internal"
	"github.com/valpere/restyle/internal/styles"
	"github.com/valpere/restyle/internal/textstat"
)

// Validator performs synchronous, side-effect-free request validation.
// All checks run to completion locally; a request that fails here never
// reaches the generation provider.
type Validator struct {
	catalog *styles.Catalog
}

// New creates a Validator backed by the given style catalog.
func New(catalog *styles.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate checks text and styleID and returns nil when the request is
// well-formed. Failures are typed: empty or whitespace-only text is
// invalid input, text over the character limit is too long, and a style
// id the catalog cannot resolve is unsupported.
func (v *Validator) Validate(text, styleID string) error {
	if strings.TrimSpace(text) == "" {
		return internal.NewError(internal.KindInvalidInput, "text content cannot be empty")
	}

	if n := textstat.Length(text); n > internal.MaxTextLength {
		return internal.NewError(internal.KindTextTooLong,
			"text length %d exceeds the %d character limit", n, internal.MaxTextLength)
	}

	if _, err := v.catalog.Resolve(styleID); err != nil {
		return err
	}

	return nil
}
