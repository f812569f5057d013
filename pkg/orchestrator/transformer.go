package orchestrator

import (
	"context"

	"github.com/goliatone/go-resgen/pkg/resources"
)

// Transformer mutates a Document before it is audited and rendered.
// Implementations can rename the theme, drop items or rewrite text.
type Transformer interface {
	Transform(ctx context.Context, doc *resources.Document) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *resources.Document) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *resources.Document) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}
