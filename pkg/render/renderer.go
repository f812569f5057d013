package render

import (
	"context"

	"github.com/goliatone/go-resgen/pkg/resources"
)

// DefaultRenderer names the renderer used when none is selected.
const DefaultRenderer = "android"

// Renderer converts a resources document into output file bytes.
type Renderer interface {
	Name() string
	// Extension is appended to the input stem, including the leading dot.
	Extension() string
	Render(ctx context.Context, doc resources.Document) ([]byte, error)
}
