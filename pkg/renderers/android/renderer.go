// Package android renders Android-style string resource documents.
package android

import (
	"context"
	"errors"

	"github.com/goliatone/go-resgen/pkg/render"
	"github.com/goliatone/go-resgen/pkg/resources"
)

// Name is the registry identifier for this renderer.
const Name = render.DefaultRenderer

// Renderer emits resources.Transform output as UTF-8 bytes.
type Renderer struct{}

// Ensure Renderer implements the render contract.
var _ render.Renderer = Renderer{}

// New constructs the renderer.
func New() Renderer {
	return Renderer{}
}

// Name reports the renderer identifier.
func (Renderer) Name() string {
	return Name
}

// Extension reports the output file extension.
func (Renderer) Extension() string {
	return ".xml"
}

// Render converts doc into a resources document.
func (Renderer) Render(ctx context.Context, doc resources.Document) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("android: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(doc.Render()), nil
}
