package pongo

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// BuiltinAndroid is the embedded template reproducing the android renderer
// output byte for byte. Copy it as a starting point for custom layouts.
const BuiltinAndroid = "android.tpl"

// TemplatesFS exposes the embedded templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewFromFS compiles the template stored at name inside fsys.
func NewFromFS(fsys fs.FS, name string, options ...Option) (*Renderer, error) {
	if fsys == nil {
		return nil, errors.New("pongo: filesystem is nil")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("pongo: template name is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("pongo: read %s: %w", name, err)
	}
	return New(string(data), options...)
}
