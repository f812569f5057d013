// Package pongo renders resources documents through user-supplied pongo2
// templates.
//
// Templates see three variables:
//
//	theme  the theme name derived from the input file
//	count  the number of items
//	items  a list of {index, name, text, escaped} maps in input order
//
// Autoescaping is disabled so item text reaches the output unchanged, and the
// `resource_escape` filter applies the apostrophe escaping used by the
// android renderer. Templates may use {% include %} and {% extends %}; the
// root of an inheritance chain carries the autoescape setting for its blocks.
package pongo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-resgen/pkg/render"
	"github.com/goliatone/go-resgen/pkg/resources"
)

// Name is the registry identifier for this renderer.
const Name = "template"

const escapeFilter = "resource_escape"

var (
	registerOnce sync.Once
	registerErr  error

	filterExists   = pongo2.FilterExists
	registerFilter = pongo2.RegisterFilter
)

// extendsTag matches templates that inherit from a parent. pongo2 only
// accepts extends at root level, so those sources are left unwrapped.
var extendsTag = regexp.MustCompile(`\{%-?\s*extends\s`)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	extension string
	baseDir   string
}

// WithExtension overrides the output extension (default ".xml").
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithBaseDir sets the directory used to resolve {% include %} paths.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// Renderer executes a compiled template per document.
type Renderer struct {
	mu        sync.Mutex
	template  *pongo2.Template
	extension string
}

// Ensure Renderer implements the render contract.
var _ render.Renderer = (*Renderer)(nil)

// New compiles source. Every template without an extends tag, including the
// ones loaded for include and extends, is wrapped in an autoescape-off block.
func New(source string, options ...Option) (*Renderer, error) {
	if strings.TrimSpace(source) == "" {
		return nil, errors.New("pongo: template source is empty")
	}
	cfg := &config{extension: ".xml"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if err := registerFilters(); err != nil {
		return nil, err
	}

	// An empty base dir resolves includes against the working directory.
	loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
	if err != nil {
		return nil, fmt.Errorf("pongo: create local loader: %w", err)
	}
	set := pongo2.NewSet("resgen", unescapedLoader{base: loader})

	tmpl, err := set.FromString(unescaped(source))
	if err != nil {
		return nil, fmt.Errorf("pongo: parse template: %w", err)
	}
	return &Renderer{template: tmpl, extension: cfg.extension}, nil
}

// NewFromFile reads and compiles the template at path; includes resolve
// relative to the template's directory.
func NewFromFile(path string, options ...Option) (*Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: read template: %w", err)
	}
	options = append([]Option{WithBaseDir(filepath.Dir(path))}, options...)
	return New(string(data), options...)
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// Extension reports the output file extension.
func (r *Renderer) Extension() string {
	return r.extension
}

// Render executes the template against doc.
func (r *Renderer) Render(ctx context.Context, doc resources.Document) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("pongo: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	r.mu.Lock()
	err := r.template.ExecuteWriter(templateContext(doc), &buf)
	r.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("pongo: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func templateContext(doc resources.Document) pongo2.Context {
	items := make([]map[string]any, 0, len(doc.Items))
	for i, text := range doc.Items {
		items = append(items, map[string]any{
			"index":   i + 1,
			"name":    resources.ElementName(doc.Theme, i+1),
			"text":    text,
			"escaped": resources.Escape(text),
		})
	}
	return pongo2.Context{
		"theme": doc.Theme,
		"count": len(doc.Items),
		"items": items,
	}
}

func unescaped(source string) string {
	if extendsTag.MatchString(source) {
		return source
	}
	return "{% autoescape off %}" + source + "{% endautoescape %}"
}

// unescapedLoader applies the autoescape wrapper to files pulled in by
// include and extends.
type unescapedLoader struct {
	base pongo2.TemplateLoader
}

func (l unescapedLoader) Abs(base, name string) string {
	return l.base.Abs(base, name)
}

func (l unescapedLoader) Get(path string) (io.Reader, error) {
	r, err := l.base.Get(path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(unescaped(string(data))), nil
}

// registerFilters installs the package filters once per process. A failure
// is kept so every later call reports it too.
func registerFilters() error {
	registerOnce.Do(func() {
		if filterExists(escapeFilter) {
			return
		}
		registerErr = registerFilter(escapeFilter, func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(resources.Escape(in.String())), nil
		})
	})
	if registerErr != nil {
		return fmt.Errorf("pongo: register filter: %w", registerErr)
	}
	return nil
}
