package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-resgen/internal/fsutil"
	"github.com/goliatone/go-resgen/pkg/audit"
	"github.com/goliatone/go-resgen/pkg/loader"
	"github.com/goliatone/go-resgen/pkg/render"
	"github.com/goliatone/go-resgen/pkg/renderers/android"
	"github.com/goliatone/go-resgen/pkg/resources"
)

const (
	DefaultInputDir  = "input"
	DefaultOutputDir = "output"
)

// ErrResetDeclined is returned when the Confirmer refuses the output reset.
// Nothing has been deleted at that point.
var ErrResetDeclined = errors.New("orchestrator: output reset declined")

// Confirmer approves the destructive output reset.
type Confirmer interface {
	ConfirmReset(ctx context.Context, dir string) (bool, error)
}

// ConfirmerFunc adapts plain functions to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, dir string) (bool, error)

// ConfirmReset executes the wrapped function.
func (fn ConfirmerFunc) ConfirmReset(ctx context.Context, dir string) (bool, error) {
	return fn(ctx, dir)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(l loader.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithRenderers registers additional renderers on the (default) registry.
func WithRenderers(renderers ...render.Renderer) Option {
	return func(o *Orchestrator) {
		o.extraRenderers = append(o.extraRenderers, renderers...)
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the logger receiving per-file diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithAudit toggles the markup warnings. Enabled by default.
func WithAudit(enabled bool) Option {
	return func(o *Orchestrator) {
		o.audit = enabled
	}
}

// WithConfirmer asks c before the output directory is reset.
func WithConfirmer(c Confirmer) Option {
	return func(o *Orchestrator) {
		o.confirmer = c
	}
}

// WithTransformer registers a Transformer that can rewrite documents after
// loading but before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator mirrors an input tree of JSON arrays into an output tree of
// rendered resource files. Files are processed one at a time.
type Orchestrator struct {
	loader          loader.Loader
	registry        *render.Registry
	extraRenderers  []render.Renderer
	defaultRenderer string
	logger          zerolog.Logger
	audit           bool
	confirmer       Confirmer
	transformer     Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies fall back to the file loader and the android renderer.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: render.DefaultRenderer,
		logger:          zerolog.Nop(),
		audit:           true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one conversion run.
type Request struct {
	// InputDir is walked recursively. Defaults to "input".
	InputDir string
	// OutputDir is deleted, recreated and filled. Defaults to "output".
	OutputDir string
	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string
}

func (r Request) normalise() Request {
	if r.InputDir == "" {
		r.InputDir = DefaultInputDir
	}
	if r.OutputDir == "" {
		r.OutputDir = DefaultOutputDir
	}
	return r
}

// Run resets the output root and converts every input file. Files with
// invalid JSON or a non-array document are logged, recorded in the report
// and skipped; any other failure stops the run and is returned.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Report{}, err
	}

	req = req.normalise()
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Report{}, err
	}

	info, err := os.Stat(req.InputDir)
	if err != nil {
		return Report{}, fmt.Errorf("orchestrator: input directory: %w", err)
	}
	if !info.IsDir() {
		return Report{}, fmt.Errorf("orchestrator: input %s is not a directory", req.InputDir)
	}
	if err := fsutil.CheckDisjoint(req.InputDir, req.OutputDir); err != nil {
		return Report{}, err
	}

	if err := o.confirmReset(ctx, req.OutputDir); err != nil {
		return Report{}, err
	}
	if err := fsutil.ResetDir(req.OutputDir); err != nil {
		return Report{}, err
	}
	o.logger.Debug().Str("dir", req.OutputDir).Msg("Output directory reset")

	outputAbs, err := filepath.Abs(req.OutputDir)
	if err != nil {
		return Report{}, fmt.Errorf("orchestrator: resolve %s: %w", req.OutputDir, err)
	}
	w := &walker{
		o:         o,
		ctx:       ctx,
		renderer:  renderer,
		input:     req.InputDir,
		output:    req.OutputDir,
		outputAbs: outputAbs,
	}
	if err := filepath.WalkDir(req.InputDir, w.visit); err != nil {
		return w.report, err
	}
	return w.report, nil
}

func (o *Orchestrator) confirmReset(ctx context.Context, dir string) error {
	if o.confirmer == nil {
		return nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	ok, err := o.confirmer.ConfirmReset(ctx, dir)
	if err != nil {
		return fmt.Errorf("orchestrator: confirm reset: %w", err)
	}
	if !ok {
		return ErrResetDeclined
	}
	return nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, doc *resources.Document) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, doc); err != nil {
		return fmt.Errorf("orchestrator: transform document: %w", err)
	}
	return nil
}

func (o *Orchestrator) auditItems(path string, items []string) {
	if !o.audit {
		return
	}
	for _, finding := range audit.Markup(items) {
		o.logger.Warn().
			Str("file", path).
			Int("item", finding.Index).
			Str("text", finding.Text).
			Msg("Item contains markup that is written unescaped")
	}
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = loader.New()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(android.New())
	}
	for _, renderer := range o.extraRenderers {
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register renderer: %w", err)
			return
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = render.DefaultRenderer
	}
}
