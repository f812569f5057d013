package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-resgen/internal/fsutil"
	"github.com/goliatone/go-resgen/pkg/loader"
	"github.com/goliatone/go-resgen/pkg/render"
	"github.com/goliatone/go-resgen/pkg/resources"
)

// walker carries the state of one Run across WalkDir callbacks.
type walker struct {
	o         *Orchestrator
	ctx       context.Context
	renderer  render.Renderer
	input     string
	output    string
	outputAbs string
	report    Report
}

func (w *walker) visit(path string, entry fs.DirEntry, walkErr error) error {
	if walkErr != nil {
		return fmt.Errorf("orchestrator: walk %s: %w", path, walkErr)
	}
	if err := w.ctx.Err(); err != nil {
		return err
	}

	rel, err := filepath.Rel(w.input, path)
	if err != nil {
		return fmt.Errorf("orchestrator: relative path of %s: %w", path, err)
	}

	if entry.IsDir() {
		// An output root nested in the input must not be mirrored into itself.
		if abs, err := filepath.Abs(path); err == nil && abs == w.outputAbs {
			return fs.SkipDir
		}
		return fsutil.EnsureDir(filepath.Join(w.output, rel))
	}

	if !resources.IsInputFile(entry.Name()) || !isRegular(path, entry) {
		return nil
	}

	dest := filepath.Join(w.output, filepath.Dir(rel), resources.BaseName(entry.Name())+w.renderer.Extension())
	items, err := w.convert(path, dest)
	if err != nil {
		if loader.IsRecoverable(err) {
			w.skip(path, err)
			return nil
		}
		return fmt.Errorf("orchestrator: convert %s: %w", path, err)
	}

	w.report.Converted = append(w.report.Converted, Conversion{Source: path, Destination: dest, Items: items})
	w.o.logger.Info().Str("src", path).Str("dest", dest).Msg("Converted")
	return nil
}

// convert runs load, coerce, transform, audit, render and write for one
// file and returns the number of items written.
func (w *walker) convert(path, dest string) (int, error) {
	values, err := w.o.loader.Load(w.ctx, path)
	if err != nil {
		return 0, err
	}
	items, err := resources.Coerce(values)
	if err != nil {
		return 0, err
	}

	doc := resources.Document{
		Theme: resources.ThemeName(resources.BaseName(path)),
		Items: items,
	}
	if err := w.o.applyTransformer(w.ctx, &doc); err != nil {
		return 0, err
	}
	w.o.auditItems(path, doc.Items)

	data, err := w.renderer.Render(w.ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("orchestrator: render output: %w", err)
	}
	if err := fsutil.WriteFile(dest, data); err != nil {
		return 0, err
	}
	return len(doc.Items), nil
}

func (w *walker) skip(path string, err error) {
	w.report.Skipped = append(w.report.Skipped, Skipped{Source: path, Err: err})

	var parseErr *loader.ParseError
	if errors.As(err, &parseErr) {
		w.o.logger.Error().Str("file", path).Err(parseErr.Err).Msg("Error decoding JSON")
		return
	}
	w.o.logger.Warn().Str("file", path).Err(err).Msg("Skipping file without a JSON array")
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
