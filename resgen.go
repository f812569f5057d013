// Package resgen converts trees of JSON string arrays into string resource
// files. The heavy lifting lives in pkg/orchestrator; this package exposes
// the common entry points.
package resgen

import (
	"context"

	"github.com/goliatone/go-resgen/pkg/orchestrator"
	"github.com/goliatone/go-resgen/pkg/resources"
)

// Report aliases orchestrator.Report for callers using the root package.
type Report = orchestrator.Report

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Convert resets outputDir and mirrors every JSON array file found under
// inputDir into it. Empty paths fall back to "input" and "output".
func Convert(ctx context.Context, inputDir, outputDir string, options ...orchestrator.Option) (Report, error) {
	return orchestrator.New(options...).Run(ctx, orchestrator.Request{
		InputDir:  inputDir,
		OutputDir: outputDir,
	})
}

// ToXML renders items as a resources document named after theme.
func ToXML(items []string, theme string) string {
	return resources.Transform(items, theme)
}
