package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-resgen/internal/config"
	"github.com/goliatone/go-resgen/internal/logging"
	"github.com/goliatone/go-resgen/internal/prompt"
	"github.com/goliatone/go-resgen/pkg/orchestrator"
	"github.com/goliatone/go-resgen/pkg/render"
	"github.com/goliatone/go-resgen/pkg/renderers/pongo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr, prompt.NewSurvey())
	stop()
	os.Exit(code)
}

// run executes one conversion and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer, driver prompt.Driver) int {
	cfg, exit, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "resgen: %v\n", err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	if exit {
		return 0
	}

	logger := logging.New(stderr, "resgen", logging.ResolveLevel(cfg.LogLevel))

	gen, err := newOrchestrator(cfg, logger, driver)
	if err != nil {
		logger.Error().Err(err).Msg("Setup failed")
		return 1
	}

	report, err := gen.Run(ctx, orchestrator.Request{
		InputDir:  cfg.Input,
		OutputDir: cfg.Output,
		Renderer:  cfg.Renderer,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Conversion aborted")
		return 1
	}
	logger.Info().
		Int("converted", len(report.Converted)).
		Int("skipped", len(report.Skipped)).
		Msg("Done")
	return 0
}

func newOrchestrator(cfg config.Config, logger zerolog.Logger, driver prompt.Driver) (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithAudit(cfg.AuditMarkup),
		orchestrator.WithDefaultRenderer(render.DefaultRenderer),
	}
	if cfg.Template != "" {
		tpl, err := pongo.NewFromFile(cfg.Template, pongo.WithExtension(cfg.Extension))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithRenderers(tpl))
	}
	if cfg.ConfirmReset && driver != nil {
		options = append(options, orchestrator.WithConfirmer(confirmer{driver: driver}))
	}
	return orchestrator.New(options...), nil
}

// confirmer bridges the terminal prompt to the orchestrator reset hook.
type confirmer struct {
	driver prompt.Driver
}

func (c confirmer) ConfirmReset(ctx context.Context, dir string) (bool, error) {
	return c.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("Delete %s and regenerate it?", dir),
		Help:    "Every file under the output directory is removed before conversion.",
	})
}
