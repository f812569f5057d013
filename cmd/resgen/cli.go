package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-resgen/internal/config"
	"github.com/goliatone/go-resgen/pkg/renderers/pongo"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// parseArgs builds the run configuration: defaults, then the config file,
// then explicit flags. exit is true when usage was printed.
func parseArgs(args []string, output io.Writer) (config.Config, bool, error) {
	flagSet := flag.NewFlagSet("resgen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
resgen - mirror a tree of JSON string arrays into string resource files.

Usage:
  resgen [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configPath := flagSet.String("config", "", "Path to a .yaml or .toml config file.")
	input := flagSet.String("input", "", "Input directory (default \"input\").")
	outputDir := flagSet.String("output", "", "Output directory, deleted and recreated (default \"output\").")
	renderer := flagSet.String("renderer", "", "Renderer: 'android' or 'template'.")
	template := flagSet.String("template", "", "pongo2 template for the 'template' renderer.")
	extension := flagSet.String("extension", "", "Output extension for the 'template' renderer.")
	logLevel := flagSet.String("log-level", "", "Log level: trace, debug, info, warn, error, off.")
	confirm := flagSet.Bool("confirm", false, "Ask before deleting the output directory.")
	noAudit := flagSet.Bool("no-audit", false, "Disable markup warnings.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return config.Config{}, true, nil
		}
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return config.Config{}, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	overrideString(&cfg.Input, *input)
	overrideString(&cfg.Output, *outputDir)
	overrideString(&cfg.Renderer, *renderer)
	overrideString(&cfg.Template, *template)
	overrideString(&cfg.Extension, *extension)
	overrideString(&cfg.LogLevel, *logLevel)
	if set["confirm"] {
		cfg.ConfirmReset = *confirm
	}
	if set["no-audit"] {
		cfg.AuditMarkup = !*noAudit
	}

	if set["template"] && !set["renderer"] {
		cfg.Renderer = pongo.Name
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

func overrideString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}
