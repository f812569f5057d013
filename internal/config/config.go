// Package config loads run settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resgen/internal/logging"
	"github.com/goliatone/go-resgen/pkg/render"
)

const (
	DefaultInput  = "input"
	DefaultOutput = "output"
)

// Config holds every setting a run needs.
type Config struct {
	Input        string
	Output       string
	Renderer     string
	Template     string
	Extension    string
	LogLevel     string
	ConfirmReset bool
	AuditMarkup  bool
}

// Default mirrors the behaviour of a run without any configuration.
func Default() Config {
	return Config{
		Input:       DefaultInput,
		Output:      DefaultOutput,
		Renderer:    render.DefaultRenderer,
		LogLevel:    "info",
		AuditMarkup: true,
	}
}

// fileConfig uses pointers so absent keys leave defaults alone.
type fileConfig struct {
	Input        *string `yaml:"input" toml:"input"`
	Output       *string `yaml:"output" toml:"output"`
	Renderer     *string `yaml:"renderer" toml:"renderer"`
	Template     *string `yaml:"template" toml:"template"`
	Extension    *string `yaml:"extension" toml:"extension"`
	LogLevel     *string `yaml:"log_level" toml:"log_level"`
	ConfirmReset *bool   `yaml:"confirm_reset" toml:"confirm_reset"`
	AuditMarkup  *bool   `yaml:"audit_markup" toml:"audit_markup"`
}

// Load reads path and applies it over Default. The format follows the file
// extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, formatOf(path))
}

// Parse decodes data in the given format ("yaml" or "toml").
func Parse(data []byte, format string) (Config, error) {
	var raw fileConfig
	switch format {
	case "yaml":
		if len(strings.TrimSpace(string(data))) > 0 {
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("config: parse yaml: %w", err)
			}
		}
	case "toml":
		meta, err := toml.Decode(string(data), &raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: unknown toml key %q", undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q", format)
	}

	cfg := Default()
	raw.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (raw fileConfig) apply(cfg *Config) {
	setString(&cfg.Input, raw.Input)
	setString(&cfg.Output, raw.Output)
	setString(&cfg.Renderer, raw.Renderer)
	setString(&cfg.Template, raw.Template)
	setString(&cfg.Extension, raw.Extension)
	setString(&cfg.LogLevel, raw.LogLevel)
	if raw.ConfirmReset != nil {
		cfg.ConfirmReset = *raw.ConfirmReset
	}
	if raw.AuditMarkup != nil {
		cfg.AuditMarkup = *raw.AuditMarkup
	}
}

func setString(dst *string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = v
	}
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New("config: input directory is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("config: output directory is required")
	}
	if c.Renderer == "template" && strings.TrimSpace(c.Template) == "" {
		return errors.New("config: template renderer needs a template path")
	}
	if c.LogLevel != "" {
		if _, ok := logging.ParseLevel(c.LogLevel); !ok {
			return fmt.Errorf("config: invalid log level %q", c.LogLevel)
		}
	}
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}
