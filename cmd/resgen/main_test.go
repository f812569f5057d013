package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resgen/internal/prompt"
	"github.com/goliatone/go-resgen/pkg/testsupport"
)

func TestRun_DefaultLayout(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "input")
	output := filepath.Join(base, "output")
	testsupport.WriteTree(t, input, map[string]string{
		"foo/strings_adventure.json": `["Hello's", "World"]`,
		"foo/broken_x.json":          `{bad}`,
	})

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-input", input, "-output", output}, &stderr, nil)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}

	want := map[string]string{
		"foo/strings_adventure.xml": "<resources>\n" +
			"    <string name=\"adventure_text1\">Hello\\'s</string>\n" +
			"    <string name=\"adventure_text2\">World</string>\n" +
			"</resources>",
	}
	if diff := cmp.Diff(want, testsupport.ReadTree(t, output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	logs := stderr.String()
	if !strings.Contains(logs, "Error decoding JSON") || !strings.Contains(logs, "Done") {
		t.Fatalf("unexpected logs:\n%s", logs)
	}
}

func TestRun_TemplateFromConfig(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "in")
	output := filepath.Join(base, "out")
	testsupport.WriteTree(t, input, map[string]string{"ui_menu.json": `["Play"]`})
	tplPath := filepath.Join(base, "strings.tpl")
	testsupport.WriteTree(t, base, map[string]string{
		"strings.tpl": `{% for item in items %}{{ item.name }}: {{ item.text }}{% endfor %}`,
	})
	cfgPath := filepath.Join(base, "resgen.toml")
	content := "input = \"" + filepath.ToSlash(input) + "\"\n" +
		"output = \"" + filepath.ToSlash(output) + "\"\n" +
		"renderer = \"template\"\n" +
		"template = \"" + filepath.ToSlash(tplPath) + "\"\n" +
		"extension = \"yml\"\n" +
		"log_level = \"off\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"-config", cfgPath}, &stderr, nil); code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	want := map[string]string{"ui_menu.yml": "menu_text1: Play"}
	if diff := cmp.Diff(want, testsupport.ReadTree(t, output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ConfirmDeclined(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "input")
	output := filepath.Join(base, "output")
	testsupport.WriteTree(t, input, map[string]string{"a.json": `[]`})
	testsupport.WriteTree(t, output, map[string]string{"keep.xml": "kept"})

	decline := prompt.DriverFunc(func(context.Context, prompt.ConfirmConfig) (bool, error) {
		return false, nil
	})
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-input", input, "-output", output, "-confirm"}, &stderr, decline)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if got := testsupport.ReadTree(t, output); got["keep.xml"] != "kept" {
		t.Fatalf("declined reset must keep output")
	}
}

func TestRun_FatalErrors(t *testing.T) {
	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "absent")
	if code := run(context.Background(), []string{"-input", missing, "-output", filepath.Join(t.TempDir(), "out")}, &stderr, nil); code != 1 {
		t.Fatalf("expected exit code 1 for missing input, got %d", code)
	}
}

func TestRun_InvalidLogLevelSources(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "resgen.yaml")
	if err := os.WriteFile(cfgPath, []byte("log_level: loud\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cases := map[string][]string{
		"flag":        {"-log-level", "loud"},
		"config file": {"-config", cfgPath},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(context.Background(), args, &stderr, nil); code != 2 {
				t.Fatalf("expected exit code 2, got %d (%s)", code, stderr.String())
			}
			if !strings.Contains(stderr.String(), `"loud"`) {
				t.Fatalf("expected level in message, got %s", stderr.String())
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := parseArgs(nil, &out)
	if err != nil || exit {
		t.Fatalf("unexpected result %v %v", exit, err)
	}
	if cfg.Input != "input" || cfg.Output != "output" || cfg.Renderer != "android" || !cfg.AuditMarkup {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg, _, err = parseArgs([]string{"-template", "x.tpl", "-no-audit", "-confirm"}, &out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Renderer != "template" || cfg.AuditMarkup || !cfg.ConfirmReset {
		t.Fatalf("flags not applied: %+v", cfg)
	}

	if _, exit, err := parseArgs([]string{"-h"}, &out); err != nil || !exit {
		t.Fatalf("expected help exit, got %v %v", exit, err)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":     {"-bogus"},
		"positional":       {"extra"},
		"bad level":        {"-log-level", "loud"},
		"template missing": {"-renderer", "template"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := parseArgs(args, &out)
			exitErr, ok := err.(*ExitError)
			if !ok || exitErr.Code != 2 {
				t.Fatalf("expected exit code 2 error, got %v", err)
			}
		})
	}
}
