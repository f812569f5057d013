package loader

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resgen/pkg/testsupport"
)

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteTree(t, dir, map[string]string{
		"strings_adventure.json": `["Hello's", "World", 7]`,
	})

	items, err := New().Load(testsupport.Context(), filepath.Join(dir, "strings_adventure.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []any{"Hello's", "World", json.Number("7")}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoader_MissingFileIsFatal(t *testing.T) {
	_, err := New().Load(testsupport.Context(), filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if IsRecoverable(err) {
		t.Fatalf("read errors must not be recoverable")
	}
}

func TestFileLoader_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Load(ctx, path); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDecode_ParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad object":     `{bad}`,
		"empty":          ``,
		"whitespace":     "  \n",
		"truncated":      `["a", `,
		"trailing value": `["a"] ["b"]`,
		"trailing junk":  `[] x`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode("in.json", []byte(input))
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if parseErr.Path != "in.json" {
				t.Fatalf("unexpected path %q", parseErr.Path)
			}
			if !IsRecoverable(err) {
				t.Fatalf("parse errors must be recoverable")
			}
		})
	}
}

func TestDecode_ShapeErrors(t *testing.T) {
	cases := map[string]string{
		`{"a":1}`: "object",
		`"text"`:  "string",
		`12`:      "number",
		`true`:    "boolean",
		`null`:    "null",
	}
	for input, kind := range cases {
		_, err := Decode("in.json", []byte(input))
		var shapeErr *ShapeError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("%s: expected ShapeError, got %v", input, err)
		}
		if shapeErr.Kind != kind {
			t.Fatalf("%s: expected kind %q, got %q", input, kind, shapeErr.Kind)
		}
		if !IsRecoverable(err) {
			t.Fatalf("%s: shape errors must be recoverable", input)
		}
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	items, err := Decode("in.json", []byte(" [ ] \n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
}

func TestLoaderFunc(t *testing.T) {
	var seen string
	fn := LoaderFunc(func(_ context.Context, path string) ([]any, error) {
		seen = path
		return []any{"x"}, nil
	})
	items, err := fn.Load(testsupport.Context(), "p.json")
	if err != nil || len(items) != 1 || seen != "p.json" {
		t.Fatalf("unexpected result %v %v %q", items, err, seen)
	}
}

func TestDecode_InvalidUTF8IsFatal(t *testing.T) {
	_, err := Decode("x_bad.json", []byte("[\"caf\xe9\"]"))
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if encErr.Path != "x_bad.json" || encErr.Offset != 5 {
		t.Fatalf("unexpected error fields %+v", encErr)
	}
	if IsRecoverable(err) {
		t.Fatalf("encoding errors must stop the run")
	}
}

func TestDecode_MultibyteUTF8(t *testing.T) {
	items, err := Decode("in.json", []byte(`["café", "日本"]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]any{"café", "日本"}, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}
