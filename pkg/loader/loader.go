// Package loader reads JSON array documents from disk.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Loader returns the decoded elements of a JSON array file.
type Loader interface {
	Load(ctx context.Context, path string) ([]any, error)
}

// LoaderFunc adapts plain functions to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) ([]any, error)

// Load executes the wrapped function.
func (fn LoaderFunc) Load(ctx context.Context, path string) ([]any, error) {
	return fn(ctx, path)
}

// FileLoader reads from the local filesystem.
type FileLoader struct{}

// Ensure the implementation satisfies the public interface.
var _ Loader = FileLoader{}

// New returns the default file loader.
func New() Loader {
	return FileLoader{}
}

// Load reads path and decodes it. Read failures are returned as-is; syntax
// problems come back as *ParseError, non-array documents as *ShapeError and
// invalid UTF-8 as *EncodingError.
func (FileLoader) Load(ctx context.Context, path string) ([]any, error) {
	if path == "" {
		return nil, errors.New("loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// Decode parses data as a JSON array. Numbers are kept as json.Number so
// their literal text survives. Data that is not UTF-8 fails with
// *EncodingError before any JSON is read.
func Decode(path string, data []byte) ([]any, error) {
	if !utf8.Valid(data) {
		return nil, &EncodingError{Path: path, Offset: invalidOffset(data)}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("invalid character after top-level value")
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	items, ok := value.([]any)
	if !ok {
		return nil, &ShapeError{Path: path, Kind: kindOf(value)}
	}
	return items, nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}

func kindOf(value any) string {
	switch value.(type) {
	case map[string]any:
		return "object"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}
