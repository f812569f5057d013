package loader

import (
	"errors"
	"fmt"
)

// ParseError reports an input file whose content is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: decode %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports valid JSON whose top-level value is not an array.
type ShapeError struct {
	Path string
	// Kind names the JSON type that was found instead ("object", "string", ...).
	Kind string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("loader: %s holds a JSON %s, not an array", e.Path, e.Kind)
}

// EncodingError reports an input file that is not valid UTF-8 text. It
// stops the run instead of skipping the file.
type EncodingError struct {
	Path string
	// Offset is the byte position of the first invalid sequence.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("loader: %s is not valid UTF-8 (byte offset %d)", e.Path, e.Offset)
}

// IsRecoverable reports whether err only affects the file it came from.
func IsRecoverable(err error) bool {
	var parseErr *ParseError
	var shapeErr *ShapeError
	return errors.As(err, &parseErr) || errors.As(err, &shapeErr)
}
