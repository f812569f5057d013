// Package fsutil holds the filesystem steps of a conversion run.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// ErrOverlap is returned when the output root would swallow the input root.
var ErrOverlap = errors.New("fsutil: output directory contains the input directory")

// ErrSymlinkRoot is returned when the directory to reset is a symbolic link.
var ErrSymlinkRoot = errors.New("fsutil: refusing to reset a symbolic link")

// ResetDir removes path with all its contents when it exists and recreates
// it empty. A symbolic link at path is rejected with ErrSymlinkRoot.
func ResetDir(path string) error {
	if path == "" {
		return errors.New("fsutil: reset path is required")
	}
	if info, err := os.Lstat(path); err == nil {
		if info.Mode()&fs.ModeSymlink != 0 {
			return fmt.Errorf("%w: %s", ErrSymlinkRoot, path)
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("fsutil: remove %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("fsutil: stat %s: %w", path, err)
	}
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("fsutil: create %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("fsutil: create %s: %w", path, err)
	}
	return nil
}

// WriteFile replaces the content of path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("fsutil: write %s: %w", path, err)
	}
	return nil
}

// CheckDisjoint rejects an output root that equals or contains the input
// root. An output nested inside the input is allowed. Both paths are
// compared after resolving symbolic links.
func CheckDisjoint(input, output string) error {
	in, err := resolve(input)
	if err != nil {
		return err
	}
	out, err := resolve(output)
	if err != nil {
		return err
	}
	if within(out, in) {
		return fmt.Errorf("%w: input %s, output %s", ErrOverlap, input, output)
	}
	return nil
}

// resolve returns the absolute path with symbolic links evaluated. Missing
// trailing elements are kept as written below the deepest existing parent.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("fsutil: resolve %s: %w", path, err)
	}
	var missing []string
	current := abs
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			for i := len(missing) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, missing[i])
			}
			return resolved, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("fsutil: resolve %s: %w", path, err)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}
		missing = append(missing, filepath.Base(current))
		current = parent
	}
}

// within reports whether child equals parent or lives below it.
func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
