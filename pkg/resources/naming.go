package resources

import (
	"path/filepath"
	"strings"
)

// InputExtension is matched case-insensitively against input file names.
const InputExtension = ".json"

// IsInputFile reports whether name carries the input extension.
func IsInputFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), InputExtension)
}

// BaseName strips the final extension from a file name. Leading dots do not
// start an extension, so ".json" keeps its whole name.
func BaseName(name string) string {
	base := filepath.Base(name)
	stem := strings.TrimLeft(base, ".")
	return base[:len(base)-len(stem)] + strings.TrimSuffix(stem, filepath.Ext(stem))
}

// ThemeName returns the part of baseName after its last underscore, or
// baseName itself when it has none.
func ThemeName(baseName string) string {
	if idx := strings.LastIndex(baseName, "_"); idx >= 0 {
		return baseName[idx+1:]
	}
	return baseName
}
