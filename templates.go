package resgen

import (
	"io/fs"

	"github.com/goliatone/go-resgen/pkg/renderers/pongo"
)

// EmbeddedTemplates exposes the built-in pongo2 templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return pongo.TemplatesFS()
}
