package resgen

import (
	"github.com/goliatone/go-resgen/pkg/loader"
)

// NewLoader constructs the file loader while keeping the concrete type
// hidden from consumers.
func NewLoader() loader.Loader {
	return loader.New()
}
