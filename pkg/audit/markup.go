// Package audit inspects item text for content that resource loaders may
// misread.
package audit

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// Finding describes one item that carries markup.
type Finding struct {
	// Index is 1-based, matching the generated element names.
	Index int
	Text  string
	// Stripped is the text with every tag removed.
	Stripped string
}

// Markup returns the items whose text changes when all markup is stripped.
// Such items are emitted verbatim, so tags and entities end up inside the
// resource value.
func Markup(items []string) []Finding {
	var findings []Finding
	for i, item := range items {
		stripped := Strip(item)
		if stripped == item {
			continue
		}
		findings = append(findings, Finding{Index: i + 1, Text: item, Stripped: stripped})
	}
	return findings
}

// Strip removes tags from s and decodes the entities the sanitizer
// introduces.
func Strip(s string) string {
	return html.UnescapeString(sanitizer().Sanitize(s))
}

func sanitizer() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
