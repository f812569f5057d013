package resources

import (
	"strconv"
	"strings"
)

const (
	documentOpen  = "<resources>\n"
	documentClose = "</resources>"
	indent        = "    "
)

// Document is the input of a single resources conversion.
type Document struct {
	// Theme prefixes every generated element name.
	Theme string
	// Items holds the element bodies in output order.
	Items []string
}

// Transform renders items as a resources document. Element names are
// "{theme}_text{i}" with i starting at 1. The result never ends with a
// newline.
func Transform(items []string, theme string) string {
	var b strings.Builder
	b.WriteString(documentOpen)
	for i, item := range items {
		b.WriteString(indent)
		b.WriteString(`<string name="`)
		b.WriteString(ElementName(theme, i+1))
		b.WriteString(`">`)
		b.WriteString(Escape(item))
		b.WriteString("</string>\n")
	}
	b.WriteString(documentClose)
	return b.String()
}

// Render is Transform applied to a Document.
func (d Document) Render() string {
	return Transform(d.Items, d.Theme)
}

// ElementName returns the resource name for the item at the 1-based index.
func ElementName(theme string, index int) string {
	return theme + "_text" + strconv.Itoa(index)
}

// Escape prefixes every apostrophe with a backslash. `&`, `<`, `>` and `"`
// are left alone.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
