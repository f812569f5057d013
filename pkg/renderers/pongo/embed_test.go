package pongo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resgen/pkg/renderers/pongo"
	"github.com/goliatone/go-resgen/pkg/resources"
	"github.com/goliatone/go-resgen/pkg/testsupport"
)

func TestBuiltinAndroidMatchesTransform(t *testing.T) {
	r, err := pongo.NewFromFS(pongo.TemplatesFS(), pongo.BuiltinAndroid)
	if err != nil {
		t.Fatalf("new from fs: %v", err)
	}

	docs := []resources.Document{
		{Theme: "adventure", Items: []string{"Hello's", "World"}},
		{Theme: "x"},
		{Theme: "markup", Items: []string{`<b>"a" & b</b>`, "it's 'quoted'"}},
	}
	for _, doc := range docs {
		out, err := r.Render(testsupport.Context(), doc)
		if err != nil {
			t.Fatalf("render %s: %v", doc.Theme, err)
		}
		if diff := cmp.Diff(resources.Transform(doc.Items, doc.Theme), string(out)); diff != "" {
			t.Fatalf("%s mismatch (-transform +template):\n%s", doc.Theme, diff)
		}
	}
}

func TestNewFromFS_Errors(t *testing.T) {
	if _, err := pongo.NewFromFS(nil, "x.tpl"); err == nil {
		t.Fatalf("expected nil fs error")
	}
	if _, err := pongo.NewFromFS(pongo.TemplatesFS(), " "); err == nil {
		t.Fatalf("expected empty name error")
	}
	if _, err := pongo.NewFromFS(pongo.TemplatesFS(), "missing.tpl"); err == nil {
		t.Fatalf("expected missing template error")
	}
}
