package consentbuilder

import (
	"io/fs"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML preview templates so callers
// can extend them and pass the result to html.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// EmbeddedLanguageTemplates exposes the bundled YAML language templates. Pass
// a modified copy to catalog.Load to build a custom catalog.
func EmbeddedLanguageTemplates() fs.FS {
	return catalog.TemplatesFS()
}
