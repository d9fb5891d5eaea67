package html

import (
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-consentbuilder/pkg/render/template"
)

// Option configures the HTML renderer.
type Option func(*Renderer)

// WithTheme replaces the theme selector. The default selector knows the
// built-in paper theme only.
func WithTheme(selector theme.ThemeSelector) Option {
	return func(r *Renderer) {
		if selector != nil {
			r.themes = selector
		}
	}
}

// WithTemplatesFS loads templates from files instead of the embedded set. The
// file system must provide preview.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		if files != nil {
			r.templatesFS = files
		}
	}
}

// WithTemplateRenderer injects a preconfigured template engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}
