package export

import (
	"log/slog"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/render"
)

// Option configures an Exporter.
type Option func(*Exporter)

// WithRegistry swaps the renderer registry. The default registry holds the
// pdf, docx, html and text renderers.
func WithRegistry(registry *render.Registry) Option {
	return func(e *Exporter) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithSaver sets where exported files go. Defaults to the working directory.
func WithSaver(saver Saver) Option {
	return func(e *Exporter) {
		if saver != nil {
			e.saver = saver
		}
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithNotifier sets the receiver of user-facing messages.
func WithNotifier(notifier Notifier) Option {
	return func(e *Exporter) {
		if notifier != nil {
			e.notifier = notifier
		}
	}
}

// WithCatalog sets the template catalog used to resolve form languages.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Exporter) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithRenderOptions sets options passed to every renderer call.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(e *Exporter) {
		e.renderOptions = options
	}
}
