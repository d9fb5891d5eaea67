package tui

import (
	"log/slog"

	"github.com/goliatone/go-consentbuilder/pkg/render"
)

// Theme captures optional message prefixes the runner applies to Info output.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPreview shows the form through renderer after every step. The renderer
// receives preview-mode documents, so empty fields show placeholders.
func WithPreview(renderer render.Renderer) Option {
	return func(r *Runner) {
		r.preview = renderer
	}
}

// WithLogger sets the structured logger for step tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}
