package export

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/model"
	"github.com/goliatone/go-consentbuilder/pkg/render"
	"github.com/goliatone/go-consentbuilder/pkg/renderers/docx"
	"github.com/goliatone/go-consentbuilder/pkg/renderers/html"
	"github.com/goliatone/go-consentbuilder/pkg/renderers/pdf"
	"github.com/goliatone/go-consentbuilder/pkg/renderers/text"
	"github.com/goliatone/go-consentbuilder/pkg/validation"
)

// Format names accepted by Export.
const (
	FormatPDF  = pdf.Name
	FormatDOCX = docx.Name
	FormatHTML = html.Name
	FormatText = text.Name
)

var whitespace = regexp.MustCompile(`\s+`)

// Filename derives the output name from the project title: whitespace runs
// become underscores and "_consent_form.<ext>" is appended. Path separators
// are replaced so the name stays a single path element.
func Filename(projectTitle, extension string) string {
	name := whitespace.ReplaceAllString(projectTitle, "_")
	name = strings.NewReplacer("/", "-", `\`, "-").Replace(name)
	return name + "_consent_form." + extension
}

// Result describes a saved export.
type Result struct {
	ID          string `json:"id"`
	Format      string `json:"format"`
	Filename    string `json:"filename"`
	Location    string `json:"location"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// Exporter runs the export pipeline. It holds no per-form state and can be
// shared.
type Exporter struct {
	registry      *render.Registry
	saver         Saver
	logger        *slog.Logger
	notifier      Notifier
	catalog       *catalog.Catalog
	renderOptions render.RenderOptions
}

// DefaultRegistry returns a registry holding every built-in renderer.
func DefaultRegistry() (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("export: html renderer: %w", err)
	}
	registry := render.NewRegistry()
	for _, r := range []render.Renderer{pdf.New(), docx.New(), htmlRenderer, text.New()} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// New constructs an Exporter.
func New(options ...Option) (*Exporter, error) {
	e := &Exporter{
		saver:    DirSaver{Dir: "."},
		logger:   slog.Default(),
		notifier: nopNotifier{},
		catalog:  catalog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			return nil, err
		}
		e.registry = registry
	}
	return e, nil
}

// Registry exposes the renderer registry.
func (e *Exporter) Registry() *render.Registry {
	return e.registry
}

// Export encodes form as format and saves it. A form without a project title
// fails with a *validation.Error before any renderer runs and nothing is
// saved.
func (e *Exporter) Export(ctx context.Context, form model.FormData, format string) (Result, error) {
	logger := e.logger.With("format", format, "language", string(form.Language))

	if err := validation.CheckExport(form); err != nil {
		logger.Warn("export rejected", "error", err)
		e.notifier.Error(validation.MissingTitleMessage)
		return Result{}, err
	}

	renderer, doc, err := e.prepare(form, format, document.ModeExport)
	if err != nil {
		e.notifier.Error(err.Error())
		return Result{}, err
	}

	data, err := renderer.Render(ctx, doc, e.renderOptions)
	if err != nil {
		logger.Error("render failed", "error", err)
		e.notifier.Error(err.Error())
		return Result{}, fmt.Errorf("export: render %s: %w", format, err)
	}

	result := Result{
		ID:          uuid.NewString(),
		Format:      renderer.Name(),
		Filename:    Filename(form.ProjectTitle, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Size:        len(data),
	}
	location, err := e.saver.Save(ctx, result.Filename, data)
	if err != nil {
		logger.Error("save failed", "filename", result.Filename, "error", err)
		e.notifier.Error(err.Error())
		return Result{}, fmt.Errorf("export: save: %w", err)
	}
	result.Location = location

	logger.Info("export saved",
		"export_id", result.ID,
		"filename", result.Filename,
		"bytes", result.Size,
		"location", location,
	)
	e.notifier.Success(SuccessMessage(result.Format))
	return result, nil
}

// Preview renders form in preview mode, with placeholders for empty fields,
// without the title precondition and without saving.
func (e *Exporter) Preview(ctx context.Context, form model.FormData, format string) ([]byte, error) {
	renderer, doc, err := e.prepare(form, format, document.ModePreview)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(ctx, doc, e.renderOptions)
	if err != nil {
		return nil, fmt.Errorf("export: preview %s: %w", format, err)
	}
	e.logger.Debug("preview rendered", "format", format, "bytes", len(data))
	return data, nil
}

func (e *Exporter) prepare(form model.FormData, format string, mode document.Mode) (render.Renderer, document.Document, error) {
	tpl, err := e.catalog.Lookup(form.Language)
	if err != nil {
		return nil, document.Document{}, fmt.Errorf("export: %w", err)
	}
	renderer, err := e.registry.Get(format)
	if err != nil {
		return nil, document.Document{}, fmt.Errorf("export: %w", err)
	}
	return renderer, document.Build(form, tpl, mode), nil
}
