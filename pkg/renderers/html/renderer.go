package html

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/render"
	"github.com/goliatone/go-consentbuilder/pkg/render/template"
	"github.com/goliatone/go-consentbuilder/pkg/render/template/gotemplate"
)

const (
	// Name is the format name the renderer registers under.
	Name         = "html"
	contentType  = "text/html; charset=utf-8"
	templateName = "preview"
)

// Renderer produces a standalone themed HTML page for previewing a form in a
// browser.
type Renderer struct {
	engine      template.TemplateRenderer
	templatesFS fs.FS
	themes      theme.ThemeSelector
	policy      *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templatesFS: TemplatesFS(),
		themes:      NewManifestSelector(PaperManifest()),
		policy:      bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(r.templatesFS))
		if err != nil {
			return nil, fmt.Errorf("html: template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return contentType }
func (r *Renderer) Extension() string   { return "html" }

// Render executes the preview template. The HTML preview accepts forms
// without a project title; the document's placeholders are shown instead.
func (r *Renderer) Render(ctx context.Context, doc document.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selection, err := r.themes.Select(options.Theme, options.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("html: select theme: %w", err)
	}

	out, err := r.engine.RenderTemplate(templateName, r.buildView(doc, options, rendererConfig(selection)))
	if err != nil {
		return nil, fmt.Errorf("html: render: %w", err)
	}
	return []byte(out), nil
}

type pageView struct {
	Lang     string        `json:"lang"`
	Title    string        `json:"title"`
	Fill     string        `json:"fill"`
	Theme    themeView     `json:"theme"`
	Sections []sectionView `json:"sections"`
}

type themeView struct {
	Name    string   `json:"name"`
	Variant string   `json:"variant"`
	Vars    []cssVar `json:"vars"`
}

type sectionView struct {
	ID      string      `json:"id"`
	Blocks  []blockView `json:"blocks"`
	Bullets []blockView `json:"bullets,omitempty"`
}

type blockView struct {
	Kind        string   `json:"kind"`
	Label       string   `json:"label,omitempty"`
	Text        string   `json:"text"`
	Lines       []string `json:"lines,omitempty"`
	Placeholder bool     `json:"placeholder"`
}

func (r *Renderer) buildView(doc document.Document, options render.RenderOptions, cfg *theme.RendererConfig) pageView {
	title := options.DocumentTitle(doc.Meta.ProjectTitle)
	if strings.TrimSpace(title) == "" {
		title = document.PlaceholderProjectTitle
	}
	view := pageView{
		Lang:  string(doc.Meta.Language),
		Title: r.sanitize(title),
		Fill:  document.SignatureFill,
	}
	if cfg != nil {
		view.Theme = themeView{Name: cfg.Theme, Variant: cfg.Variant, Vars: sortedVars(cfg.CSSVars)}
	}

	for _, block := range doc.Blocks {
		if len(view.Sections) == 0 || view.Sections[len(view.Sections)-1].ID != string(block.Section) {
			view.Sections = append(view.Sections, sectionView{ID: string(block.Section)})
		}
		section := &view.Sections[len(view.Sections)-1]

		item := blockView{
			Kind:        string(block.Kind),
			Label:       r.sanitize(block.Label),
			Text:        r.sanitize(block.Text),
			Placeholder: block.Placeholder,
		}
		if block.Kind == document.KindBullet {
			section.Bullets = append(section.Bullets, item)
			continue
		}
		if block.Kind == document.KindParagraph {
			for _, line := range strings.Split(block.Text, "\n") {
				item.Lines = append(item.Lines, r.sanitize(line))
			}
		}
		section.Blocks = append(section.Blocks, item)
	}
	return view
}

func (r *Renderer) sanitize(value string) string {
	if value == "" {
		return ""
	}
	return r.policy.Sanitize(value)
}
