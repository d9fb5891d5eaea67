package text

import (
	"context"
	"strings"

	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/render"
)

const (
	// Name is the format name the renderer registers under.
	Name        = "text"
	contentType = "text/plain; charset=utf-8"
)

// Renderer prints the line layout of a document as plain UTF-8 text.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the plain-text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return contentType }
func (r *Renderer) Extension() string   { return "txt" }

// Render writes one row per document line followed by a trailing newline.
func (r *Renderer) Render(ctx context.Context, doc document.Document, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, line := range doc.Lines() {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}
