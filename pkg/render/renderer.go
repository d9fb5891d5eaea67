package render

import (
	"context"

	"github.com/goliatone/go-consentbuilder/pkg/document"
)

// Renderer encodes a projected consent document into bytes (PDF, DOCX, HTML,
// plain text).
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the file extension without the leading dot.
	Extension() string
	Render(ctx context.Context, doc document.Document, options RenderOptions) ([]byte, error)
}
