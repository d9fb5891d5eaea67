package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/render"
	"github.com/goliatone/go-consentbuilder/pkg/validation"
)

const (
	// Name is the format name the renderer registers under.
	Name        = "docx"
	contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Renderer encodes documents as DOCX packages.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the DOCX renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return contentType }
func (r *Renderer) Extension() string   { return "docx" }

// Render writes one paragraph per layout line. Blank lines become empty
// paragraphs and heading lines get a bold run. It fails without output when
// the project title is empty.
func (r *Renderer) Render(ctx context.Context, doc document.Document, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.RequireProjectTitle(doc.Meta.ProjectTitle); err != nil {
		return nil, err
	}

	body, err := documentXML(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := map[string][]byte{
		partContentTypes: []byte(contentTypesXML),
		partRels:         []byte(relsXML),
		partDocument:     body,
		partDocumentRels: []byte(documentRelsXML),
	}
	for _, name := range Parts {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("docx: create %s: %w", name, err)
		}
		if _, err := w.Write(parts[name]); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func documentXML(doc document.Document) ([]byte, error) {
	root := wordDocument{XMLNSW: namespaceMain}
	for _, line := range doc.Lines() {
		if line.Blank() {
			root.Body.Paragraphs = append(root.Body.Paragraphs, paragraph{})
			continue
		}
		r := run{Text: runText{Space: "preserve", Value: line.Text}}
		if line.Heading {
			r.Props = &runProps{Bold: &struct{}{}}
		}
		root.Body.Paragraphs = append(root.Body.Paragraphs, paragraph{Runs: []run{r}})
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	if err := encode(&buf, root); err != nil {
		return nil, fmt.Errorf("docx: encode document: %w", err)
	}
	return buf.Bytes(), nil
}

func encode(w io.Writer, v any) error {
	enc := xml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
