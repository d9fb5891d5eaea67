package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Extension() string   { return "txt" }
func (s stubRenderer) Render(context.Context, document.Document, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "pdf"})
	registry.MustRegister(stubRenderer{name: "docx"})

	got, err := registry.Get("pdf")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "pdf" {
		t.Fatalf("unexpected renderer %q", got.Name())
	}
	if diff := cmp.Diff([]string{"docx", "pdf"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("docx") || registry.Has("html") {
		t.Fatalf("Has reported wrong membership")
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	registry.MustRegister(stubRenderer{name: "pdf"})
	if err := registry.Register(stubRenderer{name: "pdf"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Get("odt"); !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestRegistry_MustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	render.NewRegistry().MustGet("missing")
}

func TestRenderOptions_DocumentTitle(t *testing.T) {
	if got := (render.RenderOptions{}).DocumentTitle("Sleep Study"); got != "Sleep Study" {
		t.Fatalf("title %q", got)
	}
	if got := (render.RenderOptions{Title: "Override"}).DocumentTitle("Sleep Study"); got != "Override" {
		t.Fatalf("title %q", got)
	}
}
