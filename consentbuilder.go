package consentbuilder

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/export"
	"github.com/goliatone/go-consentbuilder/pkg/model"
	"github.com/goliatone/go-consentbuilder/pkg/validation"
)

// FormData aliases model.FormData for callers that only import the root
// package.
type FormData = model.FormData

// Language aliases catalog.Language.
type Language = catalog.Language

// Result aliases export.Result.
type Result = export.Result

// Supported language codes.
const (
	English = catalog.English
	Polish  = catalog.Polish
	French  = catalog.French
)

// Languages returns the language selector entries of the bundled catalog.
func Languages() []catalog.LanguageOption {
	return catalog.Default().Languages()
}

// NewSession starts an editing session.
func NewSession(options ...model.SessionOption) *model.Session {
	return model.NewSession(options...)
}

// NewExporter exposes the exporter constructor from the top-level module.
func NewExporter(options ...export.Option) (*export.Exporter, error) {
	return export.New(options...)
}

// Export encodes form with the built-in renderers and saves it through the
// configured saver. It is the simplest entry point for callers that already
// hold a filled form.
func Export(ctx context.Context, form FormData, format string, options ...export.Option) (Result, error) {
	exp, err := export.New(options...)
	if err != nil {
		return Result{}, err
	}
	return exp.Export(ctx, form, format)
}

// Preview renders form with placeholders for empty fields.
func Preview(ctx context.Context, form FormData, format string, options ...export.Option) ([]byte, error) {
	exp, err := export.New(options...)
	if err != nil {
		return nil, err
	}
	return exp.Preview(ctx, form, format)
}

// ParseForm checks raw (YAML or JSON) against the form schema and decodes it.
func ParseForm(ctx context.Context, raw []byte) (FormData, error) {
	if err := validation.ValidateForm(ctx, raw).Err(); err != nil {
		return FormData{}, err
	}
	return model.Decode(raw)
}

// LoadForm reads a form file from disk and parses it with ParseForm.
func LoadForm(ctx context.Context, path string) (FormData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FormData{}, fmt.Errorf("consentbuilder: read form file: %w", err)
	}
	return ParseForm(ctx, raw)
}
