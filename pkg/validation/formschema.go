package validation

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
)

//go:embed schema/consent-form.yaml
var embeddedSchema embed.FS

const (
	schemaPath = "schema/consent-form.yaml"
	schemaName = "ConsentForm"
)

// SchemaIssue represents a structural problem in a form file.
type SchemaIssue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// SchemaValidationResult captures the outcome of checking a form file.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// Err folds the issues into a single error, or nil when valid.
func (r SchemaValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	messages := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Field != "" {
			messages = append(messages, issue.Field+": "+issue.Message)
			continue
		}
		messages = append(messages, issue.Message)
	}
	return fmt.Errorf("validation: invalid form file: %s", strings.Join(messages, "; "))
}

// FormValidator checks form files (YAML or JSON) against the embedded
// OpenAPI component schema. Only structure and types are checked: field
// contents such as e-mail syntax are accepted as entered.
type FormValidator struct {
	schema *openapi3.Schema
}

// ValidatorOption configures a FormValidator.
type ValidatorOption func(*validatorConfig)

type validatorConfig struct {
	catalog *catalog.Catalog
}

// WithCatalog restricts the language property to the codes of c.
func WithCatalog(c *catalog.Catalog) ValidatorOption {
	return func(cfg *validatorConfig) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// NewFormValidator loads and validates the embedded schema document.
func NewFormValidator(ctx context.Context, options ...ValidatorOption) (*FormValidator, error) {
	cfg := validatorConfig{catalog: catalog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	raw, err := embeddedSchema.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("validation: read schema: %w", err)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("validation: load schema: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validation: schema document invalid: %w", err)
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("validation: schema %q not found", schemaName)
	}
	schema := ref.Value

	if prop, ok := schema.Properties["language"]; ok && prop != nil && prop.Value != nil {
		codes := make([]any, 0)
		for _, opt := range cfg.catalog.Languages() {
			codes = append(codes, string(opt.Code))
		}
		prop.Value.Enum = codes
	}

	return &FormValidator{schema: schema}, nil
}

var (
	defaultValidatorOnce sync.Once
	defaultValidator     *FormValidator
	defaultValidatorErr  error
)

// ValidateForm checks raw using a validator bound to the default catalog.
func ValidateForm(ctx context.Context, raw []byte) SchemaValidationResult {
	defaultValidatorOnce.Do(func() {
		defaultValidator, defaultValidatorErr = NewFormValidator(ctx)
	})
	if defaultValidatorErr != nil {
		return SchemaValidationResult{Issues: []SchemaIssue{{Message: defaultValidatorErr.Error()}}}
	}
	return defaultValidator.Validate(ctx, raw)
}

// Validate decodes raw as YAML (a superset of JSON) and checks it against
// the schema. An empty document is valid.
func (v *FormValidator) Validate(ctx context.Context, raw []byte) SchemaValidationResult {
	result := SchemaValidationResult{Valid: true}
	if err := ctx.Err(); err != nil {
		return SchemaValidationResult{Issues: []SchemaIssue{{Message: err.Error()}}}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return result
	}

	value, err := decodeDocument(raw)
	if err != nil {
		return SchemaValidationResult{Issues: []SchemaIssue{{Message: err.Error()}}}
	}
	if value == nil {
		return result
	}
	if obj, ok := value.(map[string]any); ok {
		if lang, ok := obj["language"].(string); ok {
			obj["language"] = strings.ToLower(strings.TrimSpace(lang))
		}
	}

	if err := v.schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		result.Valid = false
		result.Issues = issuesFromError(err)
	}
	return result
}

// decodeDocument round-trips YAML through JSON so values carry the types
// the schema visitor expects (map[string]any, []any, float64).
func decodeDocument(raw []byte) (any, error) {
	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode form file: %w", err)
	}
	payload, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("decode form file: %w", err)
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode form file: %w", err)
	}
	return out, nil
}

func issuesFromError(err error) []SchemaIssue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []SchemaIssue
		for _, inner := range multi {
			out = append(out, issuesFromError(inner)...)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		pointer := schemaErr.JSONPointer()
		return []SchemaIssue{{
			Path:    pointerString(pointer),
			Field:   strings.Join(pointer, "."),
			Message: strings.TrimSpace(schemaErr.Reason),
		}}
	}

	return []SchemaIssue{{Message: strings.TrimSpace(err.Error())}}
}

func pointerString(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.ReplaceAll(segment, "~", "~0")
		segment = strings.ReplaceAll(segment, "/", "~1")
		escaped = append(escaped, segment)
	}
	return "/" + strings.Join(escaped, "/")
}
