package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var embeddedTemplates embed.FS

// ErrUnknownLanguage is returned when a code has no template.
var ErrUnknownLanguage = errors.New("catalog: unknown language")

// DefaultLanguages is the selector list shipped with the module, in display
// order. Every entry must have a matching template file.
var DefaultLanguages = []LanguageOption{
	{Code: English, Label: "English"},
	{Code: Polish, Label: "Polski"},
	{Code: French, Label: "Français"},
}

var defaultCatalog = mustLoadDefault()

func mustLoadDefault() *Catalog {
	c, err := Load(TemplatesFS(), DefaultLanguages)
	if err != nil {
		panic(err)
	}
	return c
}

// TemplatesFS returns the bundled template files.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default returns the catalog built from the embedded templates. It is
// loaded once at package initialisation and never mutated.
func Default() *Catalog {
	return defaultCatalog
}

// Catalog maps language codes to their templates. A Catalog is immutable
// after Load and safe for concurrent use.
type Catalog struct {
	options   []LanguageOption
	templates map[Language]LanguageTemplate
	matcher   language.Matcher
}

// Load reads every YAML file in fsys as a LanguageTemplate and checks that
// the selector options and templates are in one-to-one correspondence and
// that every template is complete.
func Load(fsys fs.FS, options []LanguageOption) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("catalog: template filesystem is nil")
	}
	if len(options) == 0 {
		return nil, errors.New("catalog: at least one language option is required")
	}

	templates := make(map[Language]LanguageTemplate)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}
		var tpl LanguageTemplate
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			return fmt.Errorf("catalog: parse %s: %w", path, err)
		}
		tpl.Code = Language(strings.ToLower(strings.TrimSpace(string(tpl.Code))))
		if tpl.Code == "" {
			return fmt.Errorf("catalog: file %s does not declare a code", path)
		}
		if _, exists := templates[tpl.Code]; exists {
			return fmt.Errorf("catalog: duplicate template for %q (file %s)", tpl.Code, path)
		}
		if err := checkComplete(tpl); err != nil {
			return fmt.Errorf("catalog: %s: %w", path, err)
		}
		templates[tpl.Code] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		options:   make([]LanguageOption, 0, len(options)),
		templates: make(map[Language]LanguageTemplate, len(templates)),
	}
	tags := make([]language.Tag, 0, len(options))
	seen := make(map[Language]struct{}, len(options))
	for _, opt := range options {
		if _, dup := seen[opt.Code]; dup {
			return nil, fmt.Errorf("catalog: language %q listed twice in selector", opt.Code)
		}
		seen[opt.Code] = struct{}{}

		tpl, ok := templates[opt.Code]
		if !ok {
			return nil, fmt.Errorf("catalog: selector language %q has no template", opt.Code)
		}
		if strings.TrimSpace(opt.Label) == "" {
			return nil, fmt.Errorf("catalog: selector language %q has no label", opt.Code)
		}
		tag, err := language.Parse(string(opt.Code))
		if err != nil {
			return nil, fmt.Errorf("catalog: language %q is not a valid BCP 47 tag: %w", opt.Code, err)
		}

		tpl.DisplayLabel = opt.Label
		c.templates[opt.Code] = tpl
		c.options = append(c.options, opt)
		tags = append(tags, tag)
	}
	for code := range templates {
		if _, ok := seen[code]; !ok {
			return nil, fmt.Errorf("catalog: template %q has no selector entry", code)
		}
	}

	c.matcher = language.NewMatcher(tags)
	return c, nil
}

// Languages returns the selector entries in display order.
func (c *Catalog) Languages() []LanguageOption {
	return append([]LanguageOption(nil), c.options...)
}

// DefaultLanguage is the first selector entry.
func (c *Catalog) DefaultLanguage() Language {
	return c.options[0].Code
}

// Lookup returns a copy of the template registered for code.
func (c *Catalog) Lookup(code Language) (LanguageTemplate, error) {
	tpl, ok := c.templates[code]
	if !ok {
		return LanguageTemplate{}, fmt.Errorf("%w %q", ErrUnknownLanguage, code)
	}
	return tpl.Clone(), nil
}

// MustLookup is Lookup for codes that are known to be valid, such as those
// taken from Languages. An unknown code is a programming error.
func (c *Catalog) MustLookup(code Language) LanguageTemplate {
	tpl, err := c.Lookup(code)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Has reports whether code is supported.
func (c *Catalog) Has(code Language) bool {
	_, ok := c.templates[code]
	return ok
}

// Parse resolves an exact language code, ignoring case and surrounding
// whitespace.
func (c *Catalog) Parse(raw string) (Language, error) {
	code := Language(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Has(code) {
		return "", fmt.Errorf("%w %q", ErrUnknownLanguage, raw)
	}
	return code, nil
}

// Match picks the closest supported language for a BCP 47 tag such as
// "fr-CA" or "pl_PL". Unparseable or unsupported tags yield the default
// language.
func (c *Catalog) Match(raw string) Language {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if trimmed == "" {
		return c.DefaultLanguage()
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return c.DefaultLanguage()
	}
	_, idx, confidence := c.matcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(c.options) {
		return c.DefaultLanguage()
	}
	return c.options[idx].Code
}

// Resolve accepts an exact code or a BCP 47 tag that matches a supported
// language. Unlike Match it fails instead of falling back to the default.
func (c *Catalog) Resolve(raw string) (Language, error) {
	if code, err := c.Parse(raw); err == nil {
		return code, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownLanguage, raw)
	}
	_, idx, confidence := c.matcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(c.options) {
		return "", fmt.Errorf("%w %q", ErrUnknownLanguage, raw)
	}
	return c.options[idx].Code, nil
}

func checkComplete(tpl LanguageTemplate) error {
	for _, label := range tpl.labels() {
		if strings.TrimSpace(label.value) == "" {
			return fmt.Errorf("template %q is missing %s", tpl.Code, label.name)
		}
	}
	if len(tpl.DefaultRights) == 0 {
		return fmt.Errorf("template %q has no default rights", tpl.Code)
	}
	seen := make(map[string]struct{}, len(tpl.DefaultRights))
	for i, right := range tpl.DefaultRights {
		if strings.TrimSpace(right) == "" {
			return fmt.Errorf("template %q default right %d is empty", tpl.Code, i)
		}
		if _, dup := seen[right]; dup {
			return fmt.Errorf("template %q lists default right %q twice", tpl.Code, right)
		}
		seen[right] = struct{}{}
	}
	return nil
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
