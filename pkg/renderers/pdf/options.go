package pdf

import "strings"

// Option configures the PDF renderer.
type Option func(*config)

type config struct {
	pageSize   string
	fontFamily string
	regular    []byte
	bold       []byte
	creator    string
}

// WithPageSize selects a gofpdf page size name ("A4", "Letter", ...).
func WithPageSize(size string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(size); trimmed != "" {
			cfg.pageSize = trimmed
		}
	}
}

// WithFontFamily replaces the embedded Go fonts with TrueType bytes for the
// regular and bold styles. Both faces must cover the glyphs of every
// supported language.
func WithFontFamily(family string, regular, bold []byte) Option {
	return func(cfg *config) {
		family = strings.TrimSpace(family)
		if family == "" || len(regular) == 0 || len(bold) == 0 {
			return
		}
		cfg.fontFamily = family
		cfg.regular = regular
		cfg.bold = bold
	}
}

// WithCreator overrides the creator written to the PDF metadata.
func WithCreator(creator string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(creator); trimmed != "" {
			cfg.creator = trimmed
		}
	}
}
