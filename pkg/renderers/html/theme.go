package html

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// DefaultTheme is selected when RenderOptions.Theme is empty.
const DefaultTheme = "paper"

// PaperManifest is the built-in preview theme.
func PaperManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":      "#1f3a5f",
			"text":       "#1b1b1b",
			"muted":      "#7a7a7a",
			"background": "#ffffff",
			"font":       "Georgia, serif",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand":      "#9cc3ff",
					"text":       "#ececec",
					"muted":      "#a0a0a0",
					"background": "#161616",
				},
			},
		},
	}
}

// ManifestSelector resolves theme selections from registered manifests.
type ManifestSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests by name. Later manifests replace
// earlier ones with the same name.
func NewManifestSelector(manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range manifests {
		s.Register(manifest)
	}
	return s
}

// Register adds or replaces a manifest.
func (s *ManifestSelector) Register(manifest *theme.Manifest) {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[manifest.Name] = manifest
}

// Select returns the named manifest. An empty name selects DefaultTheme; an
// unknown variant is an error.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = DefaultTheme
	}
	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("html: theme %q not registered", name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("html: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// rendererConfig flattens a selection into tokens and CSS custom properties,
// variant tokens overriding the base manifest.
func rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+cssIdent(key)] = value
	}
	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: vars,
	}
}

type cssVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func sortedVars(vars map[string]string) []cssVar {
	out := make([]cssVar, 0, len(vars))
	for name, value := range vars {
		out = append(out, cssVar{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func cssIdent(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(key)) {
		switch {
		case r == '.' || r == '_' || r == ' ' || r == '/':
			b.WriteRune('-')
		case r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}
