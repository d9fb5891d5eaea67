package model

import (
	"fmt"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCatalog swaps the template catalog used by the session.
func WithCatalog(c *catalog.Catalog) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithForm seeds the session with existing form data.
func WithForm(form FormData) SessionOption {
	return func(s *Session) {
		s.form = form.Clone()
		s.seeded = true
	}
}

// ChecklistItem is one entry of the rights checklist shown to the user.
type ChecklistItem struct {
	Right   string `json:"right"`
	Checked bool   `json:"checked"`
}

// Session owns the form for one editing session. Edits are applied
// synchronously; a Session is not safe for concurrent use.
type Session struct {
	catalog *catalog.Catalog
	form    FormData
	seeded  bool
}

// NewSession creates a session. Without WithForm the form starts empty in
// the catalog's default language. A seeded form whose language is unknown
// to the catalog falls back to the default language.
func NewSession(options ...SessionOption) *Session {
	s := &Session{catalog: catalog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if !s.seeded {
		s.form = FormData{}
	}
	if !s.catalog.Has(s.form.Language) {
		s.form.Language = s.catalog.DefaultLanguage()
	}
	return s
}

// Catalog returns the catalog backing the session.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Form returns a copy of the current form.
func (s *Session) Form() FormData {
	return s.form.Clone()
}

// Language returns the active language.
func (s *Session) Language() catalog.Language {
	return s.form.Language
}

// Template returns the active language template.
func (s *Session) Template() catalog.LanguageTemplate {
	return s.catalog.MustLookup(s.form.Language)
}

// SetText assigns a free-text field.
func (s *Session) SetText(field Field, value string) error {
	return s.form.SetText(field, value)
}

// SetIncludeGDPR toggles the GDPR block.
func (s *Session) SetIncludeGDPR(include bool) {
	s.form.IncludeGDPR = include
}

// SetLanguage switches the active template, carrying over defaults as
// described by SwitchLanguage. Unknown codes leave the session untouched.
func (s *Session) SetLanguage(code catalog.Language) error {
	to, err := s.catalog.Lookup(code)
	if err != nil {
		return fmt.Errorf("model: set language: %w", err)
	}
	from := s.catalog.MustLookup(s.form.Language)
	s.form = SwitchLanguage(s.form, from, to)
	return nil
}

// ToggleRight adds or removes a right from the selection.
func (s *Session) ToggleRight(right string) {
	s.form.ParticipantRights = ToggleRight(s.form.ParticipantRights, right)
}

// RightSelected reports whether right is currently selected.
func (s *Session) RightSelected(right string) bool {
	for _, existing := range s.form.ParticipantRights {
		if existing == right {
			return true
		}
	}
	return false
}

// Checklist returns the active template's default rights with their
// selection state.
func (s *Session) Checklist() []ChecklistItem {
	tpl := s.Template()
	items := make([]ChecklistItem, 0, len(tpl.DefaultRights))
	for _, right := range tpl.DefaultRights {
		items = append(items, ChecklistItem{Right: right, Checked: s.RightSelected(right)})
	}
	return items
}

// OrphanedRights lists selected rights that are not part of the active
// template's checklist, typically left over from another language. They are
// kept in the form and exported as entered.
func (s *Session) OrphanedRights() []string {
	tpl := s.Template()
	var out []string
	for _, right := range s.form.ParticipantRights {
		if !tpl.HasDefaultRight(right) {
			out = append(out, right)
		}
	}
	return out
}

// EffectiveConsentStatement returns the consent statement as it will be
// rendered.
func (s *Session) EffectiveConsentStatement() string {
	return s.form.EffectiveConsentStatement(s.Template())
}
