package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/model"
	"github.com/goliatone/go-consentbuilder/pkg/render"
)

// Prompt texts that are not part of the language templates.
const (
	LanguagePrompt     = "Language"
	ProjectTitlePrompt = "Project Title *"
	GDPRPrompt         = "Include GDPR compliance statement"
	FormatPrompt       = "Export as"
)

var fieldHelp = map[model.Field]string{
	model.FieldContactEmail:    "your.email@example.com",
	model.FieldPurposeOfStudy:  "Describe the purpose and goals of your research",
	model.FieldDataCollected:   "e.g., interviews, surveys, audio recordings",
	model.FieldStorageDuration: "e.g., 5 years, until study completion",
}

// FormatOption is one entry of the export format prompt.
type FormatOption struct {
	Format string
	Label  string
}

// DefaultFormats lists the formats offered at the end of a session.
var DefaultFormats = []FormatOption{
	{Format: "pdf", Label: "Download PDF"},
	{Format: "docx", Label: "Download Word"},
}

// Runner walks a session through every form field.
type Runner struct {
	driver  PromptDriver
	preview render.Renderer
	logger  *slog.Logger
	theme   Theme
}

// New constructs a Runner. Without WithPromptDriver it prompts on the
// terminal through survey.
func New(options ...Option) *Runner {
	r := &Runner{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

type step struct {
	name string
	run  func(ctx context.Context, session *model.Session) error
}

// Run prompts for the language, every text field, the rights checklist, the
// consent statement and the GDPR flag, applying each answer to session as it
// is given. Aborting returns ErrAborted and keeps the answers already applied.
func (r *Runner) Run(ctx context.Context, session *model.Session) error {
	steps := []step{
		{name: "language", run: r.askLanguage},
		{name: string(model.FieldProjectTitle), run: r.askText(model.FieldProjectTitle)},
		{name: string(model.FieldResearcherName), run: r.askText(model.FieldResearcherName)},
		{name: string(model.FieldInstitution), run: r.askText(model.FieldInstitution)},
		{name: string(model.FieldContactEmail), run: r.askText(model.FieldContactEmail)},
		{name: string(model.FieldPurposeOfStudy), run: r.askText(model.FieldPurposeOfStudy)},
		{name: string(model.FieldDataCollected), run: r.askText(model.FieldDataCollected)},
		{name: string(model.FieldStorageDuration), run: r.askText(model.FieldStorageDuration)},
		{name: "participantRights", run: r.askRights},
		{name: string(model.FieldConsentStatement), run: r.askConsentStatement},
		{name: "includeGDPR", run: r.askGDPR},
	}
	for _, s := range steps {
		if err := s.run(ctx, session); err != nil {
			return fmt.Errorf("tui: %s: %w", s.name, err)
		}
		r.logger.Debug("form step completed", "step", s.name, "language", string(session.Language()))
		if err := r.showPreview(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

// ChooseFormat asks for an export format among options.
func (r *Runner) ChooseFormat(ctx context.Context, options []FormatOption) (string, error) {
	if len(options) == 0 {
		options = DefaultFormats
	}
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: FormatPrompt, Options: labels})
	if err != nil {
		return "", fmt.Errorf("tui: format: %w", err)
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("tui: format: invalid choice %d", idx)
	}
	return options[idx].Format, nil
}

// Notify prints an informational message.
func (r *Runner) Notify(ctx context.Context, message string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+message)
}

// NotifyError prints an error message.
func (r *Runner) NotifyError(ctx context.Context, message string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+message)
}

func (r *Runner) askLanguage(ctx context.Context, session *model.Session) error {
	languages := session.Catalog().Languages()
	labels := make([]string, len(languages))
	current := 0
	for i, opt := range languages {
		labels[i] = opt.Label
		if opt.Code == session.Language() {
			current = i
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      LanguagePrompt,
		Options:      labels,
		DefaultIndex: current,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(languages) {
		return fmt.Errorf("invalid language choice %d", idx)
	}
	if languages[idx].Code == session.Language() {
		return nil
	}
	return session.SetLanguage(languages[idx].Code)
}

func (r *Runner) askText(field model.Field) func(context.Context, *model.Session) error {
	return func(ctx context.Context, session *model.Session) error {
		current, err := session.Form().Text(field)
		if err != nil {
			return err
		}
		message := fieldPrompt(session.Template(), field)

		var value string
		if field == model.FieldPurposeOfStudy {
			value, err = r.driver.TextArea(ctx, TextAreaConfig{
				Message: message,
				Default: current,
				Help:    fieldHelp[field],
			})
		} else {
			value, err = r.driver.Input(ctx, InputConfig{
				Message: message,
				Default: current,
				Help:    fieldHelp[field],
			})
		}
		if err != nil {
			return err
		}
		return session.SetText(field, value)
	}
}

// askRights shows the active template's checklist plus any rights carried
// over from another language. The answer is applied as toggles so newly
// checked rights are appended after the existing selection.
func (r *Runner) askRights(ctx context.Context, session *model.Session) error {
	var (
		options  []string
		defaults []int
	)
	for _, item := range session.Checklist() {
		if item.Checked {
			defaults = append(defaults, len(options))
		}
		options = append(options, item.Right)
	}
	for _, orphan := range session.OrphanedRights() {
		defaults = append(defaults, len(options))
		options = append(options, orphan)
	}

	chosen, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  session.Template().RightsLabel,
		Options:  options,
		Defaults: defaults,
		PageSize: len(options),
	})
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(chosen))
	for _, idx := range chosen {
		if idx >= 0 && idx < len(options) {
			wanted[options[idx]] = true
		}
	}
	for _, right := range session.Form().ParticipantRights {
		if !wanted[right] && containsString(options, right) {
			session.ToggleRight(right)
		}
	}
	for _, idx := range chosen {
		if idx < 0 || idx >= len(options) {
			continue
		}
		if !session.RightSelected(options[idx]) {
			session.ToggleRight(options[idx])
		}
	}
	return nil
}

// askConsentStatement prefills the effective statement. Accepting the
// untouched default keeps the stored value empty so a later language switch
// still swaps in the new default.
func (r *Runner) askConsentStatement(ctx context.Context, session *model.Session) error {
	effective := session.EffectiveConsentStatement()
	value, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: session.Template().ConsentStatementLabel,
		Default: effective,
	})
	if err != nil {
		return err
	}
	if session.Form().ConsentStatement == "" && value == effective {
		return nil
	}
	return session.SetText(model.FieldConsentStatement, value)
}

func (r *Runner) askGDPR(ctx context.Context, session *model.Session) error {
	include, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: GDPRPrompt,
		Default: session.Form().IncludeGDPR,
		Help:    session.Template().GDPRStatement,
	})
	if err != nil {
		return err
	}
	session.SetIncludeGDPR(include)
	return nil
}

func (r *Runner) showPreview(ctx context.Context, session *model.Session) error {
	if r.preview == nil {
		return nil
	}
	doc := document.Build(session.Form(), session.Template(), document.ModePreview)
	out, err := r.preview.Render(ctx, doc, render.RenderOptions{})
	if err != nil {
		return fmt.Errorf("tui: preview: %w", err)
	}
	return r.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

func fieldPrompt(tpl catalog.LanguageTemplate, field model.Field) string {
	switch field {
	case model.FieldProjectTitle:
		return ProjectTitlePrompt
	case model.FieldResearcherName:
		return tpl.ResearcherLabel + " *"
	case model.FieldInstitution:
		return tpl.InstitutionLabel + " *"
	case model.FieldContactEmail:
		return tpl.ContactLabel + " *"
	case model.FieldPurposeOfStudy:
		return tpl.PurposeLabel + " *"
	case model.FieldDataCollected:
		return tpl.DataCollectedLabel
	case model.FieldStorageDuration:
		return tpl.StorageDurationLabel
	case model.FieldConsentStatement:
		return tpl.ConsentStatementLabel
	default:
		return string(field)
	}
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
