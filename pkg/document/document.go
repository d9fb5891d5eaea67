package document

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/model"
)

// Kind classifies a block of the projected document.
type Kind string

const (
	KindProjectTitle  Kind = "project-title"
	KindTemplateTitle Kind = "template-title"
	KindField         Kind = "field"
	KindHeading       Kind = "heading"
	KindParagraph     Kind = "paragraph"
	KindBullet        Kind = "bullet"
	KindSignature     Kind = "signature"
)

// Section groups consecutive blocks. Layouts separate sections with a blank
// line.
type Section string

const (
	SectionProjectTitle  Section = "project-title"
	SectionTemplateTitle Section = "template-title"
	SectionResearcher    Section = "researcher"
	SectionPurpose       Section = "purpose"
	SectionData          Section = "data"
	SectionRights        Section = "rights"
	SectionConsent       Section = "consent"
	SectionGDPR          Section = "gdpr"
	SectionSignature     Section = "signature"
	SectionDate          Section = "date"
)

// Mode selects how empty values are projected.
type Mode int

const (
	// ModePreview fills empty values with bracketed placeholders.
	ModePreview Mode = iota
	// ModeExport leaves empty values empty.
	ModeExport
)

// Placeholders shown in preview mode for empty fields.
const (
	PlaceholderProjectTitle = "[Project Title]"
	PlaceholderResearcher   = "[Researcher Name]"
	PlaceholderInstitution  = "[Institution / Department]"
	PlaceholderContact      = "[Contact Email]"
	PlaceholderPurpose      = "[Purpose of the study]"
	PlaceholderData         = "[Data types]"
	PlaceholderDuration     = "[Duration]"
	PlaceholderRights       = "[Participant rights]"
)

// SignatureFill is the blank printed after signature and date labels.
const SignatureFill = "______________________________"

// Bullet prefixes rights in line-oriented layouts.
const Bullet = "• "

// Block is one unit of content. Heading is set by the projection for the
// project title, the template title and section headings; renderers style
// headings from this flag alone.
type Block struct {
	Kind        Kind    `json:"kind"`
	Section     Section `json:"section"`
	Label       string  `json:"label,omitempty"`
	Text        string  `json:"text"`
	Heading     bool    `json:"heading"`
	Placeholder bool    `json:"placeholder,omitempty"`
}

// Meta carries form values renderers use outside the body, such as PDF
// metadata and file names.
type Meta struct {
	ProjectTitle string           `json:"projectTitle"`
	Researcher   string           `json:"researcher"`
	Institution  string           `json:"institution"`
	Language     catalog.Language `json:"language"`
	IncludeGDPR  bool             `json:"includeGDPR"`
}

// Document is the ordered, renderer-neutral view of a consent form.
type Document struct {
	Meta   Meta    `json:"meta"`
	Blocks []Block `json:"blocks"`
}

// Build projects form through tpl. It has no side effects and does not
// retain form or tpl.
func Build(form model.FormData, tpl catalog.LanguageTemplate, mode Mode) Document {
	b := builder{mode: mode}

	b.add(Block{
		Kind:    KindProjectTitle,
		Section: SectionProjectTitle,
		Heading: true,
	}, form.ProjectTitle, PlaceholderProjectTitle)
	b.add(Block{
		Kind:    KindTemplateTitle,
		Section: SectionTemplateTitle,
		Heading: true,
	}, tpl.Title, "")

	b.field(SectionResearcher, tpl.ResearcherLabel, form.ResearcherName, PlaceholderResearcher)
	b.field(SectionResearcher, tpl.InstitutionLabel, form.Institution, PlaceholderInstitution)
	b.field(SectionResearcher, tpl.ContactLabel, form.ContactEmail, PlaceholderContact)

	b.heading(SectionPurpose, tpl.PurposeLabel)
	b.add(Block{Kind: KindParagraph, Section: SectionPurpose}, form.PurposeOfStudy, PlaceholderPurpose)

	b.field(SectionData, tpl.DataCollectedLabel, form.DataCollected, PlaceholderData)
	b.field(SectionData, tpl.StorageDurationLabel, form.StorageDuration, PlaceholderDuration)

	b.heading(SectionRights, tpl.RightsLabel)
	for _, right := range form.ParticipantRights {
		b.add(Block{Kind: KindBullet, Section: SectionRights}, right, "")
	}
	if len(form.ParticipantRights) == 0 && mode == ModePreview {
		b.add(Block{Kind: KindBullet, Section: SectionRights}, "", PlaceholderRights)
	}

	b.heading(SectionConsent, tpl.ConsentStatementLabel)
	b.add(Block{Kind: KindParagraph, Section: SectionConsent}, form.EffectiveConsentStatement(tpl), "")

	if form.IncludeGDPR {
		b.heading(SectionGDPR, tpl.GDPRLabel)
		b.add(Block{Kind: KindParagraph, Section: SectionGDPR}, tpl.GDPRStatement, "")
	}

	b.add(Block{Kind: KindSignature, Section: SectionSignature, Label: normalize(tpl.SignatureLabel)}, "", "")
	b.add(Block{Kind: KindSignature, Section: SectionDate, Label: normalize(tpl.DateLabel)}, "", "")

	return Document{
		Meta: Meta{
			ProjectTitle: normalize(form.ProjectTitle),
			Researcher:   normalize(form.ResearcherName),
			Institution:  normalize(form.Institution),
			Language:     tpl.Code,
			IncludeGDPR:  form.IncludeGDPR,
		},
		Blocks: b.blocks,
	}
}

// HasSection reports whether any block belongs to section.
func (d Document) HasSection(section Section) bool {
	for _, block := range d.Blocks {
		if block.Section == section {
			return true
		}
	}
	return false
}

// Section returns the blocks of one section in order.
func (d Document) Section(section Section) []Block {
	var out []Block
	for _, block := range d.Blocks {
		if block.Section == section {
			out = append(out, block)
		}
	}
	return out
}

type builder struct {
	mode   Mode
	blocks []Block
}

func (b *builder) add(block Block, value, placeholder string) {
	text := normalize(value)
	if text == "" && placeholder != "" && b.mode == ModePreview {
		text = placeholder
		block.Placeholder = true
	}
	block.Text = text
	b.blocks = append(b.blocks, block)
}

func (b *builder) field(section Section, label, value, placeholder string) {
	b.add(Block{Kind: KindField, Section: section, Label: normalize(label)}, value, placeholder)
}

func (b *builder) heading(section Section, label string) {
	b.add(Block{Kind: KindHeading, Section: section, Heading: true}, label, "")
}

func normalize(value string) string {
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return norm.NFC.String(value)
}
