package model

import (
	"fmt"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
)

// Field names a free-text field of the form. Values match the JSON/YAML keys
// used by form files.
type Field string

const (
	FieldProjectTitle     Field = "projectTitle"
	FieldResearcherName   Field = "researcherName"
	FieldInstitution      Field = "institution"
	FieldContactEmail     Field = "contactEmail"
	FieldPurposeOfStudy   Field = "purposeOfStudy"
	FieldDataCollected    Field = "dataCollected"
	FieldStorageDuration  Field = "storageDuration"
	FieldConsentStatement Field = "consentStatement"
)

// TextFields lists the free-text fields in the order they are presented to
// the user.
var TextFields = []Field{
	FieldProjectTitle,
	FieldResearcherName,
	FieldInstitution,
	FieldContactEmail,
	FieldPurposeOfStudy,
	FieldDataCollected,
	FieldStorageDuration,
	FieldConsentStatement,
}

// FormData holds everything the user entered for one consent form.
type FormData struct {
	ProjectTitle      string           `json:"projectTitle" yaml:"projectTitle"`
	ResearcherName    string           `json:"researcherName" yaml:"researcherName"`
	Institution       string           `json:"institution" yaml:"institution"`
	ContactEmail      string           `json:"contactEmail" yaml:"contactEmail"`
	PurposeOfStudy    string           `json:"purposeOfStudy" yaml:"purposeOfStudy"`
	DataCollected     string           `json:"dataCollected" yaml:"dataCollected"`
	StorageDuration   string           `json:"storageDuration" yaml:"storageDuration"`
	ParticipantRights []string         `json:"participantRights" yaml:"participantRights"`
	ConsentStatement  string           `json:"consentStatement" yaml:"consentStatement"`
	IncludeGDPR       bool             `json:"includeGDPR" yaml:"includeGDPR"`
	Language          catalog.Language `json:"language" yaml:"language"`
}

// NewFormData returns an empty form using the catalog's default language.
func NewFormData() FormData {
	return FormData{Language: catalog.Default().DefaultLanguage()}
}

// Clone returns a deep copy of the form.
func (f FormData) Clone() FormData {
	out := f
	if f.ParticipantRights != nil {
		out.ParticipantRights = append([]string(nil), f.ParticipantRights...)
	}
	return out
}

// Text returns the value of a free-text field.
func (f FormData) Text(field Field) (string, error) {
	ptr, err := f.textField(field)
	if err != nil {
		return "", err
	}
	return *ptr, nil
}

// SetText assigns a free-text field.
func (f *FormData) SetText(field Field, value string) error {
	ptr, err := f.textField(field)
	if err != nil {
		return err
	}
	*ptr = value
	return nil
}

func (f *FormData) textField(field Field) (*string, error) {
	switch field {
	case FieldProjectTitle:
		return &f.ProjectTitle, nil
	case FieldResearcherName:
		return &f.ResearcherName, nil
	case FieldInstitution:
		return &f.Institution, nil
	case FieldContactEmail:
		return &f.ContactEmail, nil
	case FieldPurposeOfStudy:
		return &f.PurposeOfStudy, nil
	case FieldDataCollected:
		return &f.DataCollected, nil
	case FieldStorageDuration:
		return &f.StorageDuration, nil
	case FieldConsentStatement:
		return &f.ConsentStatement, nil
	default:
		return nil, fmt.Errorf("model: %q is not a text field", field)
	}
}

// EffectiveConsentStatement returns the stored consent statement, or the
// template default when the user has not entered one.
func (f FormData) EffectiveConsentStatement(tpl catalog.LanguageTemplate) string {
	if f.ConsentStatement == "" {
		return tpl.DefaultConsentStatement
	}
	return f.ConsentStatement
}

// ToggleRight removes right from rights when present, otherwise appends it.
// The input slice is not modified.
func ToggleRight(rights []string, right string) []string {
	out := make([]string, 0, len(rights)+1)
	removed := false
	for _, existing := range rights {
		if existing == right {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, right)
	}
	return out
}

// SwitchLanguage returns a copy of form moved from template `from` to
// template `to`. An empty rights list receives a fresh copy of the new
// defaults; a consent statement that is empty or still exactly the old
// default is replaced with the new default. Everything else is preserved.
func SwitchLanguage(form FormData, from, to catalog.LanguageTemplate) FormData {
	out := form.Clone()
	out.Language = to.Code

	if len(out.ParticipantRights) == 0 {
		out.ParticipantRights = append([]string(nil), to.DefaultRights...)
	}
	if out.ConsentStatement == "" || out.ConsentStatement == from.DefaultConsentStatement {
		out.ConsentStatement = to.DefaultConsentStatement
	}
	return out
}
