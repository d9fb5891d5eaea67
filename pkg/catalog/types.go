package catalog

// Language identifies a supported template by its short code.
type Language string

const (
	English Language = "en"
	Polish  Language = "pl"
	French  Language = "fr"
)

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// LanguageOption is a single entry of the language selector.
type LanguageOption struct {
	Code  Language `json:"code" yaml:"code"`
	Label string   `json:"label" yaml:"label"`
}

// LanguageTemplate bundles the localized labels and default texts for one
// language. Values handed out by a Catalog are copies and can be modified
// freely by callers.
type LanguageTemplate struct {
	Code                    Language `json:"code" yaml:"code"`
	DisplayLabel            string   `json:"displayLabel" yaml:"-"`
	Title                   string   `json:"title" yaml:"title"`
	ResearcherLabel         string   `json:"researcherLabel" yaml:"researcherLabel"`
	InstitutionLabel        string   `json:"institutionLabel" yaml:"institutionLabel"`
	ContactLabel            string   `json:"contactLabel" yaml:"contactLabel"`
	PurposeLabel            string   `json:"purposeLabel" yaml:"purposeLabel"`
	DataCollectedLabel      string   `json:"dataCollectedLabel" yaml:"dataCollectedLabel"`
	StorageDurationLabel    string   `json:"storageDurationLabel" yaml:"storageDurationLabel"`
	RightsLabel             string   `json:"rightsLabel" yaml:"rightsLabel"`
	ConsentStatementLabel   string   `json:"consentStatementLabel" yaml:"consentStatementLabel"`
	SignatureLabel          string   `json:"signatureLabel" yaml:"signatureLabel"`
	DateLabel               string   `json:"dateLabel" yaml:"dateLabel"`
	GDPRLabel               string   `json:"gdprLabel" yaml:"gdprLabel"`
	GDPRStatement           string   `json:"gdprStatement" yaml:"gdprStatement"`
	DefaultRights           []string `json:"defaultRights" yaml:"defaultRights"`
	DefaultConsentStatement string   `json:"defaultConsentStatement" yaml:"defaultConsentStatement"`
}

// Clone returns a deep copy of the template.
func (t LanguageTemplate) Clone() LanguageTemplate {
	out := t
	if t.DefaultRights != nil {
		out.DefaultRights = append([]string(nil), t.DefaultRights...)
	}
	return out
}

// HasDefaultRight reports whether right is one of the template's checklist
// entries.
func (t LanguageTemplate) HasDefaultRight(right string) bool {
	for _, candidate := range t.DefaultRights {
		if candidate == right {
			return true
		}
	}
	return false
}

// labels lists every label field with its YAML key so completeness checks
// can report the missing entry by name.
func (t LanguageTemplate) labels() []namedValue {
	return []namedValue{
		{"title", t.Title},
		{"researcherLabel", t.ResearcherLabel},
		{"institutionLabel", t.InstitutionLabel},
		{"contactLabel", t.ContactLabel},
		{"purposeLabel", t.PurposeLabel},
		{"dataCollectedLabel", t.DataCollectedLabel},
		{"storageDurationLabel", t.StorageDurationLabel},
		{"rightsLabel", t.RightsLabel},
		{"consentStatementLabel", t.ConsentStatementLabel},
		{"signatureLabel", t.SignatureLabel},
		{"dateLabel", t.DateLabel},
		{"gdprLabel", t.GDPRLabel},
		{"gdprStatement", t.GDPRStatement},
		{"defaultConsentStatement", t.DefaultConsentStatement},
	}
}

type namedValue struct {
	name  string
	value string
}
