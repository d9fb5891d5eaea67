package document_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/model"
	"github.com/goliatone/go-consentbuilder/pkg/testsupport"
)

func TestBuild_PreviewPlaceholders(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	doc := document.Build(model.NewFormData(), en, document.ModePreview)

	want := map[string]bool{
		document.PlaceholderProjectTitle: false,
		document.PlaceholderResearcher:   false,
		document.PlaceholderInstitution:  false,
		document.PlaceholderContact:      false,
		document.PlaceholderPurpose:      false,
		document.PlaceholderData:         false,
		document.PlaceholderDuration:     false,
		document.PlaceholderRights:       false,
	}
	for _, block := range doc.Blocks {
		if !block.Placeholder {
			continue
		}
		if _, ok := want[block.Text]; !ok {
			t.Fatalf("unexpected placeholder %q", block.Text)
		}
		want[block.Text] = true
	}
	for text, seen := range want {
		if !seen {
			t.Fatalf("placeholder %q missing", text)
		}
	}

	if !strings.HasPrefix(doc.String(), document.PlaceholderProjectTitle+"\n") {
		t.Fatalf("preview should start with the title placeholder:\n%s", doc.String())
	}
}

func TestBuild_PreviewContainsProjectTitle(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	form := model.NewFormData()
	form.ProjectTitle = "Sleep Study"

	doc := document.Build(form, en, document.ModePreview)
	if !strings.Contains(doc.String(), "Sleep Study") {
		t.Fatalf("preview missing project title:\n%s", doc.String())
	}
	if strings.Contains(doc.String(), document.PlaceholderProjectTitle) {
		t.Fatalf("preview should not show the title placeholder once set")
	}
}

func TestBuild_ExportLeavesEmptyFieldsEmpty(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	form := model.NewFormData()
	form.ProjectTitle = "Only Title"

	doc := document.Build(form, en, document.ModeExport)
	for _, block := range doc.Blocks {
		if block.Placeholder {
			t.Fatalf("export mode produced placeholder block %+v", block)
		}
	}
	if got := doc.Section(document.SectionRights); len(got) != 1 || got[0].Kind != document.KindHeading {
		t.Fatalf("expected only the rights heading, got %+v", got)
	}
	if doc.Section(document.SectionResearcher)[0].Text != "" {
		t.Fatalf("expected empty researcher value")
	}
}

func TestBuild_ConsentStatementDefaultsInBothModes(t *testing.T) {
	for _, lang := range catalog.Default().Languages() {
		tpl := catalog.Default().MustLookup(lang.Code)
		for _, mode := range []document.Mode{document.ModePreview, document.ModeExport} {
			doc := document.Build(model.FormData{Language: lang.Code}, tpl, mode)
			consent := doc.Section(document.SectionConsent)
			if len(consent) != 2 {
				t.Fatalf("%s: consent section has %d blocks", lang.Code, len(consent))
			}
			if consent[1].Text != tpl.DefaultConsentStatement {
				t.Fatalf("%s: consent statement %q", lang.Code, consent[1].Text)
			}
		}
	}
}

func TestBuild_GDPRSectionFollowsFlag(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	form := testsupport.SleepStudyForm()

	form.IncludeGDPR = false
	doc := document.Build(form, en, document.ModePreview)
	if doc.HasSection(document.SectionGDPR) {
		t.Fatalf("gdpr section present with IncludeGDPR=false")
	}
	if strings.Contains(doc.String(), en.GDPRStatement) {
		t.Fatalf("gdpr statement leaked into preview")
	}

	form.IncludeGDPR = true
	doc = document.Build(form, en, document.ModePreview)
	gdpr := doc.Section(document.SectionGDPR)
	if len(gdpr) != 2 || gdpr[1].Text != en.GDPRStatement {
		t.Fatalf("gdpr section mismatch: %+v", gdpr)
	}
}

func TestBuild_HeadingFlags(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	form := testsupport.SleepStudyForm()
	// A value ending with a colon must not be styled as a heading.
	form.PurposeOfStudy = "Phases:"

	doc := document.Build(form, en, document.ModeExport)
	var headings []string
	for _, line := range doc.Lines() {
		if line.Heading {
			headings = append(headings, line.Text)
		}
	}
	want := []string{
		"Sleep Study",
		en.Title,
		en.PurposeLabel + ":",
		en.RightsLabel + ":",
		en.ConsentStatementLabel + ":",
		en.GDPRLabel + ":",
	}
	if diff := cmp.Diff(want, headings); diff != "" {
		t.Fatalf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_Lines(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	doc := document.Build(testsupport.SleepStudyForm(), en, document.ModeExport)

	want := []string{
		"Sleep Study",
		"",
		en.Title,
		"",
		"Researcher: Dr. Ada Byron",
		"Institution / Department: Department of Psychology",
		"Contact: ada@example.edu",
		"",
		"Purpose of the Study:",
		"We study how screen time affects sleep quality.",
		"",
		"Data Collected: Sleep diaries & questionnaires",
		"Duration of Data Storage: 5 years",
		"",
		"Your Rights:",
		"• " + en.DefaultRights[0],
		"• " + en.DefaultRights[1],
		"",
		"Consent Statement:",
		en.DefaultConsentStatement,
		"",
		"GDPR Compliance:",
		en.GDPRStatement,
		"",
		"Signature: " + document.SignatureFill,
		"",
		"Date: " + document.SignatureFill,
	}

	var got []string
	for _, line := range doc.Lines() {
		got = append(got, line.Text)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_MultiLineParagraphsSplit(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	form := testsupport.SleepStudyForm()
	form.PurposeOfStudy = "first\r\nsecond"

	doc := document.Build(form, en, document.ModeExport)
	lines := doc.Lines()
	for i, line := range lines {
		if line.Text == "Purpose of the Study:" {
			if lines[i+1].Text != "first" || lines[i+2].Text != "second" {
				t.Fatalf("paragraph not split: %+v", lines[i:i+3])
			}
			return
		}
	}
	t.Fatalf("purpose heading not found")
}

func TestDocument_MultiLineFieldsAndBulletsSplit(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	form := testsupport.SleepStudyForm()
	form.DataCollected = "surveys\ninterviews"
	form.ParticipantRights = []string{"Withdraw\nat any time"}

	lines := document.Build(form, en, document.ModeExport).Lines()
	var texts []string
	for _, line := range lines {
		if strings.Contains(line.Text, "\n") {
			t.Fatalf("line still holds a newline: %q", line.Text)
		}
		texts = append(texts, line.Text)
	}
	joined := strings.Join(texts, "|")
	for _, want := range []string{
		en.DataCollectedLabel + ": surveys|interviews|",
		document.Bullet + "Withdraw|at any time|",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected rows %q in %q", want, joined)
		}
	}
}

func TestBuild_NormalizesToNFC(t *testing.T) {
	fr := catalog.Default().MustLookup(catalog.French)
	form := model.FormData{ProjectTitle: "Etude cafe\u0301", Language: catalog.French}

	doc := document.Build(form, fr, document.ModeExport)
	if doc.Meta.ProjectTitle != "Etude caf\u00e9" {
		t.Fatalf("title not normalized: %q", doc.Meta.ProjectTitle)
	}
	if doc.Blocks[0].Text != "Etude caf\u00e9" {
		t.Fatalf("block not normalized: %q", doc.Blocks[0].Text)
	}
}

func TestBuild_RightsKeepStoredOrder(t *testing.T) {
	pl := catalog.Default().MustLookup(catalog.Polish)
	form := model.FormData{
		ProjectTitle:      "Badanie",
		Language:          catalog.Polish,
		ParticipantRights: []string{pl.DefaultRights[3], "Custom right", pl.DefaultRights[0]},
	}

	doc := document.Build(form, pl, document.ModeExport)
	var got []string
	for _, block := range doc.Section(document.SectionRights) {
		if block.Kind == document.KindBullet {
			got = append(got, block.Text)
		}
	}
	if diff := cmp.Diff(form.ParticipantRights, got); diff != "" {
		t.Fatalf("rights order mismatch (-want +got):\n%s", diff)
	}
	if doc.Meta.Language != catalog.Polish {
		t.Fatalf("meta language %q", doc.Meta.Language)
	}
}
