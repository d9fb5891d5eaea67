package consentbuilder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	consentbuilder "github.com/goliatone/go-consentbuilder"
	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/export"
	"github.com/goliatone/go-consentbuilder/pkg/testsupport"
)

func TestLanguages(t *testing.T) {
	var codes []consentbuilder.Language
	for _, opt := range consentbuilder.Languages() {
		codes = append(codes, opt.Code)
	}
	want := []consentbuilder.Language{consentbuilder.English, consentbuilder.Polish, consentbuilder.French}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFormAndExport(t *testing.T) {
	form, err := consentbuilder.LoadForm(testsupport.Context(), "testdata/sleep_study.yaml")
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	if form.Language != catalog.English || form.ProjectTitle != "Sleep Study" {
		t.Fatalf("unexpected form: %+v", form)
	}

	saver := export.NewMemorySaver()
	result, err := consentbuilder.Export(testsupport.Context(), form, export.FormatPDF, export.WithSaver(saver))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	data, ok := saver.File("Sleep_Study_consent_form.pdf")
	if !ok || !bytes.HasPrefix(data, []byte("%PDF-")) || result.Filename != "Sleep_Study_consent_form.pdf" {
		t.Fatalf("pdf not saved as expected: %+v", result)
	}
}

func TestLoadForm_RejectsInvalidFile(t *testing.T) {
	_, err := consentbuilder.LoadForm(testsupport.Context(), "testdata/invalid.json")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "includeGDPR") {
		t.Fatalf("error should name the offending field: %v", err)
	}
}

func TestPreview_SwitchedSession(t *testing.T) {
	session := consentbuilder.NewSession()
	if err := session.SetLanguage(consentbuilder.French); err != nil {
		t.Fatalf("set language: %v", err)
	}
	out, err := consentbuilder.Preview(testsupport.Context(), session.Form(), export.FormatText)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	fr := catalog.Default().MustLookup(catalog.French)
	if !strings.Contains(string(out), fr.Title) || !strings.Contains(string(out), "• "+fr.DefaultRights[0]) {
		t.Fatalf("french preview mismatch:\n%s", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := consentbuilder.EmbeddedTemplates().Open("preview.tpl"); err != nil {
		t.Fatalf("preview template: %v", err)
	}
	if _, err := consentbuilder.EmbeddedLanguageTemplates().Open("pl.yaml"); err != nil {
		t.Fatalf("polish template: %v", err)
	}
}
