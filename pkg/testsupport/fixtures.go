package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/model"
)

// SleepStudyForm returns the reference English form used across encoder
// tests: every text field filled, two default rights selected, the consent
// statement left empty so the template default applies, GDPR included.
func SleepStudyForm() model.FormData {
	en := catalog.Default().MustLookup(catalog.English)
	return model.FormData{
		ProjectTitle:      "Sleep Study",
		ResearcherName:    "Dr. Ada Byron",
		Institution:       "Department of Psychology",
		ContactEmail:      "ada@example.edu",
		PurposeOfStudy:    "We study how screen time affects sleep quality.",
		DataCollected:     "Sleep diaries & questionnaires",
		StorageDuration:   "5 years",
		ParticipantRights: []string{en.DefaultRights[0], en.DefaultRights[1]},
		IncludeGDPR:       true,
		Language:          catalog.English,
	}
}

// MustLoadForm decodes a JSON or YAML form fixture.
func MustLoadForm(t *testing.T, path string) model.FormData {
	t.Helper()

	form, err := LoadForm(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}

// LoadForm reads a form fixture, returning an error for callers managing
// setup outside of *testing.T.
func LoadForm(path string) (model.FormData, error) {
	if path == "" {
		return model.FormData{}, errors.New("testsupport: form path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormData{}, fmt.Errorf("testsupport: read form: %w", err)
	}
	form, err := model.Decode(data)
	if err != nil {
		return model.FormData{}, fmt.Errorf("testsupport: decode form: %w", err)
	}
	return form, nil
}

// WriteGolden writes arbitrary data to a golden file as indented JSON when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
