package export_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/export"
	"github.com/goliatone/go-consentbuilder/pkg/model"
	"github.com/goliatone/go-consentbuilder/pkg/render"
	"github.com/goliatone/go-consentbuilder/pkg/testsupport"
	"github.com/goliatone/go-consentbuilder/pkg/validation"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

type countingRenderer struct {
	calls int
}

func (r *countingRenderer) Name() string        { return "count" }
func (r *countingRenderer) ContentType() string { return "text/plain" }
func (r *countingRenderer) Extension() string   { return "txt" }
func (r *countingRenderer) Render(context.Context, document.Document, render.RenderOptions) ([]byte, error) {
	r.calls++
	return []byte("ok"), nil
}

func newExporter(t *testing.T, options ...export.Option) (*export.Exporter, *export.MemorySaver, *recordingNotifier) {
	t.Helper()
	saver := export.NewMemorySaver()
	notifier := &recordingNotifier{}
	options = append([]export.Option{
		export.WithSaver(saver),
		export.WithNotifier(notifier),
		export.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
	}, options...)
	exp, err := export.New(options...)
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	return exp, saver, notifier
}

func TestFilename(t *testing.T) {
	cases := map[string]string{
		"Sleep Study":         "Sleep_Study_consent_form.pdf",
		"Sleep   Study\tTwo":  "Sleep_Study_Two_consent_form.pdf",
		"Zażółć gęślą jaźń":   "Zażółć_gęślą_jaźń_consent_form.pdf",
		"Sleep/Wake Patterns": "Sleep-Wake_Patterns_consent_form.pdf",
	}
	for title, want := range cases {
		if got := export.Filename(title, "pdf"); got != want {
			t.Fatalf("Filename(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestExport_SleepStudyRoundTrip(t *testing.T) {
	exp, saver, notifier := newExporter(t)
	form := testsupport.SleepStudyForm()

	result, err := exp.Export(testsupport.Context(), form, export.FormatPDF)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Filename != "Sleep_Study_consent_form.pdf" {
		t.Fatalf("filename %q", result.Filename)
	}
	if _, err := uuid.Parse(result.ID); err != nil {
		t.Fatalf("result id %q is not a uuid: %v", result.ID, err)
	}
	data, ok := saver.File(result.Filename)
	if !ok || !bytes.HasPrefix(data, []byte("%PDF-")) || result.Size != len(data) {
		t.Fatalf("saved pdf mismatch (ok=%v size=%d)", ok, result.Size)
	}
	if diff := cmp.Diff([]string{"PDF downloaded successfully!"}, notifier.successes); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}

	preview, err := exp.Preview(testsupport.Context(), form, export.FormatText)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	en := catalog.Default().MustLookup(catalog.English)
	if !strings.Contains(string(preview), en.DefaultConsentStatement) {
		t.Fatalf("preview missing default consent statement")
	}
	if !strings.Contains(string(preview), "GDPR Compliance:\n"+en.GDPRStatement+"\n") {
		t.Fatalf("preview missing exact GDPR text:\n%s", preview)
	}
}

func TestExport_RoundTripScenarios(t *testing.T) {
	en := catalog.Default().MustLookup(catalog.English)
	cases := map[string]model.FormData{
		"fixture": testsupport.SleepStudyForm(),
		"minimal researcher form": {
			ProjectTitle:      "Sleep Study",
			ResearcherName:    "A. Lee",
			Institution:       "State University",
			ContactEmail:      "a.lee@example.edu",
			PurposeOfStudy:    "Investigate sleep patterns.",
			DataCollected:     "surveys",
			StorageDuration:   "3 years",
			ParticipantRights: []string{"You may withdraw at any time without penalty"},
			ConsentStatement:  "",
			IncludeGDPR:       true,
			Language:          catalog.English,
		},
	}
	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			exp, saver, _ := newExporter(t)

			result, err := exp.Export(testsupport.Context(), form, export.FormatPDF)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if result.Filename != "Sleep_Study_consent_form.pdf" {
				t.Fatalf("filename %q", result.Filename)
			}
			if data, ok := saver.File(result.Filename); !ok || !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Fatalf("pdf not saved")
			}

			preview, err := exp.Preview(testsupport.Context(), form, export.FormatText)
			if err != nil {
				t.Fatalf("preview: %v", err)
			}
			want := en.ConsentStatementLabel + ":\n" + en.DefaultConsentStatement + "\n"
			if !strings.Contains(string(preview), want) {
				t.Fatalf("preview missing default consent statement:\n%s", preview)
			}
			if !strings.Contains(string(preview), en.GDPRLabel+":\n"+en.GDPRStatement+"\n") {
				t.Fatalf("preview missing exact GDPR text:\n%s", preview)
			}
			for _, right := range form.ParticipantRights {
				if !strings.Contains(string(preview), document.Bullet+right+"\n") {
					t.Fatalf("preview missing right %q", right)
				}
			}
		})
	}
}

func TestExport_DocxNotification(t *testing.T) {
	exp, saver, notifier := newExporter(t)

	result, err := exp.Export(testsupport.Context(), testsupport.SleepStudyForm(), export.FormatDOCX)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Filename != "Sleep_Study_consent_form.docx" || saver.Last() != result.Filename {
		t.Fatalf("unexpected docx file %q (last %q)", result.Filename, saver.Last())
	}
	if result.ContentType != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
		t.Fatalf("content type %q", result.ContentType)
	}
	if diff := cmp.Diff([]string{"Word document downloaded successfully!"}, notifier.successes); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestExport_EmptyTitleProducesNoFile(t *testing.T) {
	counter := &countingRenderer{}
	registry, err := export.DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	registry.MustRegister(counter)
	exp, saver, notifier := newExporter(t, export.WithRegistry(registry))

	for _, format := range []string{export.FormatPDF, export.FormatDOCX, counter.Name()} {
		form := testsupport.SleepStudyForm()
		form.ProjectTitle = "  "

		_, err := exp.Export(testsupport.Context(), form, format)
		if !errors.Is(err, validation.ErrMissingRequiredField) {
			t.Fatalf("%s: expected ErrMissingRequiredField, got %v", format, err)
		}
	}
	if counter.calls != 0 {
		t.Fatalf("renderer invoked %d times for invalid forms", counter.calls)
	}
	if names := saver.Names(); len(names) != 0 {
		t.Fatalf("files saved for invalid forms: %v", names)
	}
	for _, msg := range notifier.errors {
		if msg != validation.MissingTitleMessage {
			t.Fatalf("unexpected error notification %q", msg)
		}
	}
	if len(notifier.errors) != 3 || len(notifier.successes) != 0 {
		t.Fatalf("notifications: %+v", notifier)
	}
}

func TestExport_UnknownFormatAndLanguage(t *testing.T) {
	exp, saver, _ := newExporter(t)

	if _, err := exp.Export(testsupport.Context(), testsupport.SleepStudyForm(), "odt"); !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	form := testsupport.SleepStudyForm()
	form.Language = "de"
	if _, err := exp.Export(testsupport.Context(), form, export.FormatPDF); !errors.Is(err, catalog.ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
	if len(saver.Names()) != 0 {
		t.Fatalf("nothing should be saved")
	}
}

func TestExport_DirSaver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	exp, _, _ := newExporter(t, export.WithSaver(export.DirSaver{Dir: dir}))

	result, err := exp.Export(testsupport.Context(), testsupport.SleepStudyForm(), export.FormatText)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Location != filepath.Join(dir, "Sleep_Study_consent_form.txt") {
		t.Fatalf("location %q", result.Location)
	}
	data, err := os.ReadFile(result.Location)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "Sleep Study\n") {
		t.Fatalf("unexpected text export:\n%s", data)
	}

	if _, err := (export.DirSaver{Dir: dir}).Save(testsupport.Context(), "../escape.txt", nil); err == nil {
		t.Fatalf("expected error for a name with path elements")
	}
}

func TestExport_LogsResult(t *testing.T) {
	var logs bytes.Buffer
	exp, _, _ := newExporter(t, export.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	result, err := exp.Export(testsupport.Context(), testsupport.SleepStudyForm(), export.FormatHTML)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{"export saved", "export_id=" + result.ID, "format=html", "filename=Sleep_Study_consent_form.html"} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestPreview_AllowsEmptyTitle(t *testing.T) {
	exp, _, _ := newExporter(t)

	out, err := exp.Preview(testsupport.Context(), model.NewFormData(), export.FormatText)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.HasPrefix(string(out), document.PlaceholderProjectTitle) {
		t.Fatalf("preview should start with the title placeholder:\n%s", out)
	}
}

func TestSuccessMessage(t *testing.T) {
	if got := export.SuccessMessage("odt"); got != "odt file saved successfully!" {
		t.Fatalf("fallback message %q", got)
	}
}
