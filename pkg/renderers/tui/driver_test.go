package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
)

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("other errors should pass through, got %v", err)
	}
}

func TestSelectionIndices(t *testing.T) {
	options := []string{"a", "b", "c"}

	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a", "z"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "a"}, defaultsFromIndices(options, []int{2, 0, 9, -1})); diff != "" {
		t.Fatalf("defaultsFromIndices mismatch (-want +got):\n%s", diff)
	}
	if indexOf(options, "z") != -1 {
		t.Fatalf("missing option should report -1")
	}
}

func TestSurveyDriver_InfoWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	driver := NewSurveyDriver(&buf)

	if err := driver.Info(context.Background(), "saved"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if buf.String() != "saved\n" {
		t.Fatalf("output %q", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.Input(ctx, InputConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
