package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	consentbuilder "github.com/goliatone/go-consentbuilder"
	"github.com/goliatone/go-consentbuilder/pkg/catalog"
	"github.com/goliatone/go-consentbuilder/pkg/export"
	"github.com/goliatone/go-consentbuilder/pkg/model"
	"github.com/goliatone/go-consentbuilder/pkg/renderers/text"
	"github.com/goliatone/go-consentbuilder/pkg/renderers/tui"
)

// newRunner is swapped in tests so the interactive session can be scripted.
var newRunner = func(stdout io.Writer, logger *slog.Logger) *tui.Runner {
	return tui.New(
		tui.WithPromptDriver(tui.NewSurveyDriver(stdout)),
		tui.WithPreview(text.New()),
		tui.WithLogger(logger),
		tui.WithTheme(tui.Theme{ErrorPrefix: "error: "}),
	)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "languages":
		err = runLanguages(args[1:], stdout, stderr)
	case "preview":
		err = runPreview(ctx, args[1:], stdout, stderr)
	case "export":
		err = runExport(ctx, args[1:], stdout, stderr)
	case "fill":
		err = runFill(ctx, args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 1
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errNotified) {
			return 1
		}
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(stderr, "aborted")
			return 1
		}
		fmt.Fprintf(stderr, "%s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [flags]\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  languages   list supported languages")
	fmt.Fprintln(w, "  preview     print a preview of a form file")
	fmt.Fprintln(w, "  export      export a form file as pdf, docx, html or text")
	fmt.Fprintln(w, "  fill        fill in a form interactively and export it")
}

type commonFlags struct {
	lang    string
	verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.lang, "lang", "", "override the form language (en, pl, fr or a locale such as fr-CA)")
	fs.BoolVar(&c.verbose, "v", false, "enable debug logging")
}

func (c commonFlags) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// applyLanguage switches form to the requested language through a session so
// defaults are reconciled the same way the interactive flow does.
func (c commonFlags) applyLanguage(form model.FormData) (model.FormData, error) {
	if c.lang == "" {
		return form, nil
	}
	code, err := catalog.Default().Resolve(c.lang)
	if err != nil {
		return form, err
	}
	session := model.NewSession(model.WithForm(form))
	if err := session.SetLanguage(code); err != nil {
		return form, err
	}
	return session.Form(), nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runLanguages(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("languages", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, opt := range consentbuilder.Languages() {
		fmt.Fprintf(stdout, "%s\t%s\n", opt.Code, opt.Label)
	}
	return nil
}

func runPreview(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("preview", stderr)
	var common commonFlags
	common.register(fs)
	input := fs.String("input", "", "form file (YAML or JSON)")
	format := fs.String("format", export.FormatText, "preview format: text or html")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format != export.FormatText && *format != export.FormatHTML {
		return fmt.Errorf("unsupported preview format %q", *format)
	}

	form, err := loadInput(ctx, *input, common)
	if err != nil {
		return err
	}
	exp, err := export.New(export.WithLogger(common.logger(stderr)))
	if err != nil {
		return err
	}
	out, err := exp.Preview(ctx, form, *format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func runExport(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", stderr)
	var common commonFlags
	common.register(fs)
	input := fs.String("input", "", "form file (YAML or JSON)")
	format := fs.String("format", export.FormatPDF, "export format: pdf, docx, html or text")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form, err := loadInput(ctx, *input, common)
	if err != nil {
		return err
	}
	return exportForm(ctx, form, *format, *out, common.logger(stderr), stdout, stderr)
}

func runFill(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("fill", stderr)
	var common commonFlags
	common.register(fs)
	input := fs.String("input", "", "optional form file to start from")
	format := fs.String("format", "", "export format: pdf or docx (asked when empty)")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := model.NewFormData()
	if *input != "" {
		loaded, err := consentbuilder.LoadForm(ctx, *input)
		if err != nil {
			return err
		}
		form = loaded
	}
	form, err := common.applyLanguage(form)
	if err != nil {
		return err
	}

	logger := common.logger(stderr)
	runner := newRunner(stdout, logger)
	session := model.NewSession(model.WithForm(form))
	if err := runner.Run(ctx, session); err != nil {
		return err
	}

	chosen := *format
	if chosen == "" {
		chosen, err = runner.ChooseFormat(ctx, nil)
		if err != nil {
			return err
		}
	}
	return exportForm(ctx, session.Form(), chosen, *out, logger, stdout, stderr)
}

func loadInput(ctx context.Context, path string, common commonFlags) (model.FormData, error) {
	if path == "" {
		return model.FormData{}, errors.New("-input is required")
	}
	form, err := consentbuilder.LoadForm(ctx, path)
	if err != nil {
		return model.FormData{}, err
	}
	return common.applyLanguage(form)
}

func exportForm(ctx context.Context, form model.FormData, format, dir string, logger *slog.Logger, stdout, stderr io.Writer) error {
	exp, err := export.New(
		export.WithSaver(export.DirSaver{Dir: dir}),
		export.WithLogger(logger),
		export.WithNotifier(export.WriterNotifier{Out: stdout, Err: stderr}),
	)
	if err != nil {
		return err
	}
	result, err := exp.Export(ctx, form, format)
	if err != nil {
		logger.Debug("export failed", "error", err)
		return errNotified
	}
	fmt.Fprintln(stdout, result.Location)
	return nil
}

// errNotified marks export failures the notifier has already printed.
var errNotified = errors.New("already reported")
