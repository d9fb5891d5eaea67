package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-consentbuilder/pkg/catalog"
)

// Decode parses a form from YAML or JSON. An omitted language selects the
// default catalog language; the language code is lower-cased but otherwise
// left for the caller to check.
func Decode(data []byte) (FormData, error) {
	form := FormData{}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewFormData(), nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&form); err != nil && !errors.Is(err, io.EOF) {
		return FormData{}, fmt.Errorf("model: decode form: %w", err)
	}

	form.Language = catalog.Language(strings.ToLower(strings.TrimSpace(string(form.Language))))
	if form.Language == "" {
		form.Language = catalog.Default().DefaultLanguage()
	}
	return form, nil
}

// LoadFile reads and decodes a form file from disk.
func LoadFile(path string) (FormData, error) {
	if strings.TrimSpace(path) == "" {
		return FormData{}, errors.New("model: form file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return FormData{}, fmt.Errorf("model: read form file: %w", err)
	}
	return Decode(data)
}
