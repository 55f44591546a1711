package spellout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeOverrideFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderJSONAndYAML(t *testing.T) {
	jsonPath := writeOverrideFile(t, "overrides.json", `{
		"en": {"zero_word": "nought", "separator": ", "},
		"en-GB": {"negative_word": "minus"}
	}`)
	yamlPath := writeOverrideFile(t, "overrides.yaml", `
en:
  zero_word: "zilch"
fa:
  time_prefix: ""
`)

	loader := NewFileLoader(jsonPath, yamlPath)
	overrides, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(overrides) != 3 {
		t.Fatalf("expected 3 locales, got %d: %v", len(overrides), overrides)
	}

	en := overrides["en"]
	if en.ZeroWord == nil || *en.ZeroWord != "zilch" {
		t.Fatalf("later file should win the zero word, got %v", en.ZeroWord)
	}
	if en.Separator == nil || *en.Separator != ", " {
		t.Fatalf("fields untouched by later files must survive, got %v", en.Separator)
	}

	fa := overrides["fa"]
	if fa.TimePrefix == nil || *fa.TimePrefix != "" {
		t.Fatal("an explicitly empty time prefix must stay set")
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	path := writeOverrideFile(t, "overrides.txt", "en: {}")

	if _, err := NewFileLoader(path).Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	if _, err := NewFileLoader(filepath.Join(t.TempDir(), "absent.json")).Load(); err == nil {
		t.Fatal("expected error for missing file")
	}

	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error for empty path list")
	}
}

func TestFileLoaderValidation(t *testing.T) {
	badLexicon := writeOverrideFile(t, "bad.yaml", `
en:
  lexicon:
    units: ["only", "two"]
`)
	if _, err := NewFileLoader(badLexicon).Load(); err == nil {
		t.Fatal("expected validation error for short units table")
	}

	badCalendar := writeOverrideFile(t, "calendar.json", `{"fa": {"calendar": "lunar"}}`)
	if _, err := NewFileLoader(badCalendar).Load(); err == nil {
		t.Fatal("expected validation error for unknown calendar")
	}

	badCap := writeOverrideFile(t, "cap.json", `{"en": {"max_fraction_digits": 0}}`)
	if _, err := NewFileLoader(badCap).Load(); err == nil {
		t.Fatal("expected validation error for non-positive fraction cap")
	}
}

func TestFileLoaderApply(t *testing.T) {
	path := writeOverrideFile(t, "overrides.yaml", `
en:
  zero_word: "nought"
en-GB:
  negative_word: "negative"
  lexicon:
    scales: ["", "thousand", "million", "milliard"]
`)

	registry := NewRegistry(WithRegistrySpellers(builtinSpellers()...))
	if err := NewFileLoader(path).Apply(registry); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	conv, err := New("en", WithRegistry(registry))
	if err != nil {
		t.Fatalf("New(en): %v", err)
	}
	got, err := conv.Number(0)
	if err != nil || got != "nought" {
		t.Fatalf("Number(0) = %q,%v want nought", got, err)
	}

	variant, err := New("en-GB", WithRegistry(registry))
	if err != nil {
		t.Fatalf("New(en-GB): %v", err)
	}
	got, err = variant.Number("-2000000000")
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	if got != "negative two milliard" {
		t.Fatalf("variant overrides not applied: %q", got)
	}

	// The variant layers on the already-overridden base resolved through the
	// fallback chain.
	got, err = variant.Number(0)
	if err != nil || got != "nought" {
		t.Fatalf("variant should inherit the base override, got %q,%v", got, err)
	}
}

func TestApplyOverridesUnknownLocale(t *testing.T) {
	registry := NewRegistry(WithRegistrySpellers(&germanSpeller{}))

	err := ApplyOverrides(registry, Overrides{"pt": {}})
	if !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("ApplyOverrides err = %v want %v", err, ErrUnknownLocale)
	}

	if err := ApplyOverrides(nil, Overrides{}); err == nil {
		t.Fatal("expected error for nil registry")
	}
}
