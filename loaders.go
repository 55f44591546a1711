package spellout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Overrides maps locale codes to the customizations a loader read for them.
type Overrides map[string]LocaleOverride

// LocaleOverride is the per-locale customization payload of an override
// file. Pointer fields keep "absent" distinct from deliberately empty
// values, so a file can force an empty separator without blanking fields it
// never mentions.
type LocaleOverride struct {
	Separator        *string  `json:"separator,omitempty" yaml:"separator,omitempty"`
	NegativeWord     *string  `json:"negative_word,omitempty" yaml:"negative_word,omitempty"`
	ZeroWord         *string  `json:"zero_word,omitempty" yaml:"zero_word,omitempty"`
	EmitNegative     *bool    `json:"emit_negative,omitempty" yaml:"emit_negative,omitempty"`
	TimePrefix       *string  `json:"time_prefix,omitempty" yaml:"time_prefix,omitempty"`
	Calendar         *string  `json:"calendar,omitempty" yaml:"calendar,omitempty"`
	FractionSuffixes []string `json:"fraction_suffixes,omitempty" yaml:"fraction_suffixes,omitempty"`
	MaxFraction      *int     `json:"max_fraction_digits,omitempty" yaml:"max_fraction_digits,omitempty"`
	Lexicon          *Lexicon `json:"lexicon,omitempty" yaml:"lexicon,omitempty"`
}

// Validate checks the table shapes of an embedded lexicon and that the
// calendar names one of the known tables.
func (o LocaleOverride) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Lexicon, validation.By(validateOverrideLexicon)),
		validation.Field(&o.Calendar, validation.By(validateCalendarName)),
		validation.Field(&o.MaxFraction, validation.By(validateFractionCap)),
	)
}

func validateOverrideLexicon(value any) error {
	switch lex := value.(type) {
	case *Lexicon:
		if lex == nil {
			return nil
		}
		return lex.Validate()
	case Lexicon:
		return lex.Validate()
	}
	return nil
}

func validateFractionCap(value any) error {
	limit, ok := value.(*int)
	if !ok || limit == nil {
		return nil
	}
	if *limit <= 0 {
		return validation.NewError("spellout.override.max_fraction_digits",
			fmt.Sprintf("fraction cap must be positive, got %d", *limit))
	}
	return nil
}

func validateCalendarName(value any) error {
	var name string
	switch v := value.(type) {
	case *string:
		if v == nil {
			return nil
		}
		name = *v
	case string:
		name = v
	default:
		return nil
	}

	switch Calendar(name) {
	case CalendarDefault, CalendarGregorian, CalendarJalali:
		return nil
	}
	return validation.NewError("spellout.override.calendar", fmt.Sprintf("unknown calendar %q", name))
}

// Options converts the override payload to conversion options.
func (o LocaleOverride) Options() []ConvertOption {
	var opts []ConvertOption
	if o.Separator != nil {
		opts = append(opts, WithSeparator(*o.Separator))
	}
	if o.Lexicon != nil {
		opts = append(opts, WithLexicon(o.Lexicon))
	}
	if len(o.FractionSuffixes) > 0 {
		opts = append(opts, WithFractionSuffixes(o.FractionSuffixes...))
	}
	if o.NegativeWord != nil {
		opts = append(opts, WithNegativeWord(*o.NegativeWord))
	}
	if o.ZeroWord != nil {
		opts = append(opts, WithZeroWord(*o.ZeroWord))
	}
	if o.EmitNegative != nil {
		enabled := *o.EmitNegative
		opts = append(opts, func(c *callOptions) {
			c.emitNegative = &enabled
		})
	}
	if o.TimePrefix != nil {
		opts = append(opts, WithTimePrefix(*o.TimePrefix))
	}
	if o.MaxFraction != nil {
		opts = append(opts, WithMaxFractionDigits(*o.MaxFraction))
	}
	if o.Calendar != nil {
		opts = append(opts, WithCalendar(Calendar(*o.Calendar)))
	}
	return opts
}

// FileLoader reads locale overrides from JSON or YAML files. Later files win
// field by field within a locale.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load reads, decodes, merges, and validates every configured file.
func (l *FileLoader) Load() (Overrides, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("spellout: no loader paths configured")
	}

	merged := make(Overrides)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("spellout: read %s: %w", path, err)
		}

		src, err := decodeOverrideFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("spellout: decode %s: %w", path, err)
		}
		mergeOverrides(merged, src)
	}

	for locale, override := range merged {
		if err := override.Validate(); err != nil {
			return nil, fmt.Errorf("spellout: overrides for %s: %w", locale, err)
		}
	}

	return merged, nil
}

// Apply loads the configured files and layers each override under the
// matching registry speller, re-registering the wrapped speller under the
// override's locale code.
func (l *FileLoader) Apply(registry *Registry) error {
	overrides, err := l.Load()
	if err != nil {
		return err
	}
	return ApplyOverrides(registry, overrides)
}

// ApplyOverrides wires loaded overrides into a registry. An override for a
// locale with no resolvable speller is an error; an override for a variant
// such as "en-GB" wraps the fallback-resolved base and registers the variant.
func ApplyOverrides(registry *Registry, overrides Overrides) error {
	if registry == nil {
		return errors.New("spellout: nil registry")
	}

	locales := make([]string, 0, len(overrides))
	for locale := range overrides {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		sp, err := registry.Resolve(locale)
		if err != nil {
			return err
		}
		registry.Register(WrapSpellerAs(locale, sp, overrides[locale].Options()...))
	}
	return nil
}

func decodeOverrideFile(path string, data []byte) (Overrides, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		var overrides Overrides
		if err := json.Unmarshal(data, &overrides); err != nil {
			return nil, err
		}
		return overrides, nil
	case ".yaml", ".yml":
		var overrides Overrides
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
		return overrides, nil
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func mergeOverrides(dst, src Overrides) {
	for locale, override := range src {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		existing, ok := dst[normalized]
		if !ok {
			dst[normalized] = override
			continue
		}
		if override.Separator != nil {
			existing.Separator = override.Separator
		}
		if override.NegativeWord != nil {
			existing.NegativeWord = override.NegativeWord
		}
		if override.ZeroWord != nil {
			existing.ZeroWord = override.ZeroWord
		}
		if override.EmitNegative != nil {
			existing.EmitNegative = override.EmitNegative
		}
		if override.TimePrefix != nil {
			existing.TimePrefix = override.TimePrefix
		}
		if override.Calendar != nil {
			existing.Calendar = override.Calendar
		}
		if override.MaxFraction != nil {
			existing.MaxFraction = override.MaxFraction
		}
		if len(override.FractionSuffixes) > 0 {
			existing.FractionSuffixes = append([]string(nil), override.FractionSuffixes...)
		}
		if override.Lexicon != nil {
			existing.Lexicon = existing.Lexicon.Merge(override.Lexicon)
		}
		dst[normalized] = existing
	}
}
