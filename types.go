package spellout

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Number is the canonical form every input reduces to before conversion:
// an unsigned integer digit string, an optional fraction digit string, and
// a sign flag. Integer never contains separators or redundant leading zeros.
type Number struct {
	Negative bool
	Integer  string
	Fraction string
}

// IsZero reports whether both the integer and fractional parts are zero.
func (n Number) IsZero() bool {
	return allZeroDigits(n.Integer) && allZeroDigits(n.Fraction)
}

func allZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// Date carries the parsed components of a YYYY/MM/DD or YYYY-MM-DD input.
// Month is validated against 1-12 before a speller sees it; Year and Day are
// spelled through the numeral engine as-is.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Clock carries the parsed components of an HH:mm input.
type Clock struct {
	Hour   int
	Minute int
}

// Calendar selects which month-name table a speller uses. It switches tables
// only; no calendar arithmetic is performed.
type Calendar string

const (
	// CalendarDefault resolves to the speller's native calendar.
	CalendarDefault Calendar = ""
	// CalendarGregorian selects the Gregorian month-name table.
	CalendarGregorian Calendar = "gregorian"
	// CalendarJalali selects the Jalali (Solar Hijri) month-name table.
	CalendarJalali Calendar = "jalali"
)

// Lexicon holds the five word tables a locale spells numbers from.
//
// Units has 10 entries (0-9). Teens has 11 entries covering 10 through 20
// inclusive. Tens is digit-indexed with entries 2-9 used (20-90). Hundreds is
// digit-indexed with entries 1-9 used; locales that build hundreds
// algorithmically leave it empty. Scales is indexed by group position, entry 0
// always the empty string, and is sized so no grouping of a maximum-length
// input can index past its end.
type Lexicon struct {
	Units    []string `json:"units,omitempty" yaml:"units,omitempty"`
	Teens    []string `json:"teens,omitempty" yaml:"teens,omitempty"`
	Tens     []string `json:"tens,omitempty" yaml:"tens,omitempty"`
	Hundreds []string `json:"hundreds,omitempty" yaml:"hundreds,omitempty"`
	Scales   []string `json:"scales,omitempty" yaml:"scales,omitempty"`
}

// Clone returns a deep copy of the lexicon.
func (l *Lexicon) Clone() *Lexicon {
	if l == nil {
		return nil
	}
	return &Lexicon{
		Units:    append([]string(nil), l.Units...),
		Teens:    append([]string(nil), l.Teens...),
		Tens:     append([]string(nil), l.Tens...),
		Hundreds: append([]string(nil), l.Hundreds...),
		Scales:   append([]string(nil), l.Scales...),
	}
}

// Merge layers an override on top of l, table by table. An override table that
// is nil or empty leaves the base table in place; a partial override never
// blanks unspecified tables. Neither receiver nor override is mutated.
func (l *Lexicon) Merge(override *Lexicon) *Lexicon {
	if l == nil {
		return override.Clone()
	}
	merged := l.Clone()
	if override == nil {
		return merged
	}
	if len(override.Units) > 0 {
		merged.Units = append([]string(nil), override.Units...)
	}
	if len(override.Teens) > 0 {
		merged.Teens = append([]string(nil), override.Teens...)
	}
	if len(override.Tens) > 0 {
		merged.Tens = append([]string(nil), override.Tens...)
	}
	if len(override.Hundreds) > 0 {
		merged.Hundreds = append([]string(nil), override.Hundreds...)
	}
	if len(override.Scales) > 0 {
		merged.Scales = append([]string(nil), override.Scales...)
	}
	return merged
}

// Validate checks table shapes for caller-supplied lexicons. Absent tables are
// fine; present tables must have the documented lengths so digit-indexed
// lookups stay in bounds.
func (l Lexicon) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Units, validation.Length(10, 10)),
		validation.Field(&l.Teens, validation.Length(11, 11)),
		validation.Field(&l.Tens, validation.Length(10, 10)),
		validation.Field(&l.Hundreds, validation.Length(10, 10)),
		validation.Field(&l.Scales, validation.By(validateScales)),
	)
}

func validateScales(value any) error {
	scales, ok := value.([]string)
	if !ok || len(scales) == 0 {
		return nil
	}
	if strings.TrimSpace(scales[0]) != "" {
		return validation.NewError("spellout.lexicon.scales_zero", "scale entry 0 must be empty")
	}
	return nil
}
