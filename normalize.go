package spellout

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultMaxIntegerDigits bounds the canonical integer part. The bound
	// keeps group expansion and scale-table indexing finite; inputs at the
	// bound succeed, longer ones are rejected.
	DefaultMaxIntegerDigits = 66
	// DefaultMaxFractionDigits bounds the rendered fraction length.
	DefaultMaxFractionDigits = 11
)

var numberPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParseNumber canonicalizes any supported input into a Number using the
// default digit limits. Supported inputs: all machine integer types, floats,
// *big.Int, digit strings (ASCII, Persian, or Arabic-Indic digits, optionally
// with ",", space, "-", "_" separators and a leading sign), and Number itself.
func ParseNumber(value any) (Number, error) {
	return parseInput(value, DefaultMaxIntegerDigits)
}

func parseInput(value any, maxIntegerDigits int) (Number, error) {
	switch v := value.(type) {
	case Number:
		return validateCanonical(v, maxIntegerDigits)
	case string:
		return parseDigitString(v, maxIntegerDigits)
	case *big.Int:
		if v == nil {
			return Number{}, fmt.Errorf("spellout: nil *big.Int: %w", ErrInvalidFormat)
		}
		return parseDigitString(v.String(), maxIntegerDigits)
	case int:
		return parseDigitString(strconv.FormatInt(int64(v), 10), maxIntegerDigits)
	case int8:
		return parseDigitString(strconv.FormatInt(int64(v), 10), maxIntegerDigits)
	case int16:
		return parseDigitString(strconv.FormatInt(int64(v), 10), maxIntegerDigits)
	case int32:
		return parseDigitString(strconv.FormatInt(int64(v), 10), maxIntegerDigits)
	case int64:
		return parseDigitString(strconv.FormatInt(v, 10), maxIntegerDigits)
	case uint:
		return parseDigitString(strconv.FormatUint(uint64(v), 10), maxIntegerDigits)
	case uint8:
		return parseDigitString(strconv.FormatUint(uint64(v), 10), maxIntegerDigits)
	case uint16:
		return parseDigitString(strconv.FormatUint(uint64(v), 10), maxIntegerDigits)
	case uint32:
		return parseDigitString(strconv.FormatUint(uint64(v), 10), maxIntegerDigits)
	case uint64:
		return parseDigitString(strconv.FormatUint(v, 10), maxIntegerDigits)
	case float32:
		return parseDigitString(strconv.FormatFloat(float64(v), 'f', -1, 32), maxIntegerDigits)
	case float64:
		return parseDigitString(strconv.FormatFloat(v, 'f', -1, 64), maxIntegerDigits)
	default:
		return Number{}, fmt.Errorf("spellout: unsupported input type %T: %w", value, ErrInvalidFormat)
	}
}

func parseDigitString(raw string, maxIntegerDigits int) (Number, error) {
	s := foldDigits(strings.TrimSpace(raw))

	negative := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			negative = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}

	s = stripSeparators(s)

	if !numberPattern.MatchString(s) {
		return Number{}, fmt.Errorf("spellout: %q: %w", raw, ErrInvalidFormat)
	}

	integer, fraction, hasDot := strings.Cut(s, ".")
	if !hasDot {
		// The pattern already guarantees digits; this guards pathological
		// values that strconv-compatible callers may still hand over.
		if _, ok := new(big.Int).SetString(integer, 10); !ok {
			return Number{}, fmt.Errorf("spellout: %q: %w", raw, ErrNumberTooLarge)
		}
	}

	integer = trimLeadingZeros(integer)
	if len(integer) > maxIntegerDigits {
		return Number{}, fmt.Errorf("spellout: %d integer digits exceed the %d digit cap: %w",
			len(integer), maxIntegerDigits, ErrOutOfRange)
	}

	return Number{Negative: negative, Integer: integer, Fraction: fraction}, nil
}

// validateCanonical holds a caller-built Number to the same rules the string
// path enforces: digit-only parts, a non-empty integer, no redundant leading
// zeros, and the integer digit cap.
func validateCanonical(n Number, maxIntegerDigits int) (Number, error) {
	if n.Integer == "" || !digitsOnly(n.Integer) || !digitsOnly(n.Fraction) {
		return Number{}, fmt.Errorf("spellout: canonical number %q/%q: %w",
			n.Integer, n.Fraction, ErrInvalidFormat)
	}
	n.Integer = trimLeadingZeros(n.Integer)
	if len(n.Integer) > maxIntegerDigits {
		return Number{}, fmt.Errorf("spellout: %d integer digits exceed the %d digit cap: %w",
			len(n.Integer), maxIntegerDigits, ErrOutOfRange)
	}
	return n, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// stripSeparators removes cosmetic digit separators. The leading sign has
// already been consumed, so a remaining "-" carries no meaning.
func stripSeparators(s string) string {
	if !strings.ContainsAny(s, ",- _") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ',', '-', ' ', '_':
			continue
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// foldDigits maps Persian and Arabic-Indic digits onto ASCII so digit strings
// from either script take the same parse path.
func foldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹': // Extended Arabic-Indic (Persian)
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩': // Arabic-Indic
			return '0' + (r - '٠')
		default:
			return r
		}
	}, s)
}

func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// group is one fixed-width slice of the integer part, most significant first.
type group struct {
	digits string
	value  int
}

// splitGroups left-pads the digit string to a multiple of width and slices it
// into groups, most significant first.
func splitGroups(digits string, width int) []group {
	if digits == "" {
		return nil
	}
	if pad := (width - len(digits)%width) % width; pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	groups := make([]group, 0, len(digits)/width)
	for i := 0; i < len(digits); i += width {
		chunk := digits[i : i+width]
		value, _ := strconv.Atoi(chunk)
		groups = append(groups, group{digits: chunk, value: value})
	}
	return groups
}
