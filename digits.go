package spellout

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Digits renders the canonical digits of value in the converter's locale,
// with group and decimal separators and, where the locale writes them,
// native digits. It is the display-digit counterpart of Number and accepts
// the same inputs.
func (c *Converter) Digits(value any) (string, error) {
	n, err := parseInput(value, c.maxIntegerDigits)
	if err != nil {
		return "", wrapInputError(err)
	}
	return formatDigits(c.speller.Code(), n), nil
}

// FormatDigits renders a canonical number as display digits for the locale.
func FormatDigits(locale string, value any) (string, error) {
	n, err := ParseNumber(value)
	if err != nil {
		return "", wrapInputError(err)
	}
	return formatDigits(locale, n), nil
}

// formatDigits applies the catalog digit shape when the locale carries one;
// locales outside the catalog fall back to golang.org/x/text rendering.
func formatDigits(locale string, n Number) string {
	if info, ok := DescribeLocale(locale); ok {
		return formatDigitsWithShape(n, info.Digits)
	}
	return formatDigitsXText(locale, n)
}

// formatDigitsWithShape inserts the shape's separators by hand, so inputs at
// the full integer digit cap render exactly.
func formatDigitsWithShape(n Number, shape DigitShape) string {
	var b strings.Builder
	if n.Negative && !n.IsZero() {
		b.WriteByte('-')
	}

	for i := 0; i < len(n.Integer); i++ {
		if i > 0 && (len(n.Integer)-i)%3 == 0 {
			b.WriteString(shape.GroupSeparator)
		}
		b.WriteByte(n.Integer[i])
	}

	if n.Fraction != "" {
		sep := shape.DecimalSeparator
		if sep == "" {
			sep = "."
		}
		b.WriteString(sep)
		b.WriteString(n.Fraction)
	}

	out := b.String()
	if shape.NativeDigits != "" {
		out = mapToNativeDigits(out, shape.NativeDigits)
	}
	return out
}

// formatDigitsXText renders through a message printer for locales the catalog
// does not know. Values past exact machine representation keep canonical
// ASCII digits with a plain decimal point rather than rounding.
func formatDigitsXText(locale string, n Number) string {
	printer := message.NewPrinter(language.Make(locale))

	if n.Fraction == "" {
		if v, err := strconv.ParseInt(n.Integer, 10, 64); err == nil {
			if n.Negative {
				v = -v
			}
			return printer.Sprintf("%v", number.Decimal(v))
		}
		return formatDigitsWithShape(n, DigitShape{})
	}

	plain := n.Integer + "." + n.Fraction
	if f, err := strconv.ParseFloat(plain, 64); err == nil {
		if strconv.FormatFloat(f, 'f', -1, 64) == plain {
			if n.Negative {
				f = -f
			}
			return printer.Sprintf("%v", number.Decimal(f,
				number.MinFractionDigits(len(n.Fraction)),
				number.MaxFractionDigits(len(n.Fraction)),
			))
		}
	}
	return formatDigitsWithShape(n, DigitShape{})
}

func mapToNativeDigits(s, digits string) string {
	native := []rune(digits)
	if len(native) != 10 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return native[r-'0']
		}
		return r
	}, s)
}
