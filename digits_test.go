package spellout

import (
	"strings"
	"testing"
)

func TestFormatDigits(t *testing.T) {
	cases := []struct {
		locale string
		value  any
		want   string
	}{
		{"en", 1234567, "1,234,567"},
		{"en", -1234567, "-1,234,567"},
		{"en", 999, "999"},
		{"en", "-0", "0"},
		{"de", "1234.5", "1.234,5"},
		{"fa", "12345.67", "۱۲٬۳۴۵٫۶۷"},
		{"fa", "۱۲۳۴۵", "۱۲٬۳۴۵"},
		// Digit display groups by three even where words group by four.
		{"zh", 12345678, "12,345,678"},
	}
	for _, tc := range cases {
		got, err := FormatDigits(tc.locale, tc.value)
		if err != nil {
			t.Fatalf("FormatDigits(%q, %v): %v", tc.locale, tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("FormatDigits(%q, %v) = %q, want %q", tc.locale, tc.value, got, tc.want)
		}
	}
}

func TestFormatDigitsSpaceSeparators(t *testing.T) {
	// French and Russian group with spaces; build the expected strings from
	// the published shapes rather than repeating the separators here.
	for _, locale := range []string{"fr", "ru"} {
		info, ok := DescribeLocale(locale)
		if !ok {
			t.Fatalf("%s should have metadata", locale)
		}
		got, err := FormatDigits(locale, 1234567)
		if err != nil {
			t.Fatal(err)
		}
		want := "1" + info.Digits.GroupSeparator + "234" + info.Digits.GroupSeparator + "567"
		if got != want {
			t.Fatalf("%s: got %q, want %q", locale, got, want)
		}
	}
}

func TestFormatDigitsFullWidth(t *testing.T) {
	// Sixty-six digits render exactly, with no float rounding on the way.
	input := strings.Repeat("9", 66)
	got, err := FormatDigits("en", input)
	if err != nil {
		t.Fatal(err)
	}
	groups := make([]string, 22)
	for i := range groups {
		groups[i] = "999"
	}
	if want := strings.Join(groups, ","); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatDigitsUncataloged(t *testing.T) {
	// Locales without catalog metadata go through x/text; values past exact
	// machine representation keep their canonical digits unseparated.
	got, err := FormatDigits("pt", 42)
	if err != nil {
		t.Fatal(err)
	}
	if got != "42" {
		t.Fatalf("got %q", got)
	}

	big := strings.Repeat("1", 30)
	got, err = FormatDigits("pt", big)
	if err != nil {
		t.Fatal(err)
	}
	if got != big {
		t.Fatalf("got %q, want %q", got, big)
	}

	long := "0.1234567890123456789"
	got, err = FormatDigits("pt", long)
	if err != nil {
		t.Fatal(err)
	}
	if got != long {
		t.Fatalf("got %q, want %q", got, long)
	}
}

func TestConverterDigits(t *testing.T) {
	conv, err := New("fa")
	if err != nil {
		t.Fatal(err)
	}
	got, err := conv.Digits(-12345)
	if err != nil {
		t.Fatal(err)
	}
	if got != "-۱۲٬۳۴۵" {
		t.Fatalf("got %q", got)
	}
}
