package spellout

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  Date
	}{
		{"2023-04-05", Date{Year: 2023, Month: 4, Day: 5}},
		{"2023/04/05", Date{Year: 2023, Month: 4, Day: 5}},
		{"2023-4-5", Date{Year: 2023, Month: 4, Day: 5}},
		{" 2023-04-05 ", Date{Year: 2023, Month: 4, Day: 5}},
		{"۱۴۰۲/۰۱/۱۵", Date{Year: 1402, Month: 1, Day: 15}},
	}
	for _, tc := range cases {
		got, err := parseDate(tc.input)
		if err != nil {
			t.Fatalf("parseDate(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("parseDate(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseDateErrors(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"2023-04", ErrInvalidFormat},
		{"2023-04-05-06", ErrInvalidFormat},
		{"2023/04-05", ErrInvalidFormat},
		{"20a3-04-05", ErrInvalidFormat},
		{"2023--04-05", ErrInvalidFormat},
		{"2023-13-01", ErrInvalidMonth},
		{"2023-00-01", ErrInvalidMonth},
	}
	for _, tc := range cases {
		if _, err := parseDate(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("parseDate(%q) = %v, want %v", tc.input, err, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  Clock
	}{
		{"18:00", Clock{Hour: 18, Minute: 0}},
		{"7:05", Clock{Hour: 7, Minute: 5}},
		{"00:00", Clock{}},
		{"۱۷:۳۰", Clock{Hour: 17, Minute: 30}},
	}
	for _, tc := range cases {
		got, err := parseClock(tc.input)
		if err != nil {
			t.Fatalf("parseClock(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("parseClock(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseClockErrors(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"1200", ErrInvalidFormat},
		{"12:00:00", ErrInvalidFormat},
		{"12:3a", ErrInvalidFormat},
		{"-1:30", ErrInvalidFormat},
		{"24:00", ErrInvalidHour},
		{"12:60", ErrInvalidMinute},
	}
	for _, tc := range cases {
		if _, err := parseClock(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("parseClock(%q) = %v, want %v", tc.input, err, tc.want)
		}
	}
}
