package spellout

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDate splits a YYYY/MM/DD or YYYY-MM-DD value into its components.
// Exactly three numeric fields are required; only the month is range-checked,
// matching the engine's contract of spelling rather than validating dates.
func parseDate(value string) (Date, error) {
	folded := foldDigits(strings.TrimSpace(value))

	separator := "-"
	if strings.Contains(folded, "/") {
		separator = "/"
	}

	fields := strings.Split(folded, separator)
	if len(fields) != 3 {
		return Date{}, fmt.Errorf("spellout: date %q needs year, month and day: %w", value, ErrInvalidFormat)
	}

	year, err := atoiField(fields[0])
	if err != nil {
		return Date{}, fmt.Errorf("spellout: date %q: %w", value, ErrInvalidFormat)
	}
	month, err := atoiField(fields[1])
	if err != nil {
		return Date{}, fmt.Errorf("spellout: date %q: %w", value, ErrInvalidFormat)
	}
	day, err := atoiField(fields[2])
	if err != nil {
		return Date{}, fmt.Errorf("spellout: date %q: %w", value, ErrInvalidFormat)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("spellout: month %d: %w", month, ErrInvalidMonth)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// parseClock splits an HH:mm value and range-checks both components.
func parseClock(value string) (Clock, error) {
	folded := foldDigits(strings.TrimSpace(value))

	fields := strings.Split(folded, ":")
	if len(fields) != 2 {
		return Clock{}, fmt.Errorf("spellout: time %q needs hour and minute: %w", value, ErrInvalidFormat)
	}

	hour, err := atoiField(fields[0])
	if err != nil {
		return Clock{}, fmt.Errorf("spellout: time %q: %w", value, ErrInvalidFormat)
	}
	minute, err := atoiField(fields[1])
	if err != nil {
		return Clock{}, fmt.Errorf("spellout: time %q: %w", value, ErrInvalidFormat)
	}

	if hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("spellout: hour %d: %w", hour, ErrInvalidHour)
	}
	if minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("spellout: minute %d: %w", minute, ErrInvalidMinute)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// atoiField parses a bare digit field; signs and spaces are format errors
// here, unlike in numeral input.
func atoiField(field string) (int, error) {
	if field == "" {
		return 0, ErrInvalidFormat
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, ErrInvalidFormat
		}
	}
	return strconv.Atoi(field)
}

// monthName picks the month entry from the table matching the selected
// calendar, falling back to the speller's native table when the requested
// calendar is not carried.
func monthName(tables map[Calendar][]string, native, selected Calendar, month int) string {
	calendar := selected
	if calendar == CalendarDefault {
		calendar = native
	}
	table, ok := tables[calendar]
	if !ok {
		table = tables[native]
	}
	return table[month-1]
}

// spellInt spells a small non-negative integer for date and clock templates.
func spellInt(v int, g grammar, r *Rules) string {
	if v == 0 {
		return r.ZeroWord
	}
	return spellCardinal(strconv.Itoa(v), g, r)
}

// clockPrefix renders the resolved time prefix with a single joining
// separator, or nothing when no prefix is configured.
func clockPrefix(prefix, join string) string {
	if prefix == "" {
		return ""
	}
	return strings.TrimRight(prefix, " ") + join
}
