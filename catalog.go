package spellout

import "sort"

// LocaleInfo is the immutable metadata published for one built-in locale:
// the discovery surface behind locale listings and the digit-display rules
// behind FormatDigits.
type LocaleInfo struct {
	// Code is the BCP 47 code the speller registers under.
	Code string
	// Name is the English display name.
	Name string
	// NativeName is the locale's own name for itself.
	NativeName string
	// GroupWidth is the word-conversion grouping width, 3 or 4.
	GroupWidth int
	// NativeCalendar is the month-name table dates default to.
	NativeCalendar Calendar
	// Calendars lists every month-name table the locale carries.
	Calendars []Calendar
	// Digits is how the locale displays numerals as digits.
	Digits DigitShape
}

// DigitShape describes a locale's numeral display: the separators placed
// between digit groups and before the fraction, and an optional native digit
// set replacing ASCII digits.
type DigitShape struct {
	// GroupSeparator sits between three-digit groups of the integer part.
	GroupSeparator string
	// DecimalSeparator sits between the integer and fractional parts.
	DecimalSeparator string
	// NativeDigits holds ten runes indexed by digit value; empty keeps ASCII.
	NativeDigits string
}

// localeInfoData is the fixed metadata for the built-in spellers. Display
// separators follow each locale's conventional digit writing, which is
// independent of the word-conversion grouping width.
var localeInfoData = map[string]LocaleInfo{
	"en": {
		Code:           "en",
		Name:           "English",
		NativeName:     "English",
		GroupWidth:     3,
		NativeCalendar: CalendarGregorian,
		Calendars:      []Calendar{CalendarGregorian},
		Digits:         DigitShape{GroupSeparator: ",", DecimalSeparator: "."},
	},
	"de": {
		Code:           "de",
		Name:           "German",
		NativeName:     "Deutsch",
		GroupWidth:     3,
		NativeCalendar: CalendarGregorian,
		Calendars:      []Calendar{CalendarGregorian},
		Digits:         DigitShape{GroupSeparator: ".", DecimalSeparator: ","},
	},
	"fr": {
		Code:           "fr",
		Name:           "French",
		NativeName:     "français",
		GroupWidth:     3,
		NativeCalendar: CalendarGregorian,
		Calendars:      []Calendar{CalendarGregorian},
		Digits:         DigitShape{GroupSeparator: " ", DecimalSeparator: ","},
	},
	"es": {
		Code:           "es",
		Name:           "Spanish",
		NativeName:     "español",
		GroupWidth:     3,
		NativeCalendar: CalendarGregorian,
		Calendars:      []Calendar{CalendarGregorian},
		Digits:         DigitShape{GroupSeparator: ".", DecimalSeparator: ","},
	},
	"ru": {
		Code:           "ru",
		Name:           "Russian",
		NativeName:     "русский",
		GroupWidth:     3,
		NativeCalendar: CalendarGregorian,
		Calendars:      []Calendar{CalendarGregorian},
		Digits:         DigitShape{GroupSeparator: " ", DecimalSeparator: ","},
	},
	"fa": {
		Code:           "fa",
		Name:           "Persian",
		NativeName:     "فارسی",
		GroupWidth:     3,
		NativeCalendar: CalendarJalali,
		Calendars:      []Calendar{CalendarJalali, CalendarGregorian},
		Digits: DigitShape{
			GroupSeparator:   "٬",
			DecimalSeparator: "٫",
			NativeDigits:     "۰۱۲۳۴۵۶۷۸۹",
		},
	},
	"zh": {
		Code:           "zh",
		Name:           "Chinese",
		NativeName:     "中文",
		GroupWidth:     4,
		NativeCalendar: CalendarGregorian,
		Calendars:      []Calendar{CalendarGregorian},
		Digits:         DigitShape{GroupSeparator: ",", DecimalSeparator: "."},
	},
	"ja": {
		Code:           "ja",
		Name:           "Japanese",
		NativeName:     "日本語",
		GroupWidth:     4,
		NativeCalendar: CalendarGregorian,
		Calendars:      []Calendar{CalendarGregorian},
		Digits:         DigitShape{GroupSeparator: ",", DecimalSeparator: "."},
	},
}

// DescribeLocale returns the metadata for a built-in locale. Lookups walk the
// same fallback chain the registry uses, so "de-AT" describes "de". The
// second result is false for locales with no built-in metadata.
func DescribeLocale(locale string) (LocaleInfo, bool) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return LocaleInfo{}, false
	}

	if info, ok := localeInfoData[normalized]; ok {
		return cloneLocaleInfo(info), true
	}
	for _, parent := range localeParentChain(normalized) {
		if info, ok := localeInfoData[parent]; ok {
			return cloneLocaleInfo(info), true
		}
	}

	return LocaleInfo{}, false
}

// DescribeLocales returns the metadata for every built-in locale, sorted by
// code.
func DescribeLocales() []LocaleInfo {
	codes := make([]string, 0, len(localeInfoData))
	for code := range localeInfoData {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	infos := make([]LocaleInfo, 0, len(codes))
	for _, code := range codes {
		infos = append(infos, cloneLocaleInfo(localeInfoData[code]))
	}
	return infos
}

// HasCalendar reports whether the locale carries a month-name table for the
// calendar. CalendarDefault always resolves to the native table.
func (i LocaleInfo) HasCalendar(calendar Calendar) bool {
	if calendar == CalendarDefault {
		return true
	}
	for _, c := range i.Calendars {
		if c == calendar {
			return true
		}
	}
	return false
}

func cloneLocaleInfo(info LocaleInfo) LocaleInfo {
	info.Calendars = append([]Calendar(nil), info.Calendars...)
	return info
}
