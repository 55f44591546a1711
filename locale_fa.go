package spellout

import (
	"fmt"
	"strings"
)

// persianLexicon alternates -ون and -ارد scale words up to دسیلیارد at the
// 66-digit ceiling. Scale words are invariant; Persian has no plural
// agreement on them.
var persianLexicon = Lexicon{
	Units: []string{
		"صفر", "یک", "دو", "سه", "چهار",
		"پنج", "شش", "هفت", "هشت", "نه",
	},
	Teens: []string{
		"ده", "یازده", "دوازده", "سیزده", "چهارده", "پانزده",
		"شانزده", "هفده", "هجده", "نوزده", "بیست",
	},
	Tens: []string{
		"", "", "بیست", "سی", "چهل",
		"پنجاه", "شصت", "هفتاد", "هشتاد", "نود",
	},
	Hundreds: []string{
		"", "صد", "دویست", "سیصد", "چهارصد",
		"پانصد", "ششصد", "هفتصد", "هشتصد", "نهصد",
	},
	Scales: []string{
		"", "هزار", "میلیون", "میلیارد", "بیلیون",
		"بیلیارد", "تریلیون", "تریلیارد", "کوآدریلیون", "کادریلیارد",
		"کوینتیلیون", "کوانتینیارد", "سکستیلیون", "سکستیلیارد", "سپتیلیون",
		"سپتیلیارد", "اکتیلیون", "اکتیلیارد", "نانیلیون", "نانیلیارد",
		"دسیلیون", "دسیلیارد",
	},
}

// persianFractionSuffixes are the denominator words by fraction length, from
// tenths through hundred-billionths.
var persianFractionSuffixes = []string{
	"دهم", "صدم", "هزارم", "ده‌هزارم", "صدهزارم",
	"میلیونیم", "ده‌میلیونیم", "صدمیلیونیم", "میلیاردیم", "ده‌میلیاردیم",
	"صدمیلیاردیم",
}

// persianMonths carries both calendars: the native Jalali table and the
// Gregorian loanword table.
var persianMonths = map[Calendar][]string{
	CalendarJalali: {
		"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
		"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
	},
	CalendarGregorian: {
		"ژانویه", "فوریه", "مارس", "آوریل", "مه", "ژوئن",
		"ژوئیه", "اوت", "سپتامبر", "اکتبر", "نوامبر", "دسامبر",
	},
}

type persianSpeller struct{}

var _ Speller = (*persianSpeller)(nil)

func (s *persianSpeller) Code() string { return "fa" }

func (s *persianSpeller) Width() int { return 3 }

func (s *persianSpeller) Rules() Rules {
	return Rules{
		Separator:         " و ",
		Lexicon:           &persianLexicon,
		FractionSuffixes:  persianFractionSuffixes,
		NegativeWord:      "منفی",
		ZeroWord:          "صفر",
		EmitNegative:      true,
		TimePrefix:        "ساعت",
		Calendar:          CalendarJalali,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *persianSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *persianSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders "روز ماه سال", the first of the month as "اول". The
// Jalali table is native; the Gregorian table is selected by calendar.
func (s *persianSpeller) SpellDate(d Date, r *Rules) (string, error) {
	day := "اول"
	if d.Day != 1 {
		day = spellInt(d.Day, s, r)
	}
	month := monthName(persianMonths, CalendarJalali, r.Calendar, d.Month)
	return fmt.Sprintf("%s %s %s", day, month, spellInt(d.Year, s, r)), nil
}

// SpellClock renders "ساعت X" with an optional "و Y دقیقه" clause.
func (s *persianSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	out := clockPrefix(r.TimePrefix, " ") + spellInt(c.Hour, s, r)
	if c.Minute == 0 {
		return out, nil
	}
	return out + " و " + spellInt(c.Minute, s, r) + " دقیقه", nil
}

// token appends the invariant scale word; the group separator "و" between
// tokens comes from the resolved separator.
func (s *persianSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	words := s.triple(gr.value, lex)
	if scale := scaleEntry(lex.Scales, ctx.scaleIndex); scale != "" {
		words += " " + scale
	}
	return words
}

// triple spells 1-999 from the hundreds table, every position linked with
// "و": "سیصد و چهل و پنج".
func (s *persianSpeller) triple(v int, lex *Lexicon) string {
	var parts []string
	if h := v / 100; h > 0 {
		if word := hundredsEntry(lex.Hundreds, h); word != "" {
			parts = append(parts, word)
		}
	}
	if rest := v % 100; rest > 0 {
		parts = append(parts, s.tensUnits(rest, lex))
	}
	return strings.Join(parts, " و ")
}

func (s *persianSpeller) tensUnits(v int, lex *Lexicon) string {
	switch {
	case v < 10:
		return lex.Units[v]
	case v <= 20:
		return lex.Teens[v-10]
	default:
		ten := lex.Tens[v/10]
		if unit := v % 10; unit > 0 {
			return ten + " و " + lex.Units[unit]
		}
		return ten
	}
}

func (s *persianSpeller) wordJoin() string { return " " }

// fraction spells the decimal digits as a numeral plus a denominator word
// selected by the fraction length: "شصت و هفت صدم" for .67. Leading zeros
// count toward the denominator but not the numeral, so .05 is "پنج صدم".
func (s *persianSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	suffixes := r.FractionSuffixes
	if len(suffixes) == 0 {
		suffixes = persianFractionSuffixes
	}
	if len(digits) > len(suffixes) {
		digits = strings.TrimRight(digits[:len(suffixes)], "0")
		if digits == "" {
			return ""
		}
	}
	clause := spellCardinal(trimLeadingZeros(digits), s, r) + " " + suffixes[len(digits)-1]
	if hasIntegerClause {
		return " و " + clause
	}
	return clause
}

// zeroIntegerClause is empty: Persian opens straight with the fraction
// numeral, "پنج دهم" rather than "صفر و پنج دهم".
func (s *persianSpeller) zeroIntegerClause(r *Rules) string { return "" }
