package spellout

import (
	"fmt"
	"strings"
)

// englishLexicon covers the short scale up to vigintillion, which is exactly
// what a 66-digit integer needs at grouping width 3.
var englishLexicon = Lexicon{
	Units: []string{
		"zero", "one", "two", "three", "four",
		"five", "six", "seven", "eight", "nine",
	},
	Teens: []string{
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
		"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
	},
	Tens: []string{
		"", "", "twenty", "thirty", "forty",
		"fifty", "sixty", "seventy", "eighty", "ninety",
	},
	Scales: []string{
		"", "thousand", "million", "billion", "trillion",
		"quadrillion", "quintillion", "sextillion", "septillion", "octillion",
		"nonillion", "decillion", "undecillion", "duodecillion", "tredecillion",
		"quattuordecillion", "quindecillion", "sexdecillion", "septendecillion",
		"octodecillion", "novemdecillion", "vigintillion",
	},
}

var englishMonths = map[Calendar][]string{
	CalendarGregorian: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

type englishSpeller struct{}

var _ Speller = (*englishSpeller)(nil)

func (s *englishSpeller) Code() string { return "en" }

func (s *englishSpeller) Width() int { return 3 }

func (s *englishSpeller) Rules() Rules {
	return Rules{
		Separator:         " ",
		Lexicon:           &englishLexicon,
		NegativeWord:      "minus",
		ZeroWord:          "zero",
		EmitNegative:      true,
		Calendar:          CalendarGregorian,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *englishSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *englishSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders "Month day, year". The first of the month keeps its
// ordinal word; every other component is a cardinal.
func (s *englishSpeller) SpellDate(d Date, r *Rules) (string, error) {
	day := "first"
	if d.Day != 1 {
		day = spellInt(d.Day, s, r)
	}
	month := monthName(englishMonths, CalendarGregorian, r.Calendar, d.Month)
	return fmt.Sprintf("%s %s, %s", month, day, spellInt(d.Year, s, r)), nil
}

func (s *englishSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	out := clockPrefix(r.TimePrefix, " ") + spellInt(c.Hour, s, r)
	if c.Minute == 0 {
		return out + " o'clock", nil
	}
	hourUnit := "hours"
	if c.Hour == 1 {
		hourUnit = "hour"
	}
	minuteUnit := "minutes"
	if c.Minute == 1 {
		minuteUnit = "minute"
	}
	return fmt.Sprintf("%s %s and %s %s", out, hourUnit, spellInt(c.Minute, s, r), minuteUnit), nil
}

func (s *englishSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	words := s.triple(gr.value, lex)
	if words == "" {
		return ""
	}
	if scale := scaleEntry(lex.Scales, ctx.scaleIndex); scale != "" {
		words += " " + scale
	}
	return words
}

// triple spells 1-999: an optional hundreds clause, then the tens-and-units
// compound, space separated.
func (s *englishSpeller) triple(v int, lex *Lexicon) string {
	var parts []string
	if h := v / 100; h > 0 {
		word := hundredsEntry(lex.Hundreds, h)
		if word == "" {
			word = lex.Units[h] + " hundred"
		}
		parts = append(parts, word)
	}
	if rest := v % 100; rest > 0 {
		parts = append(parts, s.tensUnits(rest, lex))
	}
	return strings.Join(parts, " ")
}

// tensUnits spells 1-99. Values through twenty come straight from the unit
// and teen tables; above that the tens word takes a hyphenated unit.
func (s *englishSpeller) tensUnits(v int, lex *Lexicon) string {
	switch {
	case v < 10:
		return lex.Units[v]
	case v <= 20:
		return lex.Teens[v-10]
	default:
		word := lex.Tens[v/10]
		if unit := v % 10; unit > 0 {
			word += "-" + lex.Units[unit]
		}
		return word
	}
}

func (s *englishSpeller) wordJoin() string { return " " }

func (s *englishSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	return digitFraction(digits, "point", " ", hasIntegerClause, r.Lexicon.Units)
}

func (s *englishSpeller) zeroIntegerClause(r *Rules) string { return r.ZeroWord }
