package spellout

import (
	"fmt"
	"strings"
)

// frenchLexicon uses the long scale, alternating -illion and -illiard up to
// décilliard at the 66-digit ceiling. The 70 and 90 decade entries are kept
// for table completeness; the grammar builds 70-99 on soixante and
// quatre-vingt.
var frenchLexicon = Lexicon{
	Units: []string{
		"zéro", "un", "deux", "trois", "quatre",
		"cinq", "six", "sept", "huit", "neuf",
	},
	Teens: []string{
		"dix", "onze", "douze", "treize", "quatorze", "quinze",
		"seize", "dix-sept", "dix-huit", "dix-neuf", "vingt",
	},
	Tens: []string{
		"", "", "vingt", "trente", "quarante",
		"cinquante", "soixante", "soixante-dix", "quatre-vingt", "quatre-vingt-dix",
	},
	Scales: []string{
		"", "mille", "million", "milliard", "billion",
		"billiard", "trillion", "trilliard", "quadrillion", "quadrilliard",
		"quintillion", "quintilliard", "sextillion", "sextilliard", "septillion",
		"septilliard", "octillion", "octilliard", "nonillion", "nonilliard",
		"décillion", "décilliard",
	},
}

var frenchMonths = map[Calendar][]string{
	CalendarGregorian: {
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
}

type frenchSpeller struct{}

var _ Speller = (*frenchSpeller)(nil)

func (s *frenchSpeller) Code() string { return "fr" }

func (s *frenchSpeller) Width() int { return 3 }

func (s *frenchSpeller) Rules() Rules {
	return Rules{
		Separator:         " ",
		Lexicon:           &frenchLexicon,
		NegativeWord:      "moins",
		ZeroWord:          "zéro",
		EmitNegative:      true,
		Calendar:          CalendarGregorian,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *frenchSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *frenchSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders "jour mois année", the first of the month as "premier".
func (s *frenchSpeller) SpellDate(d Date, r *Rules) (string, error) {
	day := "premier"
	if d.Day != 1 {
		day = spellInt(d.Day, s, r)
	}
	month := monthName(frenchMonths, CalendarGregorian, r.Calendar, d.Month)
	return fmt.Sprintf("%s %s %s", day, month, spellInt(d.Year, s, r)), nil
}

// SpellClock renders "X heure(s)" with the bare minute numeral appended, as
// in "dix-huit heures trente". Hour and minute counts agree with the feminine
// nouns, so 21:31 is "vingt et une heures trente et une".
func (s *frenchSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	hour := feminineFrench(spellInt(c.Hour, s, r))
	unit := "heures"
	if c.Hour <= 1 {
		unit = "heure"
	}
	out := clockPrefix(r.TimePrefix, " ") + hour + " " + unit
	if c.Minute == 0 {
		return out, nil
	}
	return out + " " + feminineFrench(spellInt(c.Minute, s, r)), nil
}

// feminineFrench swaps a trailing "un" for "une".
func feminineFrench(words string) string {
	if strings.HasSuffix(words, "un") {
		return strings.TrimSuffix(words, "un") + "une"
	}
	return words
}

// token keeps "mille" invariable and bare of "un", and gives million and
// above a plural s from two. Caller-supplied scale words stay untouched.
func (s *frenchSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	scale := scaleEntry(lex.Scales, ctx.scaleIndex)
	custom := scale != scaleEntry(frenchLexicon.Scales, ctx.scaleIndex)

	if ctx.scaleIndex == 1 && !custom {
		if gr.value == 1 {
			return scale
		}
		return s.triple(gr.value, false, lex) + " " + scale
	}

	words := s.triple(gr.value, ctx.scaleIndex == 0, lex)
	if scale == "" {
		return words
	}
	if !custom && gr.value > 1 {
		scale += "s"
	}
	return words + " " + scale
}

// triple spells 1-999. "cent" never takes "un"; it takes a plural s only
// when it closes the whole numeral, per the terminal flag.
func (s *frenchSpeller) triple(v int, terminal bool, lex *Lexicon) string {
	h := v / 100
	rest := v % 100

	var parts []string
	if h > 0 {
		word := hundredsEntry(lex.Hundreds, h)
		if word == "" {
			if h == 1 {
				word = "cent"
			} else {
				word = lex.Units[h] + " cent"
				if rest == 0 && terminal {
					word += "s"
				}
			}
		}
		parts = append(parts, word)
	}
	if rest > 0 {
		parts = append(parts, s.tensUnits(rest, terminal, lex))
	}
	return strings.Join(parts, " ")
}

// tensUnits spells 1-99 with the irregular decades: 70-79 build on soixante
// plus a teen, 90-99 on quatre-vingt plus a teen, and "et" links the unit at
// 21, 31, 41, 51, 61 and 71 only. "quatre-vingts" takes its s when it closes
// the whole numeral.
func (s *frenchSpeller) tensUnits(v int, terminal bool, lex *Lexicon) string {
	switch {
	case v < 10:
		return lex.Units[v]
	case v <= 20:
		return lex.Teens[v-10]
	case v < 70:
		ten := lex.Tens[v/10]
		switch unit := v % 10; {
		case unit == 0:
			return ten
		case unit == 1:
			return ten + " et " + lex.Units[1]
		default:
			return ten + "-" + lex.Units[unit]
		}
	case v == 71:
		return lex.Tens[6] + " et " + lex.Teens[1]
	case v < 80:
		return lex.Tens[6] + "-" + lex.Teens[v-70]
	case v == 80:
		if terminal {
			return lex.Tens[8] + "s"
		}
		return lex.Tens[8]
	case v < 90:
		return lex.Tens[8] + "-" + lex.Units[v-80]
	default:
		return lex.Tens[8] + "-" + lex.Teens[v-90]
	}
}

func (s *frenchSpeller) wordJoin() string { return " " }

func (s *frenchSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	return digitFraction(digits, "virgule", " ", hasIntegerClause, r.Lexicon.Units)
}

func (s *frenchSpeller) zeroIntegerClause(r *Rules) string { return r.ZeroWord }
