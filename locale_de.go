package spellout

import (
	"fmt"
	"strings"
)

// germanLexicon uses the long scale, alternating -illion and -illiarde up to
// Dezilliarde at the 66-digit ceiling.
var germanLexicon = Lexicon{
	Units: []string{
		"null", "eins", "zwei", "drei", "vier",
		"fünf", "sechs", "sieben", "acht", "neun",
	},
	Teens: []string{
		"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn",
		"sechzehn", "siebzehn", "achtzehn", "neunzehn", "zwanzig",
	},
	Tens: []string{
		"", "", "zwanzig", "dreißig", "vierzig",
		"fünfzig", "sechzig", "siebzig", "achtzig", "neunzig",
	},
	Scales: []string{
		"", "tausend", "Million", "Milliarde", "Billion",
		"Billiarde", "Trillion", "Trilliarde", "Quadrillion", "Quadrilliarde",
		"Quintillion", "Quintilliarde", "Sextillion", "Sextilliarde", "Septillion",
		"Septilliarde", "Oktillion", "Oktilliarde", "Nonillion", "Nonilliarde",
		"Dezillion", "Dezilliarde",
	},
}

var germanMonths = map[Calendar][]string{
	CalendarGregorian: {
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
}

type germanSpeller struct{}

var _ Speller = (*germanSpeller)(nil)

func (s *germanSpeller) Code() string { return "de" }

func (s *germanSpeller) Width() int { return 3 }

func (s *germanSpeller) Rules() Rules {
	return Rules{
		Separator:         " ",
		Lexicon:           &germanLexicon,
		NegativeWord:      "minus",
		ZeroWord:          "null",
		EmitNegative:      true,
		Calendar:          CalendarGregorian,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *germanSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *germanSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders "Tag Monat Jahr", the first of the month as "erster".
func (s *germanSpeller) SpellDate(d Date, r *Rules) (string, error) {
	day := "erster"
	if d.Day != 1 {
		day = spellInt(d.Day, s, r)
	}
	month := monthName(germanMonths, CalendarGregorian, r.Calendar, d.Month)
	return fmt.Sprintf("%s %s %s", day, month, spellInt(d.Year, s, r)), nil
}

// SpellClock renders "X Uhr" with an optional "und Y Minuten" clause. Hour
// one takes the clipped article form "ein Uhr", minute one "eine Minute".
func (s *germanSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	hour := spellInt(c.Hour, s, r)
	if c.Hour == 1 {
		hour = "ein"
	}
	out := clockPrefix(r.TimePrefix, " ") + hour + " Uhr"
	if c.Minute == 0 {
		return out, nil
	}
	minutes := spellInt(c.Minute, s, r) + " Minuten"
	if c.Minute == 1 {
		minutes = "eine Minute"
	}
	return out + " und " + minutes, nil
}

// token fuses "tausend" directly onto its group, gives Million and above a
// separate capitalized noun with singular "eine"/plural "-(e)n" agreement,
// and leaves caller-supplied scale words untouched.
func (s *germanSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	scale := scaleEntry(lex.Scales, ctx.scaleIndex)
	custom := scale != scaleEntry(germanLexicon.Scales, ctx.scaleIndex)

	switch {
	case ctx.scaleIndex == 0:
		return s.triple(gr.value, true, lex)
	case ctx.scaleIndex == 1 && !custom:
		return s.triple(gr.value, false, lex) + scale
	case gr.value == 1 && !custom:
		return "eine " + scale
	default:
		words := s.triple(gr.value, false, lex)
		if scale == "" {
			return words
		}
		if !custom {
			scale = pluralGermanScale(scale)
		}
		return words + " " + scale
	}
}

// pluralGermanScale forms "Millionen" from "Million" and "Milliarden" from
// "Milliarde".
func pluralGermanScale(scale string) string {
	if strings.HasSuffix(scale, "e") {
		return scale + "n"
	}
	return scale + "en"
}

// triple spells 1-999 as one closed compound: hundreds clause and remainder
// concatenate with no separator. terminal marks a triple whose final unit is
// the last spoken word, where bare one is "eins" rather than "ein".
func (s *germanSpeller) triple(v int, terminal bool, lex *Lexicon) string {
	var b strings.Builder
	if h := v / 100; h > 0 {
		if word := hundredsEntry(lex.Hundreds, h); word != "" {
			b.WriteString(word)
		} else {
			b.WriteString(s.unitCompound(h, lex))
			b.WriteString("hundert")
		}
	}
	if rest := v % 100; rest > 0 {
		b.WriteString(s.tensUnits(rest, terminal, lex))
	}
	return b.String()
}

// tensUnits spells 1-99, units before tens: "fünfundvierzig".
func (s *germanSpeller) tensUnits(v int, terminal bool, lex *Lexicon) string {
	switch {
	case v == 1:
		if terminal {
			return lex.Units[1]
		}
		return "ein"
	case v < 10:
		return lex.Units[v]
	case v <= 20:
		return lex.Teens[v-10]
	default:
		ten := lex.Tens[v/10]
		if unit := v % 10; unit > 0 {
			return s.unitCompound(unit, lex) + "und" + ten
		}
		return ten
	}
}

// unitCompound is the unit digit inside a compound, where one clips to "ein".
func (s *germanSpeller) unitCompound(d int, lex *Lexicon) string {
	if d == 1 {
		return "ein"
	}
	return lex.Units[d]
}

func (s *germanSpeller) wordJoin() string { return " " }

func (s *germanSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	return digitFraction(digits, "Komma", " ", hasIntegerClause, r.Lexicon.Units)
}

func (s *germanSpeller) zeroIntegerClause(r *Rules) string { return r.ZeroWord }
