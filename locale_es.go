package spellout

import (
	"fmt"
	"strings"
)

// spanishLexicon counts the long scale the Castilian way: millón-type nouns
// at the even powers of a million and "mil X" compounds in between, up to
// "mil decillones" at the 66-digit ceiling.
var spanishLexicon = Lexicon{
	Units: []string{
		"cero", "uno", "dos", "tres", "cuatro",
		"cinco", "seis", "siete", "ocho", "nueve",
	},
	Teens: []string{
		"diez", "once", "doce", "trece", "catorce", "quince",
		"dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte",
	},
	Tens: []string{
		"", "", "veinte", "treinta", "cuarenta",
		"cincuenta", "sesenta", "setenta", "ochenta", "noventa",
	},
	Hundreds: []string{
		"", "ciento", "doscientos", "trescientos", "cuatrocientos",
		"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
	},
	Scales: []string{
		"", "mil", "millón", "mil millones", "billón",
		"mil billones", "trillón", "mil trillones", "cuatrillón", "mil cuatrillones",
		"quintillón", "mil quintillones", "sextillón", "mil sextillones", "septillón",
		"mil septillones", "octillón", "mil octillones", "nonillón", "mil nonillones",
		"decillón", "mil decillones",
	},
}

// spanishTwenties are the fused 21-29 forms; they are grammar, not a lexicon
// table, and keep their accents.
var spanishTwenties = []string{
	"veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco",
	"veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var spanishMonths = map[Calendar][]string{
	CalendarGregorian: {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
}

type spanishSpeller struct{}

var _ Speller = (*spanishSpeller)(nil)

func (s *spanishSpeller) Code() string { return "es" }

func (s *spanishSpeller) Width() int { return 3 }

func (s *spanishSpeller) Rules() Rules {
	return Rules{
		Separator:         " ",
		Lexicon:           &spanishLexicon,
		NegativeWord:      "menos",
		ZeroWord:          "cero",
		EmitNegative:      true,
		Calendar:          CalendarGregorian,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *spanishSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *spanishSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders "día de mes de año", the first of the month as "primero".
func (s *spanishSpeller) SpellDate(d Date, r *Rules) (string, error) {
	day := "primero"
	if d.Day != 1 {
		day = spellInt(d.Day, s, r)
	}
	month := monthName(spanishMonths, CalendarGregorian, r.Calendar, d.Month)
	return fmt.Sprintf("%s de %s de %s", day, month, spellInt(d.Year, s, r)), nil
}

// SpellClock renders "X hora(s) y Y minuto(s)". Hours agree with the
// feminine "hora" ("una", "veintiuna"); minutes apocopate before the
// masculine "minuto" ("veintiún minutos").
func (s *spanishSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	hour := spellInt(c.Hour, s, r)
	switch c.Hour {
	case 1:
		hour = "una"
	case 21:
		hour = "veintiuna"
	}
	unit := "horas"
	if c.Hour == 1 {
		unit = "hora"
	}
	out := clockPrefix(r.TimePrefix, " ") + hour + " " + unit
	if c.Minute == 0 {
		return out, nil
	}
	minute := apocopeSpanish(spellInt(c.Minute, s, r))
	minuteUnit := "minutos"
	if c.Minute == 1 {
		minuteUnit = "minuto"
	}
	return out + " y " + minute + " " + minuteUnit, nil
}

// token handles scale-word agreement: "mil" and the "mil X" compounds never
// take "un" and never change form, while millón-type nouns take "un" in the
// singular and "-ones" in the plural. The triple apocopates before any scale
// word. Caller-supplied scale words stay untouched.
func (s *spanishSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	scale := scaleEntry(lex.Scales, ctx.scaleIndex)
	if scale == "" {
		return s.triple(gr.value, lex)
	}
	if custom := scale != scaleEntry(spanishLexicon.Scales, ctx.scaleIndex); custom {
		return apocopeSpanish(s.triple(gr.value, lex)) + " " + scale
	}

	milScale := scale == "mil" || strings.HasPrefix(scale, "mil ")
	if gr.value == 1 {
		if milScale {
			return scale
		}
		return "un " + scale
	}
	words := apocopeSpanish(s.triple(gr.value, lex))
	if !milScale {
		scale = pluralSpanishScale(scale)
	}
	return words + " " + scale
}

// apocopeSpanish clips a trailing "uno" before a following noun:
// "veintiuno" to "veintiún", otherwise "uno" to "un".
func apocopeSpanish(words string) string {
	if strings.HasSuffix(words, "veintiuno") {
		return strings.TrimSuffix(words, "veintiuno") + "veintiún"
	}
	if strings.HasSuffix(words, "uno") {
		return strings.TrimSuffix(words, "uno") + "un"
	}
	return words
}

func pluralSpanishScale(scale string) string {
	if strings.HasSuffix(scale, "ón") {
		return strings.TrimSuffix(scale, "ón") + "ones"
	}
	return scale
}

// triple spells 1-999 from the hundreds table, contracting exact one hundred
// to "cien".
func (s *spanishSpeller) triple(v int, lex *Lexicon) string {
	h := v / 100
	rest := v % 100

	var parts []string
	if h > 0 {
		if word := hundredsEntry(lex.Hundreds, h); word != "" {
			if h == 1 && rest == 0 && word == hundredsEntry(spanishLexicon.Hundreds, 1) {
				word = "cien"
			}
			parts = append(parts, word)
		}
	}
	if rest > 0 {
		parts = append(parts, s.tensUnits(rest, lex))
	}
	return strings.Join(parts, " ")
}

// tensUnits spells 1-99: fused forms through 29, then "tens y unit".
func (s *spanishSpeller) tensUnits(v int, lex *Lexicon) string {
	switch {
	case v < 10:
		return lex.Units[v]
	case v <= 20:
		return lex.Teens[v-10]
	case v < 30:
		return spanishTwenties[v-21]
	default:
		ten := lex.Tens[v/10]
		if unit := v % 10; unit > 0 {
			return ten + " y " + lex.Units[unit]
		}
		return ten
	}
}

func (s *spanishSpeller) wordJoin() string { return " " }

func (s *spanishSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	return digitFraction(digits, "coma", " ", hasIntegerClause, r.Lexicon.Units)
}

func (s *spanishSpeller) zeroIntegerClause(r *Rules) string { return r.ZeroWord }
