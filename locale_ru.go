package spellout

import (
	"fmt"
	"strings"
)

// russianLexicon uses the short scale up to вигинтиллион. Scale entries are
// nominative singular; the grammar declines them by count.
var russianLexicon = Lexicon{
	Units: []string{
		"ноль", "один", "два", "три", "четыре",
		"пять", "шесть", "семь", "восемь", "девять",
	},
	Teens: []string{
		"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
		"двадцать",
	},
	Tens: []string{
		"", "", "двадцать", "тридцать", "сорок",
		"пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто",
	},
	Hundreds: []string{
		"", "сто", "двести", "триста", "четыреста",
		"пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот",
	},
	Scales: []string{
		"", "тысяча", "миллион", "миллиард", "триллион",
		"квадриллион", "квинтиллион", "секстиллион", "септиллион", "октиллион",
		"нониллион", "дециллион", "ундециллион", "дуодециллион", "тредециллион",
		"кваттуордециллион", "квиндециллион", "сексдециллион", "септендециллион",
		"октодециллион", "новемдециллион", "вигинтиллион",
	},
}

// russianMonths are genitive, as dates require.
var russianMonths = map[Calendar][]string{
	CalendarGregorian: {
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	},
}

// russianNumForm is the agreement form a count selects: nominative singular
// after one, genitive singular after two to four, genitive plural otherwise.
type russianNumForm int

const (
	formOne russianNumForm = iota
	formFew
	formMany
)

// russianForm picks the agreement form from the last digit, except that the
// teens 11-14 always take the plural form.
func russianForm(n int) russianNumForm {
	if last2 := n % 100; last2 >= 11 && last2 <= 14 {
		return formMany
	}
	switch n % 10 {
	case 1:
		return formOne
	case 2, 3, 4:
		return formFew
	default:
		return formMany
	}
}

type russianSpeller struct{}

var _ Speller = (*russianSpeller)(nil)

func (s *russianSpeller) Code() string { return "ru" }

func (s *russianSpeller) Width() int { return 3 }

func (s *russianSpeller) Rules() Rules {
	return Rules{
		Separator:         " ",
		Lexicon:           &russianLexicon,
		NegativeWord:      "минус",
		ZeroWord:          "ноль",
		EmitNegative:      true,
		Calendar:          CalendarGregorian,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *russianSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *russianSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders "день месяц год" with genitive month names, the first of
// the month as "первое".
func (s *russianSpeller) SpellDate(d Date, r *Rules) (string, error) {
	day := "первое"
	if d.Day != 1 {
		day = spellInt(d.Day, s, r)
	}
	month := monthName(russianMonths, CalendarGregorian, r.Calendar, d.Month)
	return fmt.Sprintf("%s %s %s", day, month, spellInt(d.Year, s, r)), nil
}

// SpellClock renders "X час(а/ов) Y минут(а/ы)", both unit words declined by
// count and the minute count agreeing with the feminine "минута".
func (s *russianSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	hour := spellInt(c.Hour, s, r)
	out := clockPrefix(r.TimePrefix, " ") + hour + " " + russianCountWord(c.Hour, "час", "часа", "часов")
	if c.Minute == 0 {
		return out, nil
	}
	minute := feminineRussian(spellInt(c.Minute, s, r))
	return out + " " + minute + " " + russianCountWord(c.Minute, "минута", "минуты", "минут"), nil
}

func russianCountWord(n int, one, few, many string) string {
	switch russianForm(n) {
	case formOne:
		return one
	case formFew:
		return few
	default:
		return many
	}
}

// token declines the scale word by the group value and switches the count to
// feminine before "тысяча". Caller-supplied scale words stay untouched.
func (s *russianSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	words := s.triple(gr.value, lex)
	scale := scaleEntry(lex.Scales, ctx.scaleIndex)
	if scale == "" {
		return words
	}
	if custom := scale != scaleEntry(russianLexicon.Scales, ctx.scaleIndex); custom {
		return words + " " + scale
	}
	if strings.HasSuffix(scale, "а") {
		words = feminineRussian(words)
	}
	return words + " " + declineRussianScale(scale, gr.value)
}

// feminineRussian swaps a trailing "один"/"два" for the feminine
// "одна"/"две".
func feminineRussian(words string) string {
	if strings.HasSuffix(words, "один") {
		return strings.TrimSuffix(words, "один") + "одна"
	}
	if strings.HasSuffix(words, "два") {
		return strings.TrimSuffix(words, "два") + "две"
	}
	return words
}

// declineRussianScale inflects a scale word for its count: "тысяча, тысячи,
// тысяч" on the feminine side, "миллион, миллиона, миллионов" on the
// masculine.
func declineRussianScale(scale string, n int) string {
	feminine := strings.HasSuffix(scale, "а")
	switch russianForm(n) {
	case formOne:
		return scale
	case formFew:
		if feminine {
			return strings.TrimSuffix(scale, "а") + "и"
		}
		return scale + "а"
	default:
		if feminine {
			return strings.TrimSuffix(scale, "а")
		}
		return scale + "ов"
	}
}

// triple spells 1-999 from the hundreds table.
func (s *russianSpeller) triple(v int, lex *Lexicon) string {
	var parts []string
	if h := v / 100; h > 0 {
		if word := hundredsEntry(lex.Hundreds, h); word != "" {
			parts = append(parts, word)
		}
	}
	if rest := v % 100; rest > 0 {
		parts = append(parts, s.tensUnits(rest, lex))
	}
	return strings.Join(parts, " ")
}

// tensUnits spells 1-99: units, teens through twenty, then tens plus unit.
func (s *russianSpeller) tensUnits(v int, lex *Lexicon) string {
	switch {
	case v < 10:
		return lex.Units[v]
	case v <= 20:
		return lex.Teens[v-10]
	default:
		ten := lex.Tens[v/10]
		if unit := v % 10; unit > 0 {
			return ten + " " + lex.Units[unit]
		}
		return ten
	}
}

func (s *russianSpeller) wordJoin() string { return " " }

func (s *russianSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	return digitFraction(digits, "запятая", " ", hasIntegerClause, r.Lexicon.Units)
}

func (s *russianSpeller) zeroIntegerClause(r *Rules) string { return r.ZeroWord }
