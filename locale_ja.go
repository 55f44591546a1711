package spellout

import "strings"

// japaneseLexicon groups by ten thousand like Chinese but in traditional
// forms, running 万, 億, 兆 through 不可思議 at the 66-digit ceiling.
var japaneseLexicon = Lexicon{
	Units: []string{
		"零", "一", "二", "三", "四",
		"五", "六", "七", "八", "九",
	},
	Teens: []string{
		"十", "十一", "十二", "十三", "十四", "十五",
		"十六", "十七", "十八", "十九", "二十",
	},
	Tens: []string{
		"", "", "二十", "三十", "四十",
		"五十", "六十", "七十", "八十", "九十",
	},
	Scales: []string{
		"", "万", "億", "兆", "京",
		"垓", "秭", "穣", "溝", "澗",
		"正", "載", "極", "恒河沙", "阿僧祇",
		"那由他", "不可思議",
	},
}

var japanesePositions = []string{"", "十", "百", "千"}

var japaneseMonths = map[Calendar][]string{
	CalendarGregorian: {
		"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月",
	},
}

type japaneseSpeller struct{}

var _ Speller = (*japaneseSpeller)(nil)

func (s *japaneseSpeller) Code() string { return "ja" }

func (s *japaneseSpeller) Width() int { return 4 }

func (s *japaneseSpeller) Rules() Rules {
	return Rules{
		Separator:         "",
		Lexicon:           &japaneseLexicon,
		NegativeWord:      "マイナス",
		ZeroWord:          "零",
		EmitNegative:      true,
		Calendar:          CalendarGregorian,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *japaneseSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *japaneseSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders 年月日 order; the month table already carries 月.
func (s *japaneseSpeller) SpellDate(d Date, r *Rules) (string, error) {
	month := monthName(japaneseMonths, CalendarGregorian, r.Calendar, d.Month)
	return spellInt(d.Year, s, r) + "年" + month + spellInt(d.Day, s, r) + "日", nil
}

// SpellClock renders "X時" with an optional "Y分" clause.
func (s *japaneseSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	out := clockPrefix(r.TimePrefix, "") + spellInt(c.Hour, s, r) + "時"
	if c.Minute == 0 {
		return out, nil
	}
	return out + spellInt(c.Minute, s, r) + "分", nil
}

// token fuses the group words with their scale word. Japanese inserts no
// zero filler between groups.
func (s *japaneseSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	return s.quad(gr, lex) + scaleEntry(lex.Scales, ctx.scaleIndex)
}

// quad renders one four-digit group with place words. The digit one
// disappears before a place word, so eleven hundred fifteen is 千百十五, and
// zero positions are skipped without a filler.
func (s *japaneseSpeller) quad(gr group, lex *Lexicon) string {
	var b strings.Builder
	for i := 0; i < len(gr.digits); i++ {
		d := int(gr.digits[i] - '0')
		if d == 0 {
			continue
		}
		pos := len(gr.digits) - 1 - i
		if d != 1 || pos == 0 {
			b.WriteString(lex.Units[d])
		}
		b.WriteString(japanesePositions[pos])
	}
	return b.String()
}

func (s *japaneseSpeller) wordJoin() string { return "" }

func (s *japaneseSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	return digitFraction(digits, "点", "", hasIntegerClause, r.Lexicon.Units)
}

func (s *japaneseSpeller) zeroIntegerClause(r *Rules) string { return r.ZeroWord }
