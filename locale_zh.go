package spellout

import "strings"

// chineseLexicon groups by ten thousand, so the scale table runs 万, 亿, 兆
// and on through the Buddhist numerals to 不可思议 at the 66-digit ceiling.
var chineseLexicon = Lexicon{
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
		"", "万", "亿", "兆", "京",
		"垓", "秭", "穰", "沟", "涧",
		"正", "载", "极", "恒河沙", "阿僧祇",
		"那由他", "不可思议",
	},
}

// chinesePositions are the in-group place words, indexed by digit position
// from the right.
var chinesePositions = []string{"", "十", "百", "千"}

var chineseMonths = map[Calendar][]string{
	CalendarGregorian: {
		"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月",
	},
}

type chineseSpeller struct{}

var _ Speller = (*chineseSpeller)(nil)

func (s *chineseSpeller) Code() string { return "zh" }

func (s *chineseSpeller) Width() int { return 4 }

func (s *chineseSpeller) Rules() Rules {
	return Rules{
		Separator:         "",
		Lexicon:           &chineseLexicon,
		NegativeWord:      "负",
		ZeroWord:          "零",
		EmitNegative:      true,
		Calendar:          CalendarGregorian,
		MaxFractionDigits: DefaultMaxFractionDigits,
	}
}

func (s *chineseSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return spellMagnitude(n, s, r), nil
}

func (s *chineseSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return spellGroup(s, v, r), nil
}

// SpellDate renders 年月日 order; the month table already carries 月.
func (s *chineseSpeller) SpellDate(d Date, r *Rules) (string, error) {
	month := monthName(chineseMonths, CalendarGregorian, r.Calendar, d.Month)
	return spellInt(d.Year, s, r) + "年" + month + spellInt(d.Day, s, r) + "日", nil
}

// SpellClock renders "X点" with an optional "Y分" clause.
func (s *chineseSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	out := clockPrefix(r.TimePrefix, "") + spellInt(c.Hour, s, r) + "点"
	if c.Minute == 0 {
		return out, nil
	}
	return out + spellInt(c.Minute, s, r) + "分", nil
}

// token prefixes 零 when zero digits separate this group from the previous
// spoken one, then fuses the group words with their scale word.
func (s *chineseSpeller) token(gr group, ctx groupContext, lex *Lexicon) string {
	var b strings.Builder
	if ctx.afterGap {
		b.WriteString(lex.Units[0])
	}
	b.WriteString(s.quad(gr, ctx.leading, lex))
	b.WriteString(scaleEntry(lex.Scales, ctx.scaleIndex))
	return b.String()
}

// quad renders one four-digit group with place words, collapsing interior
// zero runs to a single 零. A leading ten through nineteen drops its 一, so
// fifteen opens 十五 but one hundred fifteen stays 一百一十五.
func (s *chineseSpeller) quad(gr group, leading bool, lex *Lexicon) string {
	if leading && gr.value >= 10 && gr.value <= 19 {
		word := chinesePositions[1]
		if unit := gr.value % 10; unit > 0 {
			word += lex.Units[unit]
		}
		return word
	}

	var b strings.Builder
	pending := false
	written := false
	for i := 0; i < len(gr.digits); i++ {
		d := int(gr.digits[i] - '0')
		if d == 0 {
			if written {
				pending = true
			}
			continue
		}
		if pending {
			b.WriteString(lex.Units[0])
			pending = false
		}
		b.WriteString(lex.Units[d])
		b.WriteString(chinesePositions[len(gr.digits)-1-i])
		written = true
	}
	return b.String()
}

func (s *chineseSpeller) wordJoin() string { return "" }

func (s *chineseSpeller) fraction(digits string, hasIntegerClause bool, r *Rules) string {
	return digitFraction(digits, "点", "", hasIntegerClause, r.Lexicon.Units)
}

func (s *chineseSpeller) zeroIntegerClause(r *Rules) string { return r.ZeroWord }
