package spellout

import (
	"fmt"
	"strings"
)

// grammar is the hook set a locale supplies to the shared assembly pipeline.
// The pipeline owns grouping, token joining, fraction stripping, and the
// negative prefix; hooks own everything language-specific.
type grammar interface {
	// Width is the digit-group size, 3 or 4, shared with the Speller surface.
	Width() int
	// token renders one non-zero group including its scale word, or returns
	// the empty string when the group contributes nothing.
	token(gr group, ctx groupContext, lex *Lexicon) string
	// wordJoin joins the negative word and fraction clauses to their
	// neighbors: a space for most locales, direct concatenation for CJK.
	wordJoin() string
	// fraction renders the complete fractional clause, including the leading
	// connector when an integer clause precedes it.
	fraction(digits string, hasIntegerClause bool, r *Rules) string
	// zeroIntegerClause stands in for a zero integer part when a fraction
	// follows: the zero word for digit-by-digit locales, empty for locales
	// that open directly with the fraction numeral.
	zeroIntegerClause(r *Rules) string
}

// groupContext situates a group within the whole number.
type groupContext struct {
	// scaleIndex is the group's position counted from the least significant
	// group; it indexes the lexicon scale table.
	scaleIndex int
	// leading marks the most significant non-zero group.
	leading bool
	// afterGap marks a group separated from the previous spelled group by one
	// or more zero digits, either inside this group or as skipped groups.
	afterGap bool
}

// spellMagnitude assembles the words for a canonical number: zero short
// circuit, group tokens joined by the separator, fractional clause, negative
// prefix. Pure function of its inputs.
func spellMagnitude(n Number, g grammar, r *Rules) string {
	if n.IsZero() {
		return r.ZeroWord
	}

	words := spellCardinal(n.Integer, g, r)

	fraction := strings.TrimRight(n.Fraction, "0")
	if max := r.MaxFractionDigits; max > 0 && len(fraction) > max {
		fraction = fraction[:max]
	}
	if fraction != "" {
		if words == "" {
			words = g.zeroIntegerClause(r)
		}
		words += g.fraction(fraction, words != "", r)
	}

	if n.Negative && r.EmitNegative && r.NegativeWord != "" {
		words = strings.TrimRight(r.NegativeWord, " ") + g.wordJoin() + words
	}

	return words
}

// spellCardinal converts an unsigned digit string to words: groups in
// most-significant-first order, empty groups skipped together with their
// scale words, tokens joined by the resolved separator. Returns the empty
// string when every group is zero.
func spellCardinal(digits string, g grammar, r *Rules) string {
	groups := splitGroups(digits, g.Width())

	var tokens []string
	last := -1
	for i, gr := range groups {
		if gr.value == 0 {
			continue
		}
		ctx := groupContext{
			scaleIndex: len(groups) - 1 - i,
			leading:    last < 0,
			afterGap:   last >= 0 && (i-last > 1 || gr.digits[0] == '0'),
		}
		if text := g.token(gr, ctx, r.Lexicon); text != "" {
			tokens = append(tokens, text)
			last = i
		}
	}

	return strings.Join(tokens, r.Separator)
}

// digitFraction renders a fractional clause digit by digit: the introductory
// word, then each digit through the units table, all joined by the locale
// word joiner. The leading joiner is emitted only when an integer clause
// precedes the fraction.
func digitFraction(digits, intro, join string, hasIntegerClause bool, units []string) string {
	var b strings.Builder
	if hasIntegerClause {
		b.WriteString(join)
	}
	b.WriteString(intro)
	for i := 0; i < len(digits); i++ {
		b.WriteString(join)
		b.WriteString(units[digits[i]-'0'])
	}
	return b.String()
}

// spellGroup renders one bounded group without scale words. Zero yields the
// empty string so callers can distinguish it from the top-level zero word.
func spellGroup(g grammar, v int, r *Rules) string {
	if v == 0 {
		return ""
	}
	return g.token(groupOf(v, g.Width()), groupContext{leading: true}, r.Lexicon)
}

// scaleEntry is a bounds-safe scale-table lookup; an index past a custom
// table's end contributes no scale word rather than panicking.
func scaleEntry(scales []string, idx int) string {
	if idx < 0 || idx >= len(scales) {
		return ""
	}
	return scales[idx]
}

// hundredsEntry looks up a hundreds-table word. Locales that compound
// hundreds algorithmically ship an empty table and fall through to their own
// construction; an override table takes precedence entry by entry.
func hundredsEntry(hundreds []string, digit int) string {
	if digit < 0 || digit >= len(hundreds) {
		return ""
	}
	return hundreds[digit]
}

// groupOf builds the group record for a bare group-conversion call.
func groupOf(v, width int) group {
	return group{digits: fmt.Sprintf("%0*d", width, v), value: v}
}

// groupModulus returns the exclusive upper bound for group values of the
// given width.
func groupModulus(width int) int {
	modulus := 1
	for i := 0; i < width; i++ {
		modulus *= 10
	}
	return modulus
}
