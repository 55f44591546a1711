package spellout

// Speller is the capability set one locale implements: numbers, bounded
// groups, dates, and clock times. The converter is polymorphic over this
// interface and performs no locale-specific logic itself.
//
// Implementations receive already-normalized inputs and an already-resolved
// rule set; they must be safe for concurrent use and must not retain or
// mutate the rule set they are handed.
type Speller interface {
	// Code returns the BCP 47 code the speller registers under.
	Code() string
	// Width returns the digit-grouping width, 3 or 4.
	Width() int
	// Rules returns the locale's built-in defaults, the first layer of the
	// three-way option merge.
	Rules() Rules
	// SpellNumber converts a canonical number to words.
	SpellNumber(n Number, r *Rules) (string, error)
	// SpellGroup converts one bounded group without scale words; group value
	// zero yields the empty string, not the zero word.
	SpellGroup(v int, r *Rules) (string, error)
	// SpellDate renders a parsed date through the locale sentence template.
	SpellDate(d Date, r *Rules) (string, error)
	// SpellClock renders a parsed clock time, omitting the minutes clause
	// when the minute is zero.
	SpellClock(c Clock, r *Rules) (string, error)
}
