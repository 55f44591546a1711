package spellout

// Rules is the fully resolved parameter set a speller converts with. It is
// produced by resolveRules before any conversion logic runs; spellers never
// consult fallback chains themselves.
type Rules struct {
	// Separator joins group tokens. It never reaches intra-group compounding.
	Separator string
	// Lexicon is the merged word-table set, never nil for built-in spellers.
	Lexicon *Lexicon
	// FractionSuffixes is the ordinal-suffix table indexed by fraction length,
	// used by locales that speak decimals as "so many hundredths".
	FractionSuffixes []string
	// NegativeWord prefixes negative magnitudes when EmitNegative is set.
	NegativeWord string
	// ZeroWord is returned for a canonical magnitude of exactly zero.
	ZeroWord string
	// EmitNegative toggles the negative prefix.
	EmitNegative bool
	// TimePrefix opens clock output for locales that announce the hour.
	TimePrefix string
	// Calendar selects the month-name table for date output.
	Calendar Calendar
	// MaxFractionDigits caps the rendered fraction length.
	MaxFractionDigits int
}

// callOptions accumulates overrides before resolution. Pointer fields keep
// "unset" distinct from deliberately empty values, so a caller can force an
// empty separator or an empty time prefix.
type callOptions struct {
	separator        *string
	lexicon          *Lexicon
	fractionSuffixes []string
	negativeWord     *string
	zeroWord         *string
	emitNegative     *bool
	timePrefix       *string
	calendar         *Calendar
	maxFraction      *int
}

// ConvertOption overrides a single conversion parameter for one call, or for
// every call when passed to WithDefaults at construction time.
type ConvertOption func(*callOptions)

// WithSeparator overrides the joiner between group tokens.
func WithSeparator(sep string) ConvertOption {
	return func(o *callOptions) {
		o.separator = &sep
	}
}

// WithLexicon layers a full or partial lexicon over the locale tables.
// Tables the override leaves nil keep their built-in entries.
func WithLexicon(lex *Lexicon) ConvertOption {
	return func(o *callOptions) {
		if lex == nil {
			return
		}
		o.lexicon = o.lexicon.Merge(lex)
	}
}

// WithFractionSuffixes replaces the ordinal-suffix table consulted by locales
// that spell fractions as a numeral plus a denominator word.
func WithFractionSuffixes(suffixes ...string) ConvertOption {
	return func(o *callOptions) {
		if len(suffixes) == 0 {
			return
		}
		o.fractionSuffixes = append([]string(nil), suffixes...)
	}
}

// WithNegativeWord overrides the word prefixed to negative magnitudes.
func WithNegativeWord(word string) ConvertOption {
	return func(o *callOptions) {
		o.negativeWord = &word
	}
}

// WithZeroWord overrides the word produced for a zero magnitude.
func WithZeroWord(word string) ConvertOption {
	return func(o *callOptions) {
		o.zeroWord = &word
	}
}

// WithoutNegativeWord suppresses the negative prefix entirely; the magnitude
// is spelled unprefixed.
func WithoutNegativeWord() ConvertOption {
	return func(o *callOptions) {
		off := false
		o.emitNegative = &off
	}
}

// WithTimePrefix overrides the phrase that opens clock output.
func WithTimePrefix(prefix string) ConvertOption {
	return func(o *callOptions) {
		o.timePrefix = &prefix
	}
}

// WithMaxFractionDigits adjusts how many fractional digits are rendered.
// Non-positive values are ignored.
func WithMaxFractionDigits(limit int) ConvertOption {
	return func(o *callOptions) {
		if limit <= 0 {
			return
		}
		o.maxFraction = &limit
	}
}

// WithCalendar selects the month-name table for date conversion. Spellers
// that do not carry the requested table fall back to their native one.
func WithCalendar(calendar Calendar) ConvertOption {
	return func(o *callOptions) {
		o.calendar = &calendar
	}
}

func newCallOptions(opts []ConvertOption) *callOptions {
	if len(opts) == 0 {
		return nil
	}
	resolved := &callOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(resolved)
	}
	return resolved
}

// applyTo folds one override layer into an already materialized rule set.
func (o *callOptions) applyTo(r *Rules) {
	if o == nil {
		return
	}
	if o.separator != nil {
		r.Separator = *o.separator
	}
	if o.lexicon != nil {
		r.Lexicon = r.Lexicon.Merge(o.lexicon)
	}
	if len(o.fractionSuffixes) > 0 {
		r.FractionSuffixes = append([]string(nil), o.fractionSuffixes...)
	}
	if o.negativeWord != nil {
		r.NegativeWord = *o.negativeWord
	}
	if o.zeroWord != nil {
		r.ZeroWord = *o.zeroWord
	}
	if o.emitNegative != nil {
		r.EmitNegative = *o.emitNegative
	}
	if o.timePrefix != nil {
		r.TimePrefix = *o.timePrefix
	}
	if o.calendar != nil {
		r.Calendar = *o.calendar
	}
	if o.maxFraction != nil {
		r.MaxFractionDigits = *o.maxFraction
	}
}

// resolveRules performs the explicit three-way merge: speller built-ins first,
// then instance defaults, then call-site overrides. Later layers win field by
// field; lexicon layers merge table by table instead of replacing wholesale.
func resolveRules(builtin Rules, instance *callOptions, call *callOptions) *Rules {
	resolved := builtin
	instance.applyTo(&resolved)
	call.applyTo(&resolved)
	return &resolved
}
