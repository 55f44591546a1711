package spellout

// overrideSpeller layers fixed conversion overrides under a wrapped speller.
// The overrides surface through Rules(), so they sit at the built-in layer of
// the option merge and instance or call-site options still win.
type overrideSpeller struct {
	next      Speller
	code      string
	overrides *callOptions
}

var _ Speller = (*overrideSpeller)(nil)

// WrapSpellerWithOverrides returns a speller whose built-in rules carry the
// given overrides. A nil speller stays nil; with no effective overrides the
// original speller is returned unwrapped.
func WrapSpellerWithOverrides(next Speller, opts ...ConvertOption) Speller {
	if next == nil {
		return nil
	}
	overrides := newCallOptions(opts)
	if overrides == nil {
		return next
	}
	return &overrideSpeller{next: next, overrides: overrides}
}

// WrapSpellerAs additionally changes the code the wrapped speller registers
// under, for deriving variant locales from an existing one.
func WrapSpellerAs(code string, next Speller, opts ...ConvertOption) Speller {
	if next == nil {
		return nil
	}
	return &overrideSpeller{
		next:      next,
		code:      normalizeLocale(code),
		overrides: newCallOptions(opts),
	}
}

func (s *overrideSpeller) Code() string {
	if s.code != "" {
		return s.code
	}
	return s.next.Code()
}

func (s *overrideSpeller) Width() int {
	return s.next.Width()
}

func (s *overrideSpeller) Rules() Rules {
	rules := s.next.Rules()
	s.overrides.applyTo(&rules)
	return rules
}

func (s *overrideSpeller) SpellNumber(n Number, r *Rules) (string, error) {
	return s.next.SpellNumber(n, r)
}

func (s *overrideSpeller) SpellGroup(v int, r *Rules) (string, error) {
	return s.next.SpellGroup(v, r)
}

func (s *overrideSpeller) SpellDate(d Date, r *Rules) (string, error) {
	return s.next.SpellDate(d, r)
}

func (s *overrideSpeller) SpellClock(c Clock, r *Rules) (string, error) {
	return s.next.SpellClock(c, r)
}
