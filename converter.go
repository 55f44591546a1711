package spellout

import "fmt"

// Converter forwards conversions to one resolved speller. Beyond input
// normalization and option resolution it holds no conversion logic of its
// own. A converter is immutable after construction and safe for concurrent
// use.
type Converter struct {
	speller          Speller
	defaults         *callOptions
	maxIntegerDigits int
}

// New resolves a speller for the locale and builds a converter around it.
func New(locale string, opts ...Option) (*Converter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	sp := cfg.Speller
	if sp == nil {
		sp, err = cfg.Registry.Resolve(locale)
		if err != nil {
			return nil, wrapInputError(err)
		}
	}

	return &Converter{
		speller:          sp,
		defaults:         newCallOptions(cfg.Defaults),
		maxIntegerDigits: cfg.maxIntegerDigits,
	}, nil
}

// NewWithSpeller builds a converter around a caller-supplied speller.
func NewWithSpeller(sp Speller, defaults ...ConvertOption) (*Converter, error) {
	if sp == nil {
		return nil, fmt.Errorf("spellout: nil speller")
	}
	return &Converter{
		speller:          sp,
		defaults:         newCallOptions(defaults),
		maxIntegerDigits: DefaultMaxIntegerDigits,
	}, nil
}

// Locale returns the code of the underlying speller.
func (c *Converter) Locale() string {
	return c.speller.Code()
}

// Speller returns the underlying speller.
func (c *Converter) Speller() Speller {
	return c.speller
}

// Number converts any supported numeric input to words.
func (c *Converter) Number(value any, opts ...ConvertOption) (string, error) {
	n, err := parseInput(value, c.maxIntegerDigits)
	if err != nil {
		return "", wrapInputError(err)
	}
	out, err := c.speller.SpellNumber(n, c.rules(opts))
	if err != nil {
		return "", wrapInputError(err)
	}
	return out, nil
}

// Group converts one bounded group value without scale words. Zero yields
// the empty string, distinct from the top-level zero word.
func (c *Converter) Group(v int, opts ...ConvertOption) (string, error) {
	if modulus := groupModulus(c.speller.Width()); v < 0 || v >= modulus {
		return "", wrapInputError(fmt.Errorf("spellout: group value %d outside [0, %d): %w",
			v, modulus, ErrOutOfRange))
	}
	out, err := c.speller.SpellGroup(v, c.rules(opts))
	if err != nil {
		return "", wrapInputError(err)
	}
	return out, nil
}

// Date converts a "YYYY-MM-DD" or "YYYY/MM/DD" string to words.
func (c *Converter) Date(value string, opts ...ConvertOption) (string, error) {
	d, err := parseDate(value)
	if err != nil {
		return "", wrapInputError(err)
	}
	out, err := c.speller.SpellDate(d, c.rules(opts))
	if err != nil {
		return "", wrapInputError(err)
	}
	return out, nil
}

// Time converts an "HH:mm" string to words.
func (c *Converter) Time(value string, opts ...ConvertOption) (string, error) {
	clock, err := parseClock(value)
	if err != nil {
		return "", wrapInputError(err)
	}
	out, err := c.speller.SpellClock(clock, c.rules(opts))
	if err != nil {
		return "", wrapInputError(err)
	}
	return out, nil
}

func (c *Converter) rules(opts []ConvertOption) *Rules {
	return resolveRules(c.speller.Rules(), c.defaults, newCallOptions(opts))
}

// ConvertNumber converts through the default registry without keeping a
// converter around.
func ConvertNumber(locale string, value any, opts ...ConvertOption) (string, error) {
	c, err := New(locale)
	if err != nil {
		return "", err
	}
	return c.Number(value, opts...)
}

// ConvertGroup converts one bounded group value through the default registry.
func ConvertGroup(locale string, v int, opts ...ConvertOption) (string, error) {
	c, err := New(locale)
	if err != nil {
		return "", err
	}
	return c.Group(v, opts...)
}

// ConvertDate converts a date string through the default registry.
func ConvertDate(locale, value string, opts ...ConvertOption) (string, error) {
	c, err := New(locale)
	if err != nil {
		return "", err
	}
	return c.Date(value, opts...)
}

// ConvertTime converts a clock string through the default registry.
func ConvertTime(locale, value string, opts ...ConvertOption) (string, error) {
	c, err := New(locale)
	if err != nil {
		return "", err
	}
	return c.Time(value, opts...)
}
