package spellout

import "fmt"

// Config captures converter setup prior to construction.
type Config struct {
	Registry *Registry
	Speller  Speller
	Defaults []ConvertOption

	maxIntegerDigits int
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options and fills in the defaults:
// the built-in registry and the stock integer digit cap.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry
	}
	if cfg.maxIntegerDigits == 0 {
		cfg.maxIntegerDigits = DefaultMaxIntegerDigits
	}

	return cfg, nil
}

// WithRegistry resolves the converter's speller from the given registry
// instead of the built-in one.
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		if registry == nil {
			return fmt.Errorf("spellout: nil registry")
		}
		c.Registry = registry
		return nil
	}
}

// WithSpeller pins the converter to a specific speller, bypassing registry
// resolution entirely.
func WithSpeller(sp Speller) Option {
	return func(c *Config) error {
		if sp == nil {
			return fmt.Errorf("spellout: nil speller")
		}
		c.Speller = sp
		return nil
	}
}

// WithDefaults sets instance-level conversion defaults. They override the
// speller built-ins and are themselves overridden by call-site options.
func WithDefaults(opts ...ConvertOption) Option {
	return func(c *Config) error {
		c.Defaults = append(c.Defaults, opts...)
		return nil
	}
}

// WithMaxIntegerDigits adjusts the integer digit cap for this converter.
func WithMaxIntegerDigits(limit int) Option {
	return func(c *Config) error {
		if limit <= 0 {
			return fmt.Errorf("spellout: integer digit cap must be positive, got %d", limit)
		}
		c.maxIntegerDigits = limit
		return nil
	}
}
