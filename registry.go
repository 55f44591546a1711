package spellout

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps locale codes to spellers. Lookups walk the locale's fallback
// chain, so a request for "de-AT" lands on the "de" speller unless something
// more specific is registered.
type Registry struct {
	mu       sync.RWMutex
	spellers map[string]Speller
	resolver FallbackResolver
}

type registryConfig struct {
	resolver FallbackResolver
	spellers []Speller
}

type RegistryOption func(*registryConfig)

func WithRegistryResolver(resolver FallbackResolver) RegistryOption {
	return func(rc *registryConfig) {
		rc.resolver = resolver
	}
}

func WithRegistrySpellers(spellers ...Speller) RegistryOption {
	return func(rc *registryConfig) {
		rc.spellers = append(rc.spellers, spellers...)
	}
}

// NewRegistry builds an empty registry unless spellers are supplied. Without
// an explicit resolver, fallback chains derive from BCP 47 parents.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := registryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.resolver == nil {
		cfg.resolver = NewStaticFallbackResolver()
	}

	registry := &Registry{
		spellers: make(map[string]Speller),
		resolver: cfg.resolver,
	}
	for _, sp := range cfg.spellers {
		registry.Register(sp)
	}
	return registry
}

// Register adds or replaces the speller under its own normalized code.
func (r *Registry) Register(sp Speller) {
	if sp == nil {
		return
	}
	code := normalizeLocale(sp.Code())
	if code == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.spellers == nil {
		r.spellers = make(map[string]Speller)
	}
	r.spellers[code] = sp
}

// Resolve returns the speller for the locale, trying the exact code first
// and then each fallback candidate in order.
func (r *Registry) Resolve(locale string) (Speller, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil, fmt.Errorf("spellout: empty locale: %w", ErrUnknownLocale)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, candidate := range r.candidateLocales(normalized) {
		if sp, ok := r.spellers[candidate]; ok {
			return sp, nil
		}
	}

	return nil, fmt.Errorf("spellout: locale %q: %w", locale, ErrUnknownLocale)
}

func (r *Registry) candidateLocales(locale string) []string {
	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || containsLocale(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}
	return chain
}

// Locales returns the sorted registered locale codes.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.spellers) == 0 {
		return nil
	}
	locales := make([]string, 0, len(r.spellers))
	for code := range r.spellers {
		locales = append(locales, code)
	}
	sort.Strings(locales)
	return locales
}

func containsLocale(locales []string, target string) bool {
	for _, locale := range locales {
		if locale == target {
			return true
		}
	}
	return false
}

// DefaultRegistry carries the built-in spellers and backs the package-level
// conversion helpers.
var DefaultRegistry = NewRegistry(WithRegistrySpellers(builtinSpellers()...))

func builtinSpellers() []Speller {
	return []Speller{
		&englishSpeller{},
		&germanSpeller{},
		&frenchSpeller{},
		&spanishSpeller{},
		&russianSpeller{},
		&persianSpeller{},
		&chineseSpeller{},
		&japaneseSpeller{},
	}
}

// BuiltinSpellers returns fresh instances of the built-in spellers, for
// seeding a custom registry.
func BuiltinSpellers() []Speller {
	return builtinSpellers()
}

// Register adds a speller to the default registry.
func Register(sp Speller) {
	DefaultRegistry.Register(sp)
}
