package spellout

import "sync"

// FallbackResolver resolves fallback locale chains: the ordered list of
// locales to try after an exact registry lookup misses.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver serves explicitly configured chains and derives the
// BCP 47 parent chain for every other locale, so "de-AT" falls back to "de"
// without any configuration.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

var _ FallbackResolver = (*StaticFallbackResolver)(nil)

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set pins an explicit fallback chain for a locale, replacing any previous
// chain and suppressing parent derivation for it.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if fb := normalizeLocale(fallback); fb != "" && fb != normalized {
			chain = append(chain, fb)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[normalized] = chain
}

// Resolve returns the configured chain for the locale, or its derived parent
// chain when none was set.
func (s *StaticFallbackResolver) Resolve(locale string) []string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil
	}

	s.mu.RLock()
	chain, ok := s.chains[normalized]
	s.mu.RUnlock()
	if ok {
		return append([]string(nil), chain...)
	}

	return localeParentChain(normalized)
}
