package spellout

import (
	"strings"

	"golang.org/x/text/language"
)

// localeParentChain derives the fallback candidates for a locale, most
// specific first: BCP 47 parents where the tag parses, then plain prefix
// trimming so identifiers x/text cannot parse still fall back sensibly.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}
	add := func(candidate string) {
		if candidate == "" || candidate == "und" {
			return
		}
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		chain = append(chain, candidate)
	}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			add(parent.String())
		}
	}

	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		add(current)
	}

	return chain
}

// normalizeLocale trims whitespace and folds underscores to hyphens so
// "fa_IR" and "fa-IR" land on the same registry entry.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
