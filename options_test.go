package spellout

import "testing"

func TestResolveRulesPrecedence(t *testing.T) {
	builtin := (&englishSpeller{}).Rules()

	resolved := resolveRules(builtin, nil, nil)
	if resolved.Separator != " " || resolved.NegativeWord != "minus" {
		t.Fatalf("builtin layer alone = %+v", resolved)
	}

	instance := newCallOptions([]ConvertOption{WithSeparator(" / "), WithNegativeWord("negative")})
	resolved = resolveRules(builtin, instance, nil)
	if resolved.Separator != " / " || resolved.NegativeWord != "negative" {
		t.Fatalf("instance layer should override built-ins, got %+v", resolved)
	}

	call := newCallOptions([]ConvertOption{WithSeparator(" - ")})
	resolved = resolveRules(builtin, instance, call)
	if resolved.Separator != " - " {
		t.Fatalf("call layer should override instance, got separator %q", resolved.Separator)
	}
	if resolved.NegativeWord != "negative" {
		t.Fatalf("untouched instance fields must survive the call layer, got %q", resolved.NegativeWord)
	}
	if resolved.ZeroWord != "zero" {
		t.Fatalf("untouched built-in fields must survive both layers, got %q", resolved.ZeroWord)
	}
}

func TestResolveRulesForcedEmptySeparator(t *testing.T) {
	builtin := (&englishSpeller{}).Rules()

	call := newCallOptions([]ConvertOption{WithSeparator("")})
	resolved := resolveRules(builtin, nil, call)
	if resolved.Separator != "" {
		t.Fatalf("explicit empty separator must win over the built-in, got %q", resolved.Separator)
	}
}

func TestResolveRulesLexiconMerge(t *testing.T) {
	builtin := (&englishSpeller{}).Rules()

	call := newCallOptions([]ConvertOption{WithLexicon(&Lexicon{
		Scales: []string{"", "grand"},
	})})
	resolved := resolveRules(builtin, nil, call)

	if resolved.Lexicon.Scales[1] != "grand" {
		t.Fatalf("override scale not applied: %q", resolved.Lexicon.Scales[1])
	}
	if resolved.Lexicon.Units[1] != "one" {
		t.Fatalf("unspecified tables must keep built-in entries, got %q", resolved.Lexicon.Units[1])
	}
	if englishLexicon.Scales[1] != "thousand" {
		t.Fatalf("built-in lexicon mutated to %q", englishLexicon.Scales[1])
	}
}

func TestWithoutNegativeWord(t *testing.T) {
	builtin := (&englishSpeller{}).Rules()

	resolved := resolveRules(builtin, nil, newCallOptions([]ConvertOption{WithoutNegativeWord()}))
	if resolved.EmitNegative {
		t.Fatal("WithoutNegativeWord should clear EmitNegative")
	}
	if resolved.NegativeWord != "minus" {
		t.Fatalf("the word itself stays configured, got %q", resolved.NegativeWord)
	}
}

func TestNewCallOptionsEmpty(t *testing.T) {
	if newCallOptions(nil) != nil {
		t.Fatal("no options should resolve to nil")
	}
	if newCallOptions([]ConvertOption{nil, nil}) == nil {
		t.Fatal("non-empty slice allocates even when every entry is nil")
	}
}

func TestLexiconClone(t *testing.T) {
	base := englishLexicon.Clone()
	base.Units[0] = "nil"

	if englishLexicon.Units[0] != "zero" {
		t.Fatalf("Clone must not share backing arrays, built-in now %q", englishLexicon.Units[0])
	}

	if (*Lexicon)(nil).Clone() != nil {
		t.Fatal("nil lexicon clones to nil")
	}
}

func TestLexiconMerge(t *testing.T) {
	merged := englishLexicon.Merge(&Lexicon{
		Units: []string{"nought", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
	})

	if merged.Units[0] != "nought" {
		t.Fatalf("override table not applied: %q", merged.Units[0])
	}
	if merged.Teens[0] != "ten" || merged.Scales[1] != "thousand" {
		t.Fatalf("unspecified tables must carry over, got teens[0]=%q scales[1]=%q",
			merged.Teens[0], merged.Scales[1])
	}
	if englishLexicon.Units[0] != "zero" {
		t.Fatal("Merge must not mutate the receiver")
	}

	if got := englishLexicon.Merge(nil); got.Units[0] != "zero" {
		t.Fatalf("nil override should clone the base, got %q", got.Units[0])
	}
}

func TestLexiconValidate(t *testing.T) {
	tests := []struct {
		name    string
		lexicon Lexicon
		wantErr bool
	}{
		{
			name:    "empty is valid",
			lexicon: Lexicon{},
		},
		{
			name: "partial scales",
			lexicon: Lexicon{
				Scales: []string{"", "k", "M"},
			},
		},
		{
			name:    "short units",
			lexicon: Lexicon{Units: []string{"a", "b"}},
			wantErr: true,
		},
		{
			name:    "short teens",
			lexicon: Lexicon{Teens: []string{"ten"}},
			wantErr: true,
		},
		{
			name:    "nonempty scale zero",
			lexicon: Lexicon{Scales: []string{"ones", "k"}},
			wantErr: true,
		},
		{
			name:    "full tables",
			lexicon: *englishLexicon.Clone(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.lexicon.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
