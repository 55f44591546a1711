package spellout

import "testing"

func TestWrapSpellerWithOverrides(t *testing.T) {
	wrapped := WrapSpellerWithOverrides(&englishSpeller{},
		WithZeroWord("nought"),
		WithNegativeWord("negative"),
	)

	rules := wrapped.Rules()
	if rules.ZeroWord != "nought" {
		t.Fatalf("ZeroWord = %q want nought", rules.ZeroWord)
	}
	if rules.NegativeWord != "negative" {
		t.Fatalf("NegativeWord = %q want negative", rules.NegativeWord)
	}
	if rules.Separator != " " {
		t.Fatalf("untouched rules must pass through, separator %q", rules.Separator)
	}

	if wrapped.Code() != "en" || wrapped.Width() != 3 {
		t.Fatalf("Code/Width must delegate, got %q/%d", wrapped.Code(), wrapped.Width())
	}

	conv, err := NewWithSpeller(wrapped)
	if err != nil {
		t.Fatalf("NewWithSpeller: %v", err)
	}
	got, err := conv.Number(0)
	if err != nil || got != "nought" {
		t.Fatalf("Number(0) = %q,%v want nought", got, err)
	}
	got, err = conv.Number(-3)
	if err != nil || got != "negative three" {
		t.Fatalf("Number(-3) = %q,%v want negative three", got, err)
	}
}

func TestWrapSpellerOverridesStayUnderCallOptions(t *testing.T) {
	wrapped := WrapSpellerWithOverrides(&englishSpeller{}, WithZeroWord("nought"))

	conv, err := NewWithSpeller(wrapped)
	if err != nil {
		t.Fatalf("NewWithSpeller: %v", err)
	}

	got, err := conv.Number(0, WithZeroWord("zip"))
	if err != nil || got != "zip" {
		t.Fatalf("call-site option must beat the decorator, got %q,%v", got, err)
	}
}

func TestWrapSpellerWithOverridesPassthrough(t *testing.T) {
	if WrapSpellerWithOverrides(nil) != nil {
		t.Fatal("nil speller should stay nil")
	}

	base := &englishSpeller{}
	if got := WrapSpellerWithOverrides(base); got != Speller(base) {
		t.Fatal("no overrides should return the speller unwrapped")
	}
}

func TestWrapSpellerAs(t *testing.T) {
	variant := WrapSpellerAs("en_GB", &englishSpeller{}, WithZeroWord("nought"))
	if variant.Code() != "en-GB" {
		t.Fatalf("Code() = %q want en-GB", variant.Code())
	}

	registry := NewRegistry(WithRegistrySpellers(&englishSpeller{}, variant))

	sp, err := registry.Resolve("en-GB")
	if err != nil {
		t.Fatalf("Resolve(en-GB): %v", err)
	}
	if sp.Rules().ZeroWord != "nought" {
		t.Fatalf("variant speller not resolved, zero word %q", sp.Rules().ZeroWord)
	}

	sp, err = registry.Resolve("en")
	if err != nil {
		t.Fatalf("Resolve(en): %v", err)
	}
	if sp.Rules().ZeroWord != "zero" {
		t.Fatalf("base speller must stay untouched, zero word %q", sp.Rules().ZeroWord)
	}

	if WrapSpellerAs("xx", nil) != nil {
		t.Fatal("nil speller should stay nil")
	}
}
