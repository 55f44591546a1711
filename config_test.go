package spellout

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Registry != DefaultRegistry {
		t.Fatal("empty config should fall back to the default registry")
	}
	if cfg.maxIntegerDigits != DefaultMaxIntegerDigits {
		t.Fatalf("maxIntegerDigits = %d want %d", cfg.maxIntegerDigits, DefaultMaxIntegerDigits)
	}
	if cfg.Speller != nil {
		t.Fatal("no speller should be pinned by default")
	}
}

func TestNewConfigOptions(t *testing.T) {
	registry := NewRegistry(WithRegistrySpellers(&englishSpeller{}))

	cfg, err := NewConfig(
		WithRegistry(registry),
		WithSpeller(&germanSpeller{}),
		WithMaxIntegerDigits(12),
		WithDefaults(WithSeparator(", ")),
		WithDefaults(WithZeroWord("nil")),
		nil,
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Registry != registry {
		t.Fatal("WithRegistry not applied")
	}
	if cfg.Speller == nil || cfg.Speller.Code() != "de" {
		t.Fatalf("WithSpeller not applied: %v", cfg.Speller)
	}
	if cfg.maxIntegerDigits != 12 {
		t.Fatalf("maxIntegerDigits = %d want 12", cfg.maxIntegerDigits)
	}
	if len(cfg.Defaults) != 2 {
		t.Fatalf("WithDefaults should accumulate, got %d options", len(cfg.Defaults))
	}
}

func TestNewConfigOptionErrors(t *testing.T) {
	if _, err := NewConfig(WithRegistry(nil)); err == nil {
		t.Fatal("expected error for nil registry")
	}
	if _, err := NewConfig(WithSpeller(nil)); err == nil {
		t.Fatal("expected error for nil speller")
	}
	if _, err := NewConfig(WithMaxIntegerDigits(-1)); err == nil {
		t.Fatal("expected error for negative digit cap")
	}
}

func TestNewPinnedSpellerSkipsRegistry(t *testing.T) {
	// The pinned speller wins even when the registry cannot resolve the code.
	empty := NewRegistry()

	conv, err := New("whatever", WithRegistry(empty), WithSpeller(&persianSpeller{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if conv.Locale() != "fa" {
		t.Fatalf("Locale() = %q want fa", conv.Locale())
	}
}
