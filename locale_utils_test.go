package spellout

import "testing"

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "zh-Hans-CN", want: []string{"zh-Hans", "zh"}},
		{locale: "de-AT", want: []string{"de"}},
		{locale: "fa", want: nil},
		{locale: "", want: nil},
		// Identifiers x/text cannot parse still trim down prefix by prefix.
		{locale: "verylonglanguagename-AA", want: []string{"verylonglanguagename"}},
	}

	for _, tc := range tests {
		t.Run(tc.locale, func(t *testing.T) {
			got := localeParentChain(tc.locale)
			if len(got) != len(tc.want) {
				t.Fatalf("localeParentChain(%q) = %v want %v", tc.locale, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("localeParentChain(%q)[%d] = %q want %q", tc.locale, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fa_IR", "fa-IR"},
		{" en ", "en"},
		{"de-CH", "de-CH"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}
