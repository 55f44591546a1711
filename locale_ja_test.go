package spellout

import "testing"

func TestJapaneseNumbers(t *testing.T) {
	runNumberCases(t, "ja", []wordCase{
		{0, "零"},
		{11, "十一"},
		{100, "百"},
		{111, "百十一"},
		{305, "三百五"},
		{1000, "千"},
		{1500, "千五百"},
		{8000, "八千"},
		{10000, "一万"},
		{10005, "一万五"},
		{20000000, "二千万"},
		{123456789, "一億二千三百四十五万六千七百八十九"},
		{-11, "マイナス十一"},
		{"3.14", "三点一四"},
	})
}

func TestJapaneseDates(t *testing.T) {
	conv, err := New("ja")
	if err != nil {
		t.Fatal(err)
	}
	got, err := conv.Date("2023-04-05")
	if err != nil {
		t.Fatal(err)
	}
	if got != "二千二十三年四月五日" {
		t.Fatalf("got %q", got)
	}
}

func TestJapaneseClock(t *testing.T) {
	conv, err := New("ja")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		input string
		want  string
	}{
		{"18:00", "十八時"},
		{"08:05", "八時五分"},
	}
	for _, tc := range cases {
		got, err := conv.Time(tc.input)
		if err != nil {
			t.Fatalf("Time(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Time(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
