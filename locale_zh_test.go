package spellout

import "testing"

func TestChineseNumbers(t *testing.T) {
	runNumberCases(t, "zh", []wordCase{
		{0, "零"},
		{5, "五"},
		{10, "十"},
		{15, "十五"},
		{20, "二十"},
		{25, "二十五"},
		{100, "一百"},
		{105, "一百零五"},
		{110, "一百一十"},
		{115, "一百一十五"},
		{305, "三百零五"},
		{1000, "一千"},
		{1005, "一千零五"},
		{9999, "九千九百九十九"},
		{10000, "一万"},
		{10005, "一万零五"},
		{20010, "二万零一十"},
		{100000005, "一亿零五"},
		{123450005, "一亿二千三百四十五万零五"},
		{-11, "负十一"},
		{"3.14", "三点一四"},
		{"0.5", "零点五"},
	})
}

func TestChineseGroups(t *testing.T) {
	conv, err := New("zh")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		value int
		want  string
	}{
		{0, ""},
		{15, "十五"},
		{305, "三百零五"},
		{9999, "九千九百九十九"},
	}
	for _, tc := range cases {
		got, err := conv.Group(tc.value)
		if err != nil {
			t.Fatalf("Group(%d): %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("Group(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}

	// Width four admits group values through 9999.
	if _, err := conv.Group(10000); err == nil {
		t.Fatal("Group(10000) should be out of range")
	}
}

func TestChineseDates(t *testing.T) {
	conv, err := New("zh")
	if err != nil {
		t.Fatal(err)
	}
	got, err := conv.Date("2023-04-05")
	if err != nil {
		t.Fatal(err)
	}
	if got != "二千零二十三年四月五日" {
		t.Fatalf("got %q", got)
	}
}

func TestChineseClock(t *testing.T) {
	conv, err := New("zh")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		input string
		want  string
	}{
		{"18:00", "十八点"},
		{"08:05", "八点五分"},
		{"12:30", "十二点三十分"},
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
