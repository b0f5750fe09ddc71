package textutil

import (
	"testing"
	"unicode"
)

func TestSlugGroupCode(t *testing.T) {
	got := Slug("15.14д-гг01/24м")
	want := "15.14d-gg01-24m"
	if got != want {
		t.Errorf("Slug() = %q, want %q", got, want)
	}
}

func TestSlugTransliteratesAndTrims(t *testing.T) {
	got := Slug("  группа А-1  ")
	want := "gruppa-a-1"
	if got != want {
		t.Errorf("Slug() = %q, want %q", got, want)
	}
}

func TestSlugStripsDiacritics(t *testing.T) {
	got := Slug("Café schedule")
	want := "cafe-schedule"
	if got != want {
		t.Errorf("Slug() = %q, want %q", got, want)
	}
}

func TestSlugCollapsesSeparators(t *testing.T) {
	got := Slug("a  //  b")
	want := "a-b"
	if got != want {
		t.Errorf("Slug() = %q, want %q", got, want)
	}
}

func TestSlugNeverEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "///", "!!!"} {
		if got := Slug(input); got != "schedule" {
			t.Errorf("Slug(%q) = %q, want fallback %q", input, got, "schedule")
		}
	}
}

func TestSlugLeavesNoCyrillic(t *testing.T) {
	for _, r := range Slug("15.14д-гг01/24м") {
		if unicode.Is(unicode.Cyrillic, r) {
			t.Fatalf("slug still contains Cyrillic rune %q", r)
		}
	}
}
