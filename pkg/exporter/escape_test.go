package exporter

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	got := escapeText("a\\b;c,d\ne\r\nf")
	want := `a\\b\;c\,d\ne\nf`
	if got != want {
		t.Errorf("escapeText() = %q, want %q", got, want)
	}
}

func TestEscapeTextLeavesNoUnescapedSpecials(t *testing.T) {
	escaped := escapeText("плохой; текст, с\\разными\nсимволами")

	if strings.ContainsAny(escaped, "\n\r") {
		t.Error("escaped text still contains raw line breaks")
	}
	for i := 0; i < len(escaped); i++ {
		switch escaped[i] {
		case ';', ',':
			if i == 0 || escaped[i-1] != '\\' {
				t.Errorf("unescaped %q at position %d in %q", escaped[i], i, escaped)
			}
		case '\\':
			// A backslash must begin an escape sequence.
			if i+1 >= len(escaped) || !strings.ContainsRune(`\;,nN`, rune(escaped[i+1])) {
				t.Errorf("dangling backslash at position %d in %q", i, escaped)
			}
			i++ // skip the escaped character
		}
	}
}

func TestEscapeTextEmpty(t *testing.T) {
	if got := escapeText(""); got != "" {
		t.Errorf("escapeText(\"\") = %q", got)
	}
}
