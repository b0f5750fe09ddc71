package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// translit maps Russian letters to their common Latin approximations.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// stripMarks decomposes accented characters and drops the combining marks, so
// e.g. "é" becomes "e".
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug converts a group name like "15.14д-гг01/24м" into a lowercase
// filesystem-safe identifier. Never returns an empty string.
func Slug(group string) string {
	lowered := strings.ToLower(strings.TrimSpace(group))

	var transliterated strings.Builder
	for _, r := range lowered {
		if latin, ok := translit[r]; ok {
			transliterated.WriteString(latin)
			continue
		}
		transliterated.WriteRune(r)
	}

	flattened, _, err := transform.String(stripMarks, transliterated.String())
	if err != nil {
		flattened = transliterated.String()
	}

	var out []rune
	for _, r := range flattened {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			out = append(out, r)
		case r == ' ', r == '/', r == '-', r == '_':
			out = append(out, '-')
		}
	}

	slug := strings.Trim(collapseSeparators(string(out)), "-")
	if slug == "" {
		return "schedule"
	}
	return slug
}

func collapseSeparators(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
