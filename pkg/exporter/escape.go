package exporter

import "strings"

// textEscaper escapes TEXT property values per the iCalendar grammar:
// backslash first, then semicolon, comma and line breaks.
var textEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\r\n", "\\n",
	"\n", "\\n",
)

func escapeText(value string) string {
	return textEscaper.Replace(value)
}
