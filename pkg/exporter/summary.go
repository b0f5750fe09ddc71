package exporter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultKindLabel marks lessons whose type the site left blank.
const defaultKindLabel = "Д"

// titleShortcuts abbreviates verbose course titles in calendar summaries.
// Unmapped titles pass through untouched.
var titleShortcuts = map[string]string{
	"Иностранный язык в профессиональной сфере":      "Ин. яз.",
	"Методология научных исследований":               "Методология",
	"Теория и механизмы современного гос. управления": "Гос. управление",
	"Управление цифровыми проектами":                 "Цифр. проекты",
	"Физическая культура":                            "Физкультура",
}

// kindLabel maps a free-text lesson type to its one-letter summary marker.
func kindLabel(kind string) string {
	lowered := strings.ToLower(strings.TrimSpace(kind))
	switch {
	case lowered == "":
		return defaultKindLabel
	case strings.Contains(lowered, "лекци"):
		return "Л"
	case strings.Contains(lowered, "семинар"),
		strings.Contains(lowered, "практ"),
		strings.Contains(lowered, "лаборат"):
		return "С"
	case strings.Contains(lowered, "экзамен"):
		return "Э"
	case strings.Contains(lowered, "зач"):
		return "З"
	}
	r, _ := utf8.DecodeRuneInString(lowered)
	return string(unicode.ToUpper(r))
}

// summaryCounter assigns per-label 1-based ordinals within one build.
type summaryCounter map[string]int

func (c summaryCounter) next(label string) int {
	c[label]++
	return c[label]
}

// summaryText renders the short event title: kind marker, running number and
// the (possibly abbreviated) course title.
func summaryText(label string, ordinal int, title string) string {
	if short, ok := titleShortcuts[title]; ok {
		title = short
	}
	return fmt.Sprintf("%s%d %s", label, ordinal, title)
}
