// Package format renders lesson lists into human-readable chat messages.
package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"raspctl/pkg/scraper"
)

const (
	// MsgScheduleMissing is shown when the fetch produced no lessons at all.
	MsgScheduleMissing = "Расписание не найдено. Проверьте код группы и попробуйте позже."
	// MsgWeekEmpty is shown when lessons exist but none fall into the requested week.
	MsgWeekEmpty = "На этой неделе занятий не найдено."
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
	time.Sunday:    "Воскресенье",
}

// Week renders the Monday-to-Sunday digest of the week containing ref.
// Callers should pass a Moscow-local reference date. An empty lesson list and
// a week without lessons produce two distinct fixed messages, so a failed
// fetch is never mistaken for a quiet week.
func Week(lessons []scraper.Lesson, ref time.Time) string {
	if len(lessons) == 0 {
		return MsgScheduleMissing
	}

	monday := startOfWeek(ref)
	nextMonday := monday.AddDate(0, 0, 7)

	byDay := make(map[time.Time][]scraper.Lesson)
	for _, lesson := range lessons {
		day := dayKey(lesson.Date)
		if day.Before(monday) || !day.Before(nextMonday) {
			continue
		}
		byDay[day] = append(byDay[day], lesson)
	}
	if len(byDay) == 0 {
		return MsgWeekEmpty
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s, %s\n", weekdayNames[day.Weekday()], day.Format("02.01.2006"))

		dayLessons := byDay[day]
		sort.Slice(dayLessons, func(i, j int) bool { return dayLessons[i].Start.Before(dayLessons[j].Start) })
		for _, lesson := range dayLessons {
			b.WriteString(formatLesson(lesson))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatLesson renders one line of the digest, omitting absent segments.
func formatLesson(l scraper.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s–%s %s", l.Start.Format("15:04"), l.End.Format("15:04"), l.Title)
	if l.Kind != "" {
		fmt.Fprintf(&b, " (%s)", l.Kind)
	}
	if l.Teacher != "" {
		fmt.Fprintf(&b, " — %s", l.Teacher)
	}
	if l.Room != "" {
		fmt.Fprintf(&b, " [%s]", l.Room)
	}
	return b.String()
}

// startOfWeek returns the Monday of the week containing ref, as a bare date.
func startOfWeek(ref time.Time) time.Time {
	day := dayKey(ref)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// dayKey strips the time-of-day and location so dates compare as civil dates.
func dayKey(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
