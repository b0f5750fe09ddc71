package format

import (
	"strings"
	"testing"
	"time"

	"raspctl/pkg/scraper"
	"raspctl/pkg/timezone"
)

func lessonAt(t *testing.T, day, start, end, title string) scraper.Lesson {
	t.Helper()
	loc := timezone.Moscow()
	date, err := time.ParseInLocation("02.01.2006", day, loc)
	if err != nil {
		t.Fatalf("bad date %q: %v", day, err)
	}
	startAt, err := time.ParseInLocation("02.01.2006 15:04", day+" "+start, loc)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	endAt, err := time.ParseInLocation("02.01.2006 15:04", day+" "+end, loc)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	return scraper.Lesson{Date: date, Start: startAt, End: endAt, Title: title}
}

func TestWeekDistinguishesEmptyInputs(t *testing.T) {
	ref := time.Date(2024, 9, 4, 12, 0, 0, 0, timezone.Moscow()) // Wednesday

	missing := Week(nil, ref)
	if missing != MsgScheduleMissing {
		t.Errorf("expected schedule-missing message, got %q", missing)
	}

	outside := []scraper.Lesson{lessonAt(t, "20.09.2024", "09:00", "10:30", "Философия")}
	empty := Week(outside, ref)
	if empty != MsgWeekEmpty {
		t.Errorf("expected empty-week message, got %q", empty)
	}

	if missing == empty {
		t.Error("failed fetch and quiet week must produce distinct messages")
	}
}

func TestWeekFiltersToMondaySundayWindow(t *testing.T) {
	ref := time.Date(2024, 9, 4, 12, 0, 0, 0, timezone.Moscow()) // Wednesday

	lessons := []scraper.Lesson{
		lessonAt(t, "02.09.2024", "09:00", "10:30", "Математика"),  // Monday of the window
		lessonAt(t, "08.09.2024", "10:40", "12:10", "Информатика"), // Sunday of the window
		lessonAt(t, "01.09.2024", "09:00", "10:30", "Прошлая неделя"),
		lessonAt(t, "09.09.2024", "09:00", "10:30", "Следующая неделя"),
	}

	text := Week(lessons, ref)
	if !strings.Contains(text, "Математика") || !strings.Contains(text, "Информатика") {
		t.Errorf("window lessons missing from digest:\n%s", text)
	}
	if strings.Contains(text, "Прошлая неделя") || strings.Contains(text, "Следующая неделя") {
		t.Errorf("out-of-window lessons leaked into digest:\n%s", text)
	}
}

func TestWeekGroupsAndOrders(t *testing.T) {
	ref := time.Date(2024, 9, 2, 8, 0, 0, 0, timezone.Moscow())

	second := lessonAt(t, "02.09.2024", "10:40", "12:10", "Вторая пара")
	first := lessonAt(t, "02.09.2024", "09:00", "10:30", "Первая пара")
	tuesday := lessonAt(t, "03.09.2024", "09:00", "10:30", "Вторник")

	text := Week([]scraper.Lesson{tuesday, second, first}, ref)

	mondayIdx := strings.Index(text, "Понедельник, 02.09.2024")
	tuesdayIdx := strings.Index(text, "Вторник, 03.09.2024")
	if mondayIdx < 0 || tuesdayIdx < 0 {
		t.Fatalf("expected weekday headers in digest:\n%s", text)
	}
	if mondayIdx > tuesdayIdx {
		t.Errorf("dates are not in ascending order:\n%s", text)
	}
	if strings.Index(text, "Первая пара") > strings.Index(text, "Вторая пара") {
		t.Errorf("lessons within a day are not sorted by start time:\n%s", text)
	}
}

func TestFormatLessonOmitsAbsentSegments(t *testing.T) {
	lesson := lessonAt(t, "02.09.2024", "09:00", "10:30", "Математика")
	if got := formatLesson(lesson); got != "09:00–10:30 Математика" {
		t.Errorf("unexpected bare lesson line %q", got)
	}

	lesson.Kind = "Лекция"
	lesson.Teacher = "Иванов И.И."
	lesson.Room = "Ауд. 101"
	got := formatLesson(lesson)
	want := "09:00–10:30 Математика (Лекция) — Иванов И.И. [Ауд. 101]"
	if got != want {
		t.Errorf("formatLesson() = %q, want %q", got, want)
	}
}
