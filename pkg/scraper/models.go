package scraper

import (
	"sort"
	"time"
)

// Lesson represents a single timetabled class occurrence. Start and End are
// full timestamps in the schedule timezone; Pair is the 1-based slot ordinal
// within the day, 0 when unknown.
type Lesson struct {
	Date      time.Time
	Start     time.Time
	End       time.Time
	Title     string
	Kind      string // free-text lesson type, e.g. "Лекция"
	Teacher   string
	Room      string
	ExtraInfo string
	ElementID string
	Pair      int
}

// WeekSchedule is one group's full event set for a single fetch.
type WeekSchedule struct {
	Group     string
	SourceURL string
	Lessons   []Lesson
}

// Sorted returns the lessons ordered by start time.
func (s *WeekSchedule) Sorted() []Lesson {
	out := make([]Lesson, len(s.Lessons))
	copy(out, s.Lessons)
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// Empty reports whether the fetch produced no lessons.
func (s *WeekSchedule) Empty() bool {
	return s == nil || len(s.Lessons) == 0
}
