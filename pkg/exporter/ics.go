// Package exporter serializes week schedules into iCalendar documents in two
// dialects: a "mobile" variant with local timestamps, colors and reminders,
// and a "google" variant with plain UTC instants for Google Calendar import.
package exporter

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"raspctl/pkg/scraper"
	"raspctl/pkg/timezone"
)

// Calendar dialect names returned by Build.
const (
	DialectMobile = "mobile"
	DialectGoogle = "google"
)

// ErrNoLessons reports that the schedule holds no events to serialize.
var ErrNoLessons = errors.New("exporter: schedule contains no lessons")

const (
	calendarName = "Расписание РЭУ"
	uidDomain    = "rasp.rea.ru"
	prodID       = "-//raspctl//rasp.rea.ru//RU"

	utcLayout   = "20060102T150405Z"
	localLayout = "20060102T150405"
)

// kindColors assigns COLOR hints in the mobile dialect, keyed by summary label.
var kindColors = map[string]string{
	"Л": "#5484ED",
	"С": "#51B749",
	"Э": "#DC2127",
}

// moscowVTimezone is a fixed MSK definition; Moscow has had no DST
// transitions since 2014, so a single STANDARD block suffices.
var moscowVTimezone = []string{
	"BEGIN:VTIMEZONE",
	"TZID:" + timezone.MoscowName,
	"BEGIN:STANDARD",
	"DTSTART:19300101T000000",
	"TZOFFSETFROM:+0300",
	"TZOFFSETTO:+0300",
	"TZNAME:MSK",
	"END:STANDARD",
	"END:VTIMEZONE",
}

// Builder converts week schedules into calendar byte streams. Loc is the
// schedule timezone and Now supplies DTSTAMP values; both are explicit so
// tests can pin them.
type Builder struct {
	Loc *time.Location
	Now func() time.Time
}

// NewBuilder returns a builder wired to the Moscow timezone and wall clock.
func NewBuilder() *Builder {
	return &Builder{Loc: timezone.Moscow(), Now: time.Now}
}

// entry is the dialect-independent rendering of one lesson.
type entry struct {
	uid         string
	summary     string
	description string
	location    string
	start       time.Time
	end         time.Time
	color       string
	alarms      []string
}

// Build serializes the schedule into both dialects, keyed by dialect name.
// An empty schedule yields ErrNoLessons rather than a silently empty calendar.
func (b *Builder) Build(schedule *scraper.WeekSchedule) (map[string][]byte, error) {
	if schedule.Empty() {
		return nil, ErrNoLessons
	}

	entries := b.entries(schedule.Sorted())
	return map[string][]byte{
		DialectMobile: b.encode(DialectMobile, entries),
		DialectGoogle: b.encode(DialectGoogle, entries),
	}, nil
}

func (b *Builder) encode(dialect string, entries []entry) []byte {
	switch dialect {
	case DialectMobile:
		return b.encodeMobile(entries)
	case DialectGoogle:
		return b.encodeGoogle(entries)
	default:
		panic(fmt.Sprintf("exporter: unknown calendar dialect %q", dialect))
	}
}

// entries runs the shared per-event transformation once; the dialect encoders
// only differ in how they write these fields out.
func (b *Builder) entries(lessons []scraper.Lesson) []entry {
	counter := make(summaryCounter)
	out := make([]entry, 0, len(lessons))
	for _, lesson := range lessons {
		label := kindLabel(lesson.Kind)
		out = append(out, entry{
			uid:         lessonUID(lesson),
			summary:     summaryText(label, counter.next(label), lesson.Title),
			description: describeLesson(lesson),
			location:    lesson.Room,
			start:       lesson.Start,
			end:         lesson.End,
			color:       kindColors[label],
			alarms:      alarmTriggers(lesson.Pair),
		})
	}
	return out
}

// describeLesson joins the optional detail fields into labelled lines.
func describeLesson(l scraper.Lesson) string {
	var parts []string
	if l.Teacher != "" {
		parts = append(parts, "Преподаватель: "+l.Teacher)
	}
	if l.Room != "" {
		parts = append(parts, "Аудитория: "+l.Room)
	}
	if l.ExtraInfo != "" {
		parts = append(parts, l.ExtraInfo)
	}
	return strings.Join(parts, "\n")
}

// lessonUID prefers the source element id and otherwise derives a stable
// content hash, so repeated exports of the same lesson produce identical
// identifiers and calendar apps can deduplicate on re-import.
func lessonUID(l scraper.Lesson) string {
	if l.ElementID != "" {
		return fmt.Sprintf("%s@%s", l.ElementID, uidDomain)
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", l.Title, l.Start.Format(time.RFC3339), l.End.Format(time.RFC3339))
	return fmt.Sprintf("%x@%s", h.Sum64(), uidDomain)
}

// alarmTriggers implements the reminder policy: mid-day pairs 2 and 3 sit
// close together and get a single short reminder, every other slot also gets
// an early one to allow for travel time.
func alarmTriggers(pair int) []string {
	if pair == 2 || pair == 3 {
		return []string{"-PT10M"}
	}
	return []string{"-PT70M", "-PT10M"}
}

// encodeGoogle renders the UTC dialect with no extension properties.
func (b *Builder) encodeGoogle(entries []entry) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := b.Now()
	for _, e := range entries {
		event := cal.AddEvent(e.uid)
		event.SetDtStampTime(now)
		event.SetStartAt(e.start.UTC())
		event.SetEndAt(e.end.UTC())
		event.SetSummary(e.summary)
		event.SetDescription(e.description)
		event.SetLocation(e.location)
	}

	var buf bytes.Buffer
	// Serialization into a memory buffer cannot fail.
	_ = cal.SerializeTo(&buf)
	return buf.Bytes()
}

// encodeMobile renders the local-timezone dialect with an explicit VTIMEZONE
// block, per-kind COLOR hints and VALARM reminders.
func (b *Builder) encodeMobile(entries []entry) []byte {
	var buf bytes.Buffer
	writeLine := func(line string) {
		buf.WriteString(line)
		buf.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:" + prodID)
	writeLine("CALSCALE:GREGORIAN")
	writeLine("METHOD:PUBLISH")
	writeLine("X-WR-CALNAME:" + escapeText(calendarName))
	writeLine("X-WR-TIMEZONE:" + timezone.MoscowName)
	for _, line := range moscowVTimezone {
		writeLine(line)
	}

	stamp := b.Now().UTC().Format(utcLayout)
	for _, e := range entries {
		writeLine("BEGIN:VEVENT")
		writeLine("UID:" + e.uid)
		writeLine("DTSTAMP:" + stamp)
		writeLine("SUMMARY:" + escapeText(e.summary))
		writeLine(fmt.Sprintf("DTSTART;TZID=%s:%s", timezone.MoscowName, e.start.In(b.Loc).Format(localLayout)))
		writeLine(fmt.Sprintf("DTEND;TZID=%s:%s", timezone.MoscowName, e.end.In(b.Loc).Format(localLayout)))
		writeLine("DESCRIPTION:" + escapeText(e.description))
		writeLine("LOCATION:" + escapeText(e.location))
		if e.color != "" {
			writeLine("COLOR:" + e.color)
		}
		for _, trigger := range e.alarms {
			writeLine("BEGIN:VALARM")
			writeLine("ACTION:DISPLAY")
			writeLine("TRIGGER:" + trigger)
			writeLine("DESCRIPTION:Напоминание")
			writeLine("END:VALARM")
		}
		writeLine("END:VEVENT")
	}
	writeLine("END:VCALENDAR")
	return buf.Bytes()
}
