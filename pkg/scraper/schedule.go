package scraper

import (
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	datePattern = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})`)
	timePattern = regexp.MustCompile(`\d{1,2}:\d{2}`)
	pairPattern = regexp.MustCompile(`(\d+)\s*пара`)
)

// FetchWeek retrieves and parses the weekly schedule for a group. It never
// returns an error: any network or parse failure yields an empty schedule so
// callers can present a uniform "nothing found" outcome.
func (c *Client) FetchWeek(rawURL, group string) *WeekSchedule {
	key := c.ResolveGroupKey(rawURL, group)
	if key == "" {
		slog.Warn("empty group and URL, nothing to fetch")
		return &WeekSchedule{SourceURL: c.baseURL}
	}

	markup := c.fetchMarkup(key)
	lessons := ParseMarkup(strings.NewReader(markup), c.loc)
	c.enrichDetails(lessons)
	return &WeekSchedule{Group: key, SourceURL: c.baseURL, Lessons: lessons}
}

// fetchMarkup downloads the weekly schedule card for the resolved selection
// key. Any failure is logged and yields an empty document.
func (c *Client) fetchMarkup(selection string) string {
	resp, err := c.get(c.httpClient, scheduleCardPath, url.Values{"selection": {selection}})
	if err != nil {
		slog.Error("could not load schedule card", "selection", selection, "error", err)
		return ""
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("could not read schedule card body", "selection", selection, "error", err)
		return ""
	}
	return string(body)
}

// ParseMarkup extracts lessons from one weekly schedule card. The card renders
// one table per day with the date inside an h5 header and one a.task anchor
// per lesson. Rows that cannot be parsed are skipped with a log line; a
// malformed document yields no lessons rather than an error.
func ParseMarkup(r io.Reader, loc *time.Location) []Lesson {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		slog.Warn("schedule markup is not parseable", "error", err)
		return nil
	}

	var lessons []Lesson
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		header := dayHeader(table)
		if header.Length() == 0 {
			return
		}
		date, ok := parseHeaderDate(header.Text(), loc)
		if !ok {
			slog.Warn("table header carries no date", "header", strings.TrimSpace(header.Text()))
			return
		}
		table.Find("a.task").Each(func(_ int, anchor *goquery.Selection) {
			if lesson, ok := lessonFromRow(anchor, date, loc); ok {
				lessons = append(lessons, lesson)
			}
		})
	})
	return lessons
}

// dayHeader locates the h5 date header belonging to a day table. The site
// nests it inside the table markup, but the HTML5 parsing algorithm
// foster-parents non-row content out of tables, so the header may end up as a
// preceding sibling instead.
func dayHeader(table *goquery.Selection) *goquery.Selection {
	if header := table.Find("h5").First(); header.Length() > 0 {
		return header
	}
	return table.PrevAllFiltered("h5").First()
}

// parseHeaderDate extracts a dd.mm.yyyy date from a day-table header.
func parseHeaderDate(text string, loc *time.Location) (time.Time, bool) {
	match := datePattern.FindString(text)
	if match == "" {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("02.01.2006", match, loc)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// lessonFromRow builds one lesson from a task anchor and its enclosing row.
func lessonFromRow(anchor *goquery.Selection, date time.Time, loc *time.Location) (Lesson, bool) {
	row := anchor.Closest("tr")
	if row.Length() == 0 {
		return Lesson{}, false
	}

	start, end, pair, ok := parseTimeslot(row.Find("td").First().Text())
	if !ok {
		slog.Info("skipping row without a parseable timeslot", "lesson", strings.TrimSpace(anchor.Text()))
		return Lesson{}, false
	}

	fragments := strippedStrings(anchor)
	if len(fragments) == 0 {
		return Lesson{}, false
	}

	lesson := Lesson{
		Date:      date,
		Start:     combine(date, start, loc),
		End:       combine(date, end, loc),
		Title:     fragments[0],
		ElementID: anchor.AttrOr("data-elementid", ""),
		Pair:      pair,
	}
	if len(fragments) > 1 {
		lesson.Kind = fragments[1]
	}
	if len(fragments) > 2 {
		lesson.Room = normalizeSpace(strings.Join(fragments[2:], " "))
	}

	if !lesson.Start.Before(lesson.End) {
		slog.Info("skipping row with inverted timeslot", "lesson", lesson.Title)
		return Lesson{}, false
	}
	return lesson, true
}

// clock is a naive wall-clock time within a day.
type clock struct {
	hour, minute int
}

// parseTimeslot reads a time cell: an optional "N пара" marker plus two HH:MM
// tokens. Cells without two time tokens are rejected.
func parseTimeslot(text string) (start, end clock, pair int, ok bool) {
	times := timePattern.FindAllString(text, -1)
	if len(times) < 2 {
		return clock{}, clock{}, 0, false
	}

	start, ok = parseClock(times[0])
	if !ok {
		return clock{}, clock{}, 0, false
	}
	end, ok = parseClock(times[1])
	if !ok {
		return clock{}, clock{}, 0, false
	}

	if match := pairPattern.FindStringSubmatch(text); match != nil {
		pair, _ = strconv.Atoi(match[1])
	}
	return start, end, pair, true
}

func parseClock(token string) (clock, bool) {
	t, err := time.Parse("15:04", token)
	if err != nil {
		return clock{}, false
	}
	return clock{hour: t.Hour(), minute: t.Minute()}, true
}

func combine(date time.Time, c clock, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.hour, c.minute, 0, 0, loc)
}

// strippedStrings returns every non-empty trimmed text node under the
// selection, in document order.
func strippedStrings(sel *goquery.Selection) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				out = append(out, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return out
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
