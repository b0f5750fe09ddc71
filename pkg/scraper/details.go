package scraper

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

// detailConcurrency bounds parallel detail lookups to keep the site happy.
const detailConcurrency = 4

// enrichDetails fills in teacher and extra info for lessons that carry an
// element id. Lookups for distinct lessons are independent, each writes only
// its own record, so they run concurrently.
func (c *Client) enrichDetails(lessons []Lesson) {
	var g errgroup.Group
	g.SetLimit(detailConcurrency)
	for i := range lessons {
		if lessons[i].ElementID == "" {
			continue
		}
		lesson := &lessons[i]
		g.Go(func() error {
			lesson.Teacher, lesson.ExtraInfo = c.fetchDetails(lesson.ElementID)
			return nil
		})
	}
	_ = g.Wait()
}

// fetchDetails loads the lesson detail fragment and extracts the teacher name
// and auxiliary venue info. Any failure leaves both empty.
func (c *Client) fetchDetails(elementID string) (teacher, extra string) {
	resp, err := c.get(c.detailClient, detailsPath, url.Values{"id": {elementID}})
	if err != nil {
		slog.Warn("could not load lesson details", "id", elementID, "error", err)
		return "", ""
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		slog.Warn("lesson details are not parseable", "id", elementID, "error", err)
		return "", ""
	}
	return extractDetails(doc)
}

// extractDetails pulls teacher and extra-info lines out of a detail fragment.
func extractDetails(doc *goquery.Document) (teacher, extra string) {
	body := doc.Find("div.element-info-body").First()
	if body.Length() == 0 {
		return "", ""
	}

	lines := strippedStrings(body)
	return extractTeacher(lines), extractExtraInfo(lines)
}

// extractTeacher returns the first line after a "Преподаватель" marker that is
// not the site's "school" placeholder.
func extractTeacher(lines []string) string {
	for i, line := range lines {
		if !strings.Contains(line, "Преподаватель") {
			continue
		}
		for _, candidate := range lines[i+1:] {
			if !strings.EqualFold(candidate, "school") {
				return candidate
			}
		}
	}
	return ""
}

// extractExtraInfo collects auxiliary venue lines: campus ("Площадка") entries
// and parenthesised remarks.
func extractExtraInfo(lines []string) string {
	var extras []string
	for _, line := range lines {
		if strings.HasPrefix(line, "Площадка") || strings.HasPrefix(line, "(") {
			extras = append(extras, line)
		}
	}
	return strings.Join(extras, ", ")
}
