package scraper

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
)

// Suggestion is one entry of the site's search-bar suggestion payload.
type Suggestion struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Suggest queries the suggestion endpoint with free-form search text.
func (c *Client) Suggest(query string) ([]Suggestion, error) {
	resp, err := c.get(c.httpClient, suggestionsPath, url.Values{"searchFor": {query}})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var suggestions []Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// ResolveGroupKey finds the site's selection key for a group. A `q` query
// parameter in rawURL wins over the group text; otherwise the first
// case-insensitive exact key match from the suggestion endpoint is accepted.
// Any network trouble degrades silently to the unmodified input.
func (c *Client) ResolveGroupKey(rawURL, group string) string {
	selection := strings.TrimSpace(group)
	if fromURL := selectionFromURL(rawURL); fromURL != "" {
		selection = fromURL
	}
	if selection == "" {
		return ""
	}

	suggestions, err := c.Suggest(selection)
	if err != nil {
		slog.Warn("could not refine group key via suggestions", "group", selection, "error", err)
		return selection
	}
	for _, s := range suggestions {
		if strings.EqualFold(s.Key, selection) {
			return s.Key
		}
	}
	return selection
}

// selectionFromURL extracts the `q` parameter when the caller pasted a full
// schedule page URL instead of a bare group code.
func selectionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(u.Query().Get("q"))
}
