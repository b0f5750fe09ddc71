package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"raspctl/pkg/timezone"
)

// DefaultBaseURL is the public address of the REA schedule site.
const DefaultBaseURL = "https://rasp.rea.ru"

const (
	suggestionsPath  = "/Schedule/SearchBarSuggestions"
	scheduleCardPath = "/Schedule/ScheduleCard"
	detailsPath      = "/Schedule/GetDetailsById"
)

// Client handles HTTP requests to the schedule website. One client is meant to
// live for the duration of a single fetch request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	// Detail lookups are optional enrichments, keep them on a short leash.
	detailClient *http.Client
	loc          *time.Location
}

// NewClient creates a scraper client for the given schedule site base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		detailClient: &http.Client{Timeout: 5 * time.Second},
		loc:          timezone.Moscow(),
	}
}

// NewClientForURL derives the site base from a pasted schedule page URL and
// returns a client for it. Unparseable input falls back to the default site.
func NewClientForURL(rawURL string) *Client {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return NewClient(DefaultBaseURL)
	}
	return NewClient(u.Scheme + "://" + u.Host)
}

// BaseURL returns the site address this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(client *http.Client, path string, params url.Values) (*http.Response, error) {
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// The site serves schedule fragments only to AJAX-looking requests.
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, u)
	}
	return resp, nil
}
