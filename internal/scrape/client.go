// Package scrape fetches yearly national-championship result pages from
// the archive site and extracts per-division result tables from them.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/discstats/nationals/internal/domain/clean"
	"github.com/discstats/nationals/internal/domain/normalize"
	"github.com/discstats/nationals/internal/domain/record"
	"github.com/discstats/nationals/pkg/metrics"
)

// Default client settings.
const (
	defaultBaseURL   = "https://www.usaultimate.org"
	defaultTimeout   = 30 * time.Second
	defaultRetries   = 2
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Slice is one division's result table as extracted from a yearly
// archive page, before cleaning.
type Slice struct {
	Division string
	Table    clean.Table
}

// Client fetches archive pages over HTTP and parses them into result
// slices. It is safe for sequential reuse across years.
type Client struct {
	http      *resty.Client
	norm      *normalize.Normalizer
	baseURL   string
	userAgent string
	timeout   time.Duration
	retries   int
}

// New creates a new archive client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		norm:      normalize.New(),
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
		retries:   defaultRetries,
	}
	for _, opt := range opts {
		opt(c)
	}

	http := resty.New()
	http.SetBaseURL(c.baseURL)
	http.SetTimeout(c.timeout)
	http.SetRetryCount(c.retries)
	http.SetHeader("User-Agent", c.userAgent)
	c.http = http

	return c
}

// pagePath returns the archive page path for one year of one competitive
// division, e.g. /archives/2014_club.aspx.
func pagePath(year int, comp record.CompDivision) string {
	return fmt.Sprintf("/archives/%d_%s.aspx", year, strings.ToLower(string(comp)))
}

// FetchYear downloads the archive page for one year of one competitive
// division and extracts its per-division result tables. Division labels
// are canonicalized through the normalizer; a page whose headings do not
// line up one-to-one with its tables fails with ErrStructuralMismatch so
// the year can be skipped rather than mispaired.
func (c *Client) FetchYear(ctx context.Context, year int, comp record.CompDivision) ([]Slice, error) {
	path := pagePath(year, comp)

	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		metrics.RecordPageFetchFailure()
		return nil, fmt.Errorf("%w: %d %s: %v", ErrFetchFailed, year, comp, err)
	}
	if res.StatusCode() != 200 {
		metrics.RecordPageFetchFailure()
		return nil, fmt.Errorf("%w: %d %s: status %d", ErrFetchFailed, year, comp, res.StatusCode())
	}
	metrics.RecordPageFetched()

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: %d %s: %v", ErrFetchFailed, year, comp, err)
	}

	return c.parsePage(doc, year, comp)
}

func (c *Client) parsePage(doc *goquery.Document, year int, comp record.CompDivision) ([]Slice, error) {
	headings := divisionHeadings(doc)
	tables := resultTables(doc)

	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: %d %s", ErrNoResults, year, comp)
	}
	if len(headings) != len(tables) {
		return nil, fmt.Errorf("%w: %d %s: %d headings, %d tables",
			ErrStructuralMismatch, year, comp, len(headings), len(tables))
	}

	labels := c.norm.Divisions(headings, comp, year)
	if len(labels) != len(tables) {
		return nil, fmt.Errorf("%w: %d %s: %d of %d headings recognized",
			ErrStructuralMismatch, year, comp, len(labels), len(headings))
	}

	slices := make([]Slice, 0, len(labels))
	for i, label := range labels {
		slices = append(slices, Slice{Division: label, Table: tables[i]})
	}
	return slices, nil
}
