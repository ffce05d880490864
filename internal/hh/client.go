// Package hh is a thin client for the public hh.ru vacancy API: paginated
// keyword search, per-vacancy detail lookup and description text extraction.
// The API needs no auth, only a User-Agent header.
package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.hh.ru"

// UserAgent is sent on every request. hh.ru rejects requests without one.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/96.0.4664.110 Safari/537.36"

const maxBodyBytes = 4 * 1024 * 1024

// Client talks to the hh.ru API. All calls are blocking; a shared limiter
// keeps the sweep polite. No retries happen at this layer — failure policy
// belongs to the caller.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
	cache   *detailCache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests point it at a local server).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithRateLimit caps outgoing requests at rps per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithDetailCache enables the tiered detail cache. redisURL may be empty to
// run memory-only.
func WithDetailCache(redisURL string, ttl time.Duration) Option {
	return func(c *Client) { c.cache = newDetailCache(redisURL, ttl) }
}

// NewClient builds a Client around the injected http.Client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		http:    httpClient,
		baseURL: defaultBaseURL,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchPage fetches one zero-based page of vacancies for a keyword in an
// area. A non-2xx status is returned as an error.
func (c *Client) SearchPage(ctx context.Context, text string, area, perPage, page int) ([]Vacancy, error) {
	q := url.Values{}
	q.Set("text", text)
	q.Set("area", strconv.Itoa(area))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/vacancies?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("search %q area %d page %d: %w", text, area, page, err)
	}
	return resp.Items, nil
}

// SearchVacancies iterates pages 0..pageLimit-1 and concatenates the hits.
// Pagination stops early on the first empty page. A page failure aborts the
// loop and propagates; whatever escalation happens next is the caller's call.
func (c *Client) SearchVacancies(ctx context.Context, text string, area, perPage, pageLimit int) ([]Vacancy, error) {
	var all []Vacancy
	for page := 0; page < pageLimit; page++ {
		items, err := c.SearchPage(ctx, text, area, perPage, page)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		all = append(all, items...)
		slog.Debug("hh: page fetched",
			slog.String("text", text),
			slog.Int("area", area),
			slog.Int("page", page),
			slog.Int("items", len(items)),
		)
	}
	return all, nil
}

// Detail fetches the full posting for one vacancy id. Results are served
// from the detail cache when enabled; the same posting routinely turns up
// under several synonym searches within one sweep.
func (c *Client) Detail(ctx context.Context, id string) (*VacancyDetail, error) {
	if c.cache != nil {
		if d, ok := c.cache.get(ctx, id); ok {
			return d, nil
		}
	}

	var d VacancyDetail
	if err := c.getJSON(ctx, c.baseURL+"/vacancies/"+url.PathEscape(id), &d); err != nil {
		return nil, fmt.Errorf("vacancy %s: %w", id, err)
	}

	if c.cache != nil {
		c.cache.set(ctx, id, &d)
	}
	return &d, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hh API status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("hh API parse: %w", err)
	}
	return nil
}
