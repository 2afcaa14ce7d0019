// Package wikiapi is a client for the MediaWiki web API: wikitext and
// rendered-HTML retrieval plus the paginated listing endpoints used to
// enumerate pages by template usage or category membership.
package wikiapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrPageNotFound reports a title with no revisions on the target wiki.
var ErrPageNotFound = errors.New("page not found")

// RevisionCache stores fetched wikitext keyed by language and title.
// Implemented by db.Cache; a nil cache disables caching.
type RevisionCache interface {
	Get(lang, title string) (string, bool)
	Put(lang, title, wikitext string) error
}

// Config carries the knobs for a Client. Zero values get defaults.
type Config struct {
	// Lang is the Wikipedia language subdomain, e.g. "en" or "it".
	Lang string

	// BaseURL overrides the api.php endpoint, used by tests. When empty
	// it is derived from Lang.
	BaseURL string

	HTTPClient *http.Client

	// Limit is the page size requested from listing endpoints.
	Limit int

	// MaxRetries bounds the retry loop around each request; RetryDelay
	// is the base backoff, doubled per attempt.
	MaxRetries int
	RetryDelay time.Duration

	Cache  RevisionCache
	Logger *slog.Logger
}

type Client struct {
	lang       string
	baseURL    string
	httpClient *http.Client
	limit      int
	maxRetries int
	retryDelay time.Duration
	cache      RevisionCache
	logger     *slog.Logger
}

func New(cfg Config) *Client {
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", cfg.Lang)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 500
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		lang:       cfg.Lang,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		limit:      cfg.Limit,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		cache:      cfg.Cache,
		logger:     cfg.Logger,
	}
}

// Lang returns the configured language code.
func (c *Client) Lang() string { return c.lang }

// apiError is the error envelope api.php returns with HTTP 200.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("mediawiki api error %s: %s", e.Code, e.Info)
}

// get issues one API request with bounded retry and decodes the JSON
// response into out. 5xx responses and transport failures are retried
// with doubling backoff; anything else fails immediately.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("format", "json")
	reqURL := c.baseURL + "?" + params.Encode()

	var lastErr error
	delay := c.retryDelay
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying api request", "attempt", attempt, "error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}

		body, retryable, err := c.fetch(ctx, reqURL)
		if err == nil {
			return decodeResponse(body, out)
		}
		lastErr = err
		if !retryable {
			return err
		}
	}
	return fmt.Errorf("request failed after %d attempts: %w", c.maxRetries, lastErr)
}

func (c *Client) fetch(ctx context.Context, reqURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode >= 500, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, false, nil
}

func decodeResponse(body []byte, out any) error {
	var envelope struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}
	return nil
}
