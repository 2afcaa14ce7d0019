package wikiapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type revisionsResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			Revisions []struct {
				Content string `json:"*"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

// Wikitext returns the raw markup of the latest revision of title,
// following redirects. A title with no revisions fails with
// ErrPageNotFound.
func (c *Client) Wikitext(ctx context.Context, title string) (string, error) {
	title = NormalizeTitle(title)

	if c.cache != nil {
		if text, ok := c.cache.Get(c.lang, title); ok {
			c.logger.Debug("revision cache hit", "title", title, "lang", c.lang)
			return text, nil
		}
	}

	params := url.Values{
		"action":    {"query"},
		"prop":      {"revisions"},
		"titles":    {title},
		"rvprop":    {"content"},
		"rvlimit":   {"1"},
		"redirects": {"1"},
	}

	var resp revisionsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return "", err
	}

	for _, page := range resp.Query.Pages {
		if len(page.Revisions) > 0 {
			text := page.Revisions[0].Content
			if c.cache != nil {
				if err := c.cache.Put(c.lang, title, text); err != nil {
					c.logger.Warn("failed to cache revision", "title", title, "error", err)
				}
			}
			return text, nil
		}
	}
	return "", fmt.Errorf("page %q does not exist on %s.wikipedia: %w", title, c.lang, ErrPageNotFound)
}

type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
}

// RenderedHTML returns the page rendered to HTML by the wiki itself.
func (c *Client) RenderedHTML(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":        {"parse"},
		"page":          {NormalizeTitle(title)},
		"prop":          {"text"},
		"redirects":     {"1"},
		"formatversion": {"2"},
	}

	var resp parseResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return "", err
	}
	if resp.Parse.Text == "" {
		return "", fmt.Errorf("page %q has no rendered text on %s.wikipedia: %w", title, c.lang, ErrPageNotFound)
	}
	return resp.Parse.Text, nil
}

// PageURL returns the canonical article URL for title.
func (c *Client) PageURL(title string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s", c.lang, url.PathEscape(NormalizeTitle(title)))
}

// NormalizeTitle folds spaces to underscores, the canonical form of a
// MediaWiki page title.
func NormalizeTitle(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
}
