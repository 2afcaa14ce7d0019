package wikiapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// skipPrefixes are the reserved namespace prefixes excluded from
// template-usage listings, with the Italian localized variants.
var skipPrefixes = []string{
	"user:",
	"utente:",
	"user talk:",
	"discussioni utente:",
	"template:",
	"template talk:",
	"discussioni template:",
}

const (
	nsArticle  = 0
	nsCategory = 14
)

type pageRef struct {
	Title string `json:"title"`
	NS    int    `json:"ns"`
}

type listResponse struct {
	Continue map[string]string `json:"continue"`
	Query    struct {
		EmbeddedIn      []pageRef `json:"embeddedin"`
		CategoryMembers []pageRef `json:"categorymembers"`
	} `json:"query"`
}

// PagesWithTemplate lists every page that transcludes template, which is
// a prefixed title like "Template:Infobox museum". Titles in user and
// template namespaces are skipped unless includeUsersAndTemplates is set.
// The continuation token loop runs until the API stops returning one.
func (c *Client) PagesWithTemplate(ctx context.Context, template string, includeUsersAndTemplates bool) ([]string, error) {
	var pages []string
	token := ""
	for {
		params := url.Values{
			"action":  {"query"},
			"list":    {"embeddedin"},
			"eititle": {NormalizeTitle(template)},
			"eilimit": {strconv.Itoa(c.limit)},
		}
		if token != "" {
			params.Set("eicontinue", token)
		}

		var resp listResponse
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, err
		}

		for _, page := range resp.Query.EmbeddedIn {
			if !includeUsersAndTemplates && hasSkippedPrefix(page.Title) {
				continue
			}
			pages = append(pages, page.Title)
		}

		token = resp.Continue["eicontinue"]
		if token == "" {
			return pages, nil
		}
	}
}

func hasSkippedPrefix(title string) bool {
	lower := strings.ToLower(title)
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// PagesInCategory lists the article pages in category and, up to maxDepth
// levels down, in its subcategories. category is a prefixed title like
// "Category:Churches in Prato". A visited set guards against category
// cycles: each category is marked before its subtree is walked, so a
// cycle is descended at most once.
func (c *Client) PagesInCategory(ctx context.Context, category string, maxDepth int) ([]string, error) {
	visited := make(map[string]bool)
	return c.categoryPages(ctx, NormalizeTitle(category), maxDepth, visited)
}

func (c *Client) categoryPages(ctx context.Context, category string, depth int, visited map[string]bool) ([]string, error) {
	visited[category] = true

	var pages []string
	var subcats []string
	token := ""
	for {
		params := url.Values{
			"action":  {"query"},
			"list":    {"categorymembers"},
			"cmtitle": {category},
			"cmlimit": {strconv.Itoa(c.limit)},
		}
		if token != "" {
			params.Set("cmcontinue", token)
		}

		var resp listResponse
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, err
		}

		for _, member := range resp.Query.CategoryMembers {
			switch member.NS {
			case nsArticle:
				pages = append(pages, member.Title)
			case nsCategory:
				subcats = append(subcats, NormalizeTitle(member.Title))
			}
		}

		token = resp.Continue["cmcontinue"]
		if token == "" {
			break
		}
	}

	if depth <= 0 {
		return pages, nil
	}
	for _, sub := range subcats {
		if visited[sub] {
			c.logger.Debug("skipping already visited category", "category", sub)
			continue
		}
		subPages, err := c.categoryPages(ctx, sub, depth-1, visited)
		if err != nil {
			return nil, err
		}
		pages = append(pages, subPages...)
	}
	return pages, nil
}
