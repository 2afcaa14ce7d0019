// Package pagetext distills a wiki page's rendered HTML down to readable
// plain text, so the CLI can show what a page says next to the structured
// data its templates encode.
package pagetext

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// FromHTML extracts the main article text of an HTML document. pageURL is
// the canonical URL of the page, which the readability pass uses to
// resolve relative references.
func FromHTML(pageURL, html string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page url: %w", err)
	}

	// Let go-readability isolate the main content first.
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", fmt.Errorf("readability parse failed: %w", err)
	}

	content := article.Content
	if strings.TrimSpace(content) == "" {
		// Thin pages can defeat readability's heuristics; fall back to
		// the raw document.
		content = html
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Navigation boxes, edit links and reference lists only add noise.
	doc.Find(".navbox, .mw-editsection, .reflist, .reference, style, script").Remove()

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return normalizeText(doc.Text()), nil
	}
	return strings.Join(blocks, "\n"), nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
