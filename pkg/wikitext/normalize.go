// Package wikitext implements the text pipeline that turns a raw template
// occurrence into a name plus ordered key/value parameters: link and
// reference stripping, nested-template escaping and tokenizing.
package wikitext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// [[Page]] -> Page
	plainLink = regexp.MustCompile(`\[\[([^|\]]+)\]\]`)
	// [[Page|displayed text]] -> displayed text
	pipedLink = regexp.MustCompile(`\[\[[^|\]]+\|([^\]]+)\]\]`)

	// The HTML parser reads a self-closing tag on a non-void element as
	// an opener, which would swallow everything after it. Drop these
	// before parsing.
	selfClosingRef = regexp.MustCompile(`(?i)<ref\b[^<>]*/\s*>`)
)

// CleanLinks removes internal-link markup from s. The no-pipe form is
// substituted first so a piped link is never processed twice.
func CleanLinks(s string) string {
	s = plainLink.ReplaceAllString(s, "${1}")
	return pipedLink.ReplaceAllString(s, "${1}")
}

// StripRefs drops every <ref> element and its subtree from s, keeping the
// trimmed text of everything else joined by single spaces. Malformed markup
// never fails: the fragment parser recovers whatever text it can.
func StripRefs(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	s = selfClosingRef.ReplaceAllString(s, " ")

	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return s
	}

	var parts []string
	for _, n := range nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
			*parts = append(*parts, t)
		}
		return
	case html.ElementNode:
		if n.Data == "ref" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// Normalize applies reference stripping then link cleaning, the order the
// extraction driver uses on every template body.
func Normalize(s string) string {
	return CleanLinks(StripRefs(s))
}

// CollapseWhitespace folds every whitespace run in s to a single space so
// multi-line parameter values tokenize the same as single-line ones.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName lower-cases a template name and folds underscores to
// spaces, the form used to recognize the coordinate template and to look
// up caller-supplied coordinate field groups.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", " ")
}
