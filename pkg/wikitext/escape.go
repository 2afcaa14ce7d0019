package wikitext

import (
	"regexp"
	"strings"
)

// pipePlaceholder temporarily stands in for parameter separators inside a
// nested template so the outer split does not fracture it. A private-use
// rune cannot collide with legitimate wikitext, and RestorePipes puts the
// separators back after the split, so the substitution is reversible.
const pipePlaceholder = "\uF8FF"

// innermost template spans: no brace appears before the closing one
var innerTemplate = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// EscapeNested rewrites the parameter separators of every complete
// template occurrence found inside body, leaving the {{ }} delimiters
// intact. body is a template's interior, already normalized.
func EscapeNested(body string) string {
	return innerTemplate.ReplaceAllStringFunc(body, func(m string) string {
		return strings.ReplaceAll(m, "|", pipePlaceholder)
	})
}

// RestorePipes undoes EscapeNested's substitution.
func RestorePipes(s string) string {
	return strings.ReplaceAll(s, pipePlaceholder, "|")
}
