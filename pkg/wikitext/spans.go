package wikitext

// Spans returns every top-level {{...}} template span in s, delimiters
// included, in document order. Nested templates stay inside their
// enclosing span. An unclosed span at end of input is dropped rather than
// reported; unmatched closers are ignored.
func Spans(s string) []string {
	var spans []string
	depth := 0
	start := 0
	for i := 0; i+1 < len(s); i++ {
		switch s[i : i+2] {
		case "{{":
			if depth == 0 {
				start = i
			}
			depth++
			i++
		case "}}":
			if depth > 0 {
				depth--
				if depth == 0 {
					spans = append(spans, s[start:i+2])
				}
			}
			i++
		}
	}
	return spans
}
