package wikitext

import "testing"

func TestCleanLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain link", "[[A]]", "A"},
		{"piped link", "[[A|B]]", "B"},
		{"mixed", "See [[A|B]] and [[C]]", "See B and C"},
		{"no links", "nothing to do", "nothing to do"},
		{"adjacent links", "[[X]][[Y|Z]]", "XZ"},
		{"unbalanced left alone", "[[broken", "[[broken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanLinks(tt.in); got != tt.want {
				t.Errorf("CleanLinks(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripRefs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markup", "plain text stays", "plain text stays"},
		{"simple ref", `before <ref>cited source</ref> after`, "before after"},
		{"named ref", `x <ref name="a">note</ref> y`, "x y"},
		{"self closing ref", `x <ref name="a" /> y`, "x y"},
		{"other tags kept", `a <small>fine print</small> b`, "a fine print b"},
		{"ref inside element", `<span>keep <ref>drop</ref> this</span>`, "keep this"},
		{"unclosed ref drops rest", `head <ref>tail`, "head"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripRefs(tt.in); got != tt.want {
				t.Errorf("StripRefs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"See [[A|B]] and [[C]] <ref>src</ref>",
		"Infobox|Name=Foo|Population=100",
		"already clean text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent on %q: %q != %q", in, once, twice)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	in := "a\n  b\t\tc  \n d"
	if got := CollapseWhitespace(in); got != "a b c d" {
		t.Errorf("CollapseWhitespace(%q) = %q", in, got)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Coord", "coord"},
		{"COORD", "coord"},
		{"Infobox_museum", "infobox museum"},
		{"coord", "coord"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
