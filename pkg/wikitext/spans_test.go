package wikitext

import "testing"

func TestSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "no templates",
			in:   "just plain prose with [[links]]",
			want: nil,
		},
		{
			name: "single template",
			in:   "before {{coord|45.5|9.2}} after",
			want: []string{"{{coord|45.5|9.2}}"},
		},
		{
			name: "two templates in order",
			in:   "{{First|a}} middle {{Second|b}}",
			want: []string{"{{First|a}}", "{{Second|b}}"},
		},
		{
			name: "nested stays whole",
			in:   "{{Outer|{{Inner|x|y}}|z}}",
			want: []string{"{{Outer|{{Inner|x|y}}|z}}"},
		},
		{
			name: "unclosed span dropped",
			in:   "{{Broken|a",
			want: nil,
		},
		{
			name: "stray closer ignored",
			in:   "}} {{Fine|1}}",
			want: []string{"{{Fine|1}}"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spans(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Spans(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Spans(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
