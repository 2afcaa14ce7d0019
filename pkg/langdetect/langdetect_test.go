package langdetect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   string
	}{
		{
			name:   "english",
			sample: "The Leaning Tower of Pisa is the freestanding bell tower of the cathedral of the Italian city of Pisa",
			want:   "en",
		},
		{
			name:   "italian",
			sample: "La torre pendente di Pisa è il campanile della cattedrale di Santa Maria Assunta",
			want:   "it",
		},
		{
			name:   "german",
			sample: "Der Schiefe Turm von Pisa ist der Glockenturm des Doms in der italienischen Stadt Pisa",
			want:   "de",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.sample)
			if !ok {
				t.Fatalf("Detect(%q) not confident", tt.sample)
			}
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.sample, got, tt.want)
			}
		})
	}
}

func TestDetectEmptySample(t *testing.T) {
	if _, ok := Detect("   "); ok {
		t.Error("Detect() ok = true on empty sample")
	}
}
