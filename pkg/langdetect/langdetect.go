// Package langdetect guesses which Wikipedia language edition a text
// sample belongs to, backing the CLI's `--lang auto` mode.
package langdetect

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Candidate languages cover the largest Wikipedia editions. Keeping the
// set small keeps the detector's model footprint down.
var candidates = []lingua.Language{
	lingua.English,
	lingua.Italian,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Polish,
	lingua.Swedish,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

var (
	once     sync.Once
	detector lingua.LanguageDetector
)

// The detector loads language models on first use, so build it lazily.
func get() lingua.LanguageDetector {
	once.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build()
	})
	return detector
}

// Detect returns the lowercase ISO 639-1 code of the dominant language of
// sample, which doubles as the Wikipedia subdomain for every candidate
// language. It reports false when no candidate fits.
func Detect(sample string) (string, bool) {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return "", false
	}
	language, ok := get().DetectLanguageOf(sample)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
