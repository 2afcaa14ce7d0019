// Package common holds small helpers shared by the CLI commands.
package common

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/justfish09/Wikipedia-Template-Parser/pkg/langdetect"
)

// NewLogger builds the JSON stderr logger used by every command. quiet
// raises the level to error.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ResolveLang turns the --lang flag into a concrete language code. "auto"
// detects the language of sample (usually the first page title) and falls
// back to "en" when detection is inconclusive.
func ResolveLang(lang, sample string, logger *slog.Logger) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang != "auto" {
		return lang
	}
	if code, ok := langdetect.Detect(sample); ok {
		logger.Info("detected language", "lang", code, "sample", sample)
		return code
	}
	logger.Warn("language detection inconclusive, falling back to en", "sample", sample)
	return "en"
}

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
