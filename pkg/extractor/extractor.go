// Package extractor drives template extraction over a page's wikitext:
// span discovery, normalization, nested-template escaping, tokenizing and
// coordinate post-processing, one occurrence per template span in
// document order.
package extractor

import (
	"fmt"
	"log/slog"

	"github.com/justfish09/Wikipedia-Template-Parser/models"
	"github.com/justfish09/Wikipedia-Template-Parser/pkg/coord"
	"github.com/justfish09/Wikipedia-Template-Parser/pkg/wikitext"
)

// Options configures an Extractor.
type Options struct {
	// ExtraCoords maps a normalized template name to the field groups
	// that encode a coordinate on that template; matching occurrences
	// get lat/lon merged into their data when the fields parse.
	ExtraCoords map[string][][]string

	// SkipInvalidCoords drops a coord occurrence whose parameters fail
	// conversion instead of failing the whole extraction.
	SkipInvalidCoords bool

	// OptionalCoordParams overrides coord.DefaultOptionalParams.
	OptionalCoordParams []string

	Logger *slog.Logger
}

type Extractor struct {
	opts     Options
	resolver *coord.Resolver
	logger   *slog.Logger
}

func New(opts Options) *Extractor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		opts:     opts,
		resolver: coord.NewResolver(opts.OptionalCoordParams...),
		logger:   logger,
	}
}

// Extract returns the data of every template occurrence in text, in
// document order. A page with no templates yields an empty result.
// Malformed markup degrades to best-effort text, it never fails; the only
// error source is coordinate conversion, and only when SkipInvalidCoords
// is off.
func (e *Extractor) Extract(text string) ([]models.Template, error) {
	content := wikitext.CollapseWhitespace(text)

	templates := []models.Template{}
	for _, span := range wikitext.Spans(content) {
		body := span[2 : len(span)-2]
		body = wikitext.Normalize(body)
		body = wikitext.EscapeNested(body)
		tpl := wikitext.Tokenize(body)

		name := wikitext.NormalizeName(tpl.Name)
		switch {
		case name == coord.TemplateName:
			coords, err := e.resolver.Resolve(tpl.Data)
			if err != nil {
				if e.opts.SkipInvalidCoords {
					e.logger.Warn("skipping unconvertible coord template", "error", err)
					continue
				}
				return nil, fmt.Errorf("template %q: %w", tpl.Name, err)
			}
			tpl.Data = coords.Params()
		case e.opts.ExtraCoords != nil:
			if groups, ok := e.opts.ExtraCoords[name]; ok {
				coord.Augment(tpl.Data, groups, e.logger)
			}
		}

		templates = append(templates, tpl)
	}
	return templates, nil
}
