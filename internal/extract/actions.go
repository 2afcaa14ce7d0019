// Package extract implements the CLI commands that fetch a page and run
// template extraction on it.
package extract

import (
	"fmt"
	"sync"

	"github.com/justfish09/Wikipedia-Template-Parser/internal/common"
	"github.com/justfish09/Wikipedia-Template-Parser/models"
	"github.com/justfish09/Wikipedia-Template-Parser/pkg/extractor"
	"github.com/justfish09/Wikipedia-Template-Parser/pkg/pagetext"
	"github.com/justfish09/Wikipedia-Template-Parser/pkg/wikiapi"
	"github.com/urfave/cli/v2"
)

// PageResult is the per-title output of the templates command.
type PageResult struct {
	Title     string            `json:"title"`
	Templates []models.Template `json:"templates,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type job struct {
	title string
}

// TemplatesAction extracts template data for every title argument,
// fanning the fetch+extract work out over a bounded worker pool.
func TemplatesAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one page title is required", 1)
	}
	titles := c.Args().Slice()

	logger := common.NewLogger(c.Bool("quiet"))
	lang := common.ResolveLang(c.String("lang"), titles[0], logger)

	client, closeCache, err := common.NewClient(c, lang, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	defer closeCache()

	opts := extractor.Options{
		SkipInvalidCoords: c.Bool("skip-bad-coords"),
		Logger:            logger,
	}
	if path := c.String("coords-config"); path != "" {
		cfg, err := models.LoadCoordsConfig(path)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		opts.ExtraCoords = cfg.ExtraCoords
	}
	ext := extractor.New(opts)

	workerCount := c.Int("workers")
	if workerCount <= 0 {
		workerCount = 4
	}
	if workerCount > len(titles) {
		workerCount = len(titles)
	}

	jobs := make(chan job, len(titles))
	results := make(chan PageResult, len(titles))

	var wg sync.WaitGroup
	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range jobs {
				logger.Info("extracting templates", "worker", id, "title", j.title)
				results <- extractPage(c, client, ext, j.title)
			}
		}(w)
	}

	for _, title := range titles {
		jobs <- job{title: title}
	}
	close(jobs)
	wg.Wait()
	close(results)

	byTitle := make(map[string]PageResult, len(titles))
	failed := 0
	for res := range results {
		if res.Error != "" {
			failed++
		}
		byTitle[res.Title] = res
	}

	// Emit in argument order regardless of worker completion order.
	ordered := make([]PageResult, 0, len(titles))
	for _, title := range titles {
		ordered = append(ordered, byTitle[title])
	}
	if err := common.PrintJSON(ordered); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d pages failed", failed, len(titles)), 1)
	}
	return nil
}

func extractPage(c *cli.Context, client *wikiapi.Client, ext *extractor.Extractor, title string) PageResult {
	result := PageResult{Title: title}

	text, err := client.Wikitext(c.Context, title)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	templates, err := ext.Extract(text)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Templates = templates
	return result
}

// WikitextAction dumps the raw wikitext of a single page.
func WikitextAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one page title is required", 1)
	}
	title := c.Args().First()

	logger := common.NewLogger(c.Bool("quiet"))
	lang := common.ResolveLang(c.String("lang"), title, logger)

	client, closeCache, err := common.NewClient(c, lang, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	defer closeCache()

	text, err := client.Wikitext(c.Context, title)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Println(text)
	return nil
}

// TextAction prints the readable plain text of the rendered page.
func TextAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one page title is required", 1)
	}
	title := c.Args().First()

	logger := common.NewLogger(c.Bool("quiet"))
	lang := common.ResolveLang(c.String("lang"), title, logger)

	client, closeCache, err := common.NewClient(c, lang, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	defer closeCache()

	html, err := client.RenderedHTML(c.Context, title)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	text, err := pagetext.FromHTML(client.PageURL(title), html)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Println(text)
	return nil
}
