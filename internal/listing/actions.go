// Package listing implements the CLI commands that enumerate pages via
// the paginated listing API.
package listing

import (
	"github.com/justfish09/Wikipedia-Template-Parser/internal/common"
	"github.com/urfave/cli/v2"
)

// EmbeddedInAction lists the pages transcluding a template.
func EmbeddedInAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one template title is required, e.g. \"Template:Infobox museum\"", 1)
	}
	template := c.Args().First()

	logger := common.NewLogger(c.Bool("quiet"))
	lang := common.ResolveLang(c.String("lang"), template, logger)

	client, closeCache, err := common.NewClient(c, lang, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	defer closeCache()

	pages, err := client.PagesWithTemplate(c.Context, template, c.Bool("include-users-and-templates"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Info("listed pages with template", "template", template, "count", len(pages))
	if err := common.PrintJSON(pages); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	return nil
}

// CategoryAction lists the article pages of a category tree.
func CategoryAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one category title is required, e.g. \"Category:Churches in Prato\"", 1)
	}
	category := c.Args().First()

	logger := common.NewLogger(c.Bool("quiet"))
	lang := common.ResolveLang(c.String("lang"), category, logger)

	client, closeCache, err := common.NewClient(c, lang, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	defer closeCache()

	pages, err := client.PagesInCategory(c.Context, category, c.Int("depth"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Info("listed category pages", "category", category, "depth", c.Int("depth"), "count", len(pages))
	if err := common.PrintJSON(pages); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	return nil
}
