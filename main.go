package main

import (
	"log"
	"os"

	"github.com/justfish09/Wikipedia-Template-Parser/internal/extract"
	"github.com/justfish09/Wikipedia-Template-Parser/internal/listing"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wtp",
		Usage: "extract structured data from Wikipedia templates",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "Wikipedia language code, or 'auto' to detect from the first title",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "path of the revision cache database (default: next to the binary)",
			},
			&cli.StringFlag{
				Name:  "cache-ttl",
				Value: "24h",
				Usage: "how long cached wikitext stays fresh",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "bypass the revision cache entirely",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "templates",
				Usage:     "extract template data from one or more pages",
				ArgsUsage: "<title>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "coords-config",
						Usage: "YAML file mapping template names to coordinate field groups",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "number of concurrent page fetches",
					},
					&cli.BoolFlag{
						Name:  "skip-bad-coords",
						Usage: "drop coord templates that fail conversion instead of failing the page",
					},
				},
				Action: extract.TemplatesAction,
			},
			{
				Name:      "wikitext",
				Usage:     "print the raw wikitext of a page",
				ArgsUsage: "<title>",
				Action:    extract.WikitextAction,
			},
			{
				Name:      "text",
				Usage:     "print the readable plain text of a page",
				ArgsUsage: "<title>",
				Action:    extract.TextAction,
			},
			{
				Name:      "embedded-in",
				Usage:     "list pages that use a template",
				ArgsUsage: "<template>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "include-users-and-templates",
						Usage: "keep user and template namespace pages in the listing",
					},
				},
				Action: listing.EmbeddedInAction,
			},
			{
				Name:      "category",
				Usage:     "list article pages in a category tree",
				ArgsUsage: "<category>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "depth",
						Usage: "how many subcategory levels to descend",
					},
				},
				Action: listing.CategoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
