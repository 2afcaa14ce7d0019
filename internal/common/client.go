package common

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/justfish09/Wikipedia-Template-Parser/pkg/db"
	"github.com/justfish09/Wikipedia-Template-Parser/pkg/wikiapi"
	"github.com/urfave/cli/v2"
)

// NewClient builds the API client for a command from the global flags,
// wiring in the sqlite revision cache unless --no-cache is set. The
// returned closer releases the cache database.
func NewClient(c *cli.Context, lang string, logger *slog.Logger) (*wikiapi.Client, func(), error) {
	cfg := wikiapi.Config{
		Lang:   lang,
		Logger: logger,
	}

	closer := func() {}
	if !c.Bool("no-cache") {
		ttl, err := time.ParseDuration(c.String("cache-ttl"))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid cache-ttl: %w", err)
		}

		database, err := db.Open(c.String("db"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
		}
		cfg.Cache = db.NewCache(database, ttl)
		closer = func() { _ = database.Close() }
	}

	return wikiapi.New(cfg), closer, nil
}
