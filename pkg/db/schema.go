package db

const schema = `
CREATE TABLE IF NOT EXISTS revisions (
    lang       TEXT NOT NULL,
    title      TEXT NOT NULL,
    wikitext   TEXT NOT NULL,
    fetched_at INTEGER NOT NULL,
    PRIMARY KEY (lang, title)
);

CREATE INDEX IF NOT EXISTS idx_revisions_fetched_at ON revisions(fetched_at);
`
