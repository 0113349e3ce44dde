package db

// Each language partition is stored as one JSON document. Audio snippets get
// their own table keyed by trimmed source text, shared across languages.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS vocab_docs (
	lang TEXT PRIMARY KEY,
	doc TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS news_docs (
	lang TEXT PRIMARY KEY,
	doc TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS audio_snippets (
	text_key TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);
`
