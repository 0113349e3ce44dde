package models

// SnippetRow is one persisted audio snippet: trimmed source text mapped to a
// base64 data-URI payload.
type SnippetRow struct {
	TextKey string `db:"text_key"`
	Payload string `db:"payload"`
}
