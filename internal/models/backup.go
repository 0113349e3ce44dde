package models

import "encoding/json"

const BackupVersion = 2

// BackupDoc is the portable multi-language export format. Vocab and news
// stay as raw JSON so imports can run arbitrary shapes through repair
// instead of failing on a strict decode.
type BackupDoc struct {
	Version         int                     `json:"version"`
	Type            string                  `json:"type"`
	Timestamp       int64                   `json:"timestamp"`
	Settings        map[string]any          `json:"settings"`
	SnippetMap      map[string]string       `json:"snippetMap"`
	PerLanguageData map[string]LanguageData `json:"perLanguageData"`
}

type LanguageData struct {
	Vocab json.RawMessage `json:"vocab"`
	News  json.RawMessage `json:"news"`
}
