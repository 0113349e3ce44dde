package models

// Article is one generated news item inside a language partition. Title is
// the natural dedup key: append drops a second article with the same title,
// merge-restore overwrites it instead.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	SummaryText string `json:"summaryText"`
	Translation string `json:"translation"`
	Date        string `json:"date"`
}

// NormalizeTitle produces the comparison key for article deduplication.
func NormalizeTitle(s string) string {
	return NormalizeTarget(s)
}
