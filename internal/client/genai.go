package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
)

const genAIEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

type GenAIAPI struct {
	apiKey string
	model  string
}

func NewGenAIAPI(apiKey, model string) *GenAIAPI {
	return &GenAIAPI{apiKey: apiKey, model: model}
}

// GenerateWords asks the model for new vocabulary entries. The result is left
// as raw decoded objects: the repair pass owns shaping them into records, so
// a model that drops a field does not fail the whole batch.
func (g *GenAIAPI) GenerateWords(ctx context.Context, langName, category string, count int, exclude []string) ([]map[string]any, error) {
	prompt := buildWordsPrompt(langName, category, count, exclude)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSONArray(text)
	if err != nil {
		return nil, fmt.Errorf("unexpected words response: %w", err)
	}

	var raws []map[string]any
	if err := json.Unmarshal([]byte(payload), &raws); err != nil {
		return nil, fmt.Errorf("failed to decode words response: %w", err)
	}

	return raws, nil
}

// GenerateArticles asks the model for short learner-level news items in the
// target language.
func (g *GenAIAPI) GenerateArticles(ctx context.Context, langName string) ([]models.Article, error) {
	prompt := buildNewsPrompt(langName)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSONArray(text)
	if err != nil {
		return nil, fmt.Errorf("unexpected news response: %w", err)
	}

	var articles []models.Article
	if err := json.Unmarshal([]byte(payload), &articles); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	return articles, nil
}

func (g *GenAIAPI) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := models.GenAIRequest{
		Contents: []models.GenAIContent{
			{Role: "user", Parts: []models.GenAIPart{{Text: prompt}}},
		},
		GenerationConfig: models.GenAIGenConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.9,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(genAIEndpoint, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var data models.GenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}

	if data.Error != nil {
		return "", fmt.Errorf("generation request failed: %s (%s)", data.Error.Message, data.Error.Status)
	}
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty generation response")
	}

	return data.Candidates[0].Content.Parts[0].Text, nil
}

func buildWordsPrompt(langName, category string, count int, exclude []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate %d %s vocabulary entries in %s for an English-speaking learner.\n", count, category, langName)
	sb.WriteString(`Output ONLY a JSON array, no markdown, matching this schema per entry:
{
  "target": "<word or phrase in the target language>",
  "nativeMeaning": "<English meaning>",
  "phoneticGuide": "<IPA-style pronunciation>",
  "nativePronunciationGuide": "<transliterated pronunciation aid>",
  "example": {
    "target": "<example sentence in the target language>",
    "nativeMeaning": "<English translation>",
    "nativePronunciationGuide": "<transliterated pronunciation of the sentence>"
  },
  "category": "` + category + `"
}
`)

	if len(exclude) > 0 {
		sb.WriteString("\nDo NOT repeat any of these already-known words: ")
		sb.WriteString(strings.Join(exclude, ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}

func buildNewsPrompt(langName string) string {
	return fmt.Sprintf(`Write 3 short, current-events style news summaries in simple %s for a language learner.
Output ONLY a JSON array, no markdown, matching this schema per item:
{
  "title": "<headline in %s>",
  "summaryText": "<2-3 sentence summary in %s>",
  "translation": "<English translation of the summary>"
}
`, langName, langName, langName)
}

// extractJSONArray tolerates models that wrap their JSON in prose or code
// fences: it takes everything between the first '[' and the last ']'.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return s[start : end+1], nil
}
