package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
)

const ttsEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize?key=%s"

var ttsVoiceCodes = map[string]string{
	"en": "en-US",
	"fr": "fr-FR",
	"de": "de-DE",
	"es": "es-ES",
	"ja": "ja-JP",
	"zh": "cmn-CN",
}

type TTSAPI struct {
	apiKey string
	gender string
}

func NewTTSAPI(apiKey, gender string) *TTSAPI {
	if gender == "" {
		gender = "FEMALE"
	}
	return &TTSAPI{apiKey: apiKey, gender: gender}
}

// Synthesize returns the spoken form of text as a base64 data URI.
func (t *TTSAPI) Synthesize(ctx context.Context, text, lang string, rate float64) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("tts is not configured")
	}

	voiceCode, ok := ttsVoiceCodes[lang]
	if !ok {
		voiceCode = "en-US"
	}

	var reqBody models.TTSRequest
	reqBody.Input.Text = text
	reqBody.Voice.LanguageCode = voiceCode
	reqBody.Voice.SSMLGender = t.gender
	reqBody.AudioConfig.AudioEncoding = "MP3"
	reqBody.AudioConfig.SpeakingRate = rate

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf(ttsEndpoint, t.apiKey), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tts request failed: %s", resp.Status)
	}

	var data models.TTSResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode tts response: %w", err)
	}
	if data.AudioContent == "" {
		return "", fmt.Errorf("empty tts response")
	}

	return "data:audio/mp3;base64," + data.AudioContent, nil
}
