package models

// Request/response shapes for the generative language REST API.

type GenAIRequest struct {
	Contents         []GenAIContent   `json:"contents"`
	GenerationConfig GenAIGenConfig   `json:"generationConfig"`
	SafetySettings   []map[string]any `json:"safetySettings,omitempty"`
}

type GenAIContent struct {
	Role  string      `json:"role,omitempty"`
	Parts []GenAIPart `json:"parts"`
}

type GenAIPart struct {
	Text string `json:"text"`
}

type GenAIGenConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

type GenAIResponse struct {
	Candidates []struct {
		Content struct {
			Parts []GenAIPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *GenAIError `json:"error,omitempty"`
}

type GenAIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Request/response shapes for the text-to-speech REST API.

type TTSRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		SSMLGender   string `json:"ssmlGender"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string  `json:"audioEncoding"`
		SpeakingRate  float64 `json:"speakingRate,omitempty"`
	} `json:"audioConfig"`
}

type TTSResponse struct {
	AudioContent string `json:"audioContent"`
}
