package models

// Settings is the single global configuration document. Persisted blobs may
// lack newly added options; loading unmarshals the stored doc over
// DefaultSettings so every field always carries a value.
type Settings struct {
	DisplayScale    float64 `json:"displayScale"`
	PlaybackSpeed   float64 `json:"playbackSpeed"`
	Autoplay        bool    `json:"autoplay"`
	AutoplayDelayMS int     `json:"autoplayDelayMs"`
	VoiceGender     string  `json:"voiceGender"`
}

func DefaultSettings() Settings {
	return Settings{
		DisplayScale:    1.0,
		PlaybackSpeed:   1.0,
		Autoplay:        false,
		AutoplayDelayMS: 2000,
		VoiceGender:     "FEMALE",
	}
}
