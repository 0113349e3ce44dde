package client

import "github.com/anvy2024/Duolingo-sub000/internal/config"

type Clients struct {
	*GenAIAPI
	*TTSAPI
}

func InitClients(cfg config.AIConfig) Clients {
	return Clients{
		GenAIAPI: NewGenAIAPI(cfg.APIKey, cfg.Model),
		TTSAPI:   NewTTSAPI(cfg.TTSKey, cfg.TTSVoice),
	}
}
