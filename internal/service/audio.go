package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	"go.uber.org/zap"
)

// AudioS serves pronunciation audio. The in-memory cache is the fast path;
// the snippet store is write-through behind it. A failed persist only costs
// durability, playback keeps working from memory.
type AudioS struct {
	tts      TTSI
	snippets SnippetRI
	settings SettingsRI
	cache    *cache.Cache
	log      *zap.Logger
}

func NewAudioService(tts TTSI, snippets SnippetRI, settings SettingsRI, cache *cache.Cache, log *zap.Logger) *AudioS {
	return &AudioS{
		tts:      tts,
		snippets: snippets,
		settings: settings,
		cache:    cache,
		log:      log,
	}
}

// Speak returns the audio payload for text, synthesizing and caching it on
// first use. The snippet key is the exact trimmed text.
func (a *AudioS) Speak(ctx context.Context, text, lang string) (string, error) {
	key := strings.TrimSpace(text)
	if key == "" {
		return "", fmt.Errorf("nothing to speak")
	}

	if payload, ok := a.cache.GetSnippet(key); ok {
		return payload, nil
	}

	rate := 1.0
	settings, err := a.settings.LoadSettings(ctx)
	if err != nil {
		a.log.Warn("failed to load settings, using default playback speed", zap.Error(err))
	} else {
		rate = settings.PlaybackSpeed
	}

	payload, err := a.tts.Synthesize(ctx, key, lang, rate)
	if err != nil {
		return "", fmt.Errorf("failed to synthesize %q: %w", key, err)
	}

	if err := a.snippets.PutSnippet(ctx, key, payload); err != nil {
		a.log.Warn("failed to persist snippet, keeping it in memory only",
			zap.String("key", key), zap.Error(err))
	}
	a.cache.SetSnippet(key, payload)

	return payload, nil
}

// Forget drops the cached audio for the given texts, both persisted and
// in-memory. Used when the owning word is deleted.
func (a *AudioS) Forget(ctx context.Context, texts ...string) {
	for _, text := range texts {
		key := strings.TrimSpace(text)
		if key == "" {
			continue
		}
		if err := a.snippets.DeleteSnippet(ctx, key); err != nil {
			a.log.Warn("failed to delete snippet", zap.String("key", key), zap.Error(err))
		}
		a.cache.DeleteSnippet(key)
	}
}
