package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/anvy2024/Duolingo-sub000/internal/models"
	"go.uber.org/zap"
)

type SettingsS struct {
	repo SettingsRI
	log  *zap.Logger
}

func NewSettingsService(repo SettingsRI, log *zap.Logger) *SettingsS {
	return &SettingsS{repo: repo, log: log}
}

func (s *SettingsS) Settings(ctx context.Context) (models.Settings, error) {
	return s.repo.LoadSettings(ctx)
}

func (s *SettingsS) UpdateSettings(ctx context.Context, patch map[string]any) (models.Settings, error) {
	return s.repo.UpdateSettings(ctx, patch)
}

func FormatSettings(s models.Settings) string {
	var sb strings.Builder

	sb.WriteString("⚙️ *Settings*\n\n")
	sb.WriteString(fmt.Sprintf("🔊 Playback speed: %.2fx\n", s.PlaybackSpeed))
	sb.WriteString(fmt.Sprintf("🔠 Display scale: %.1fx\n", s.DisplayScale))

	autoplay := "off"
	if s.Autoplay {
		autoplay = "on"
	}
	sb.WriteString(fmt.Sprintf("▶️ Autoplay: %s (delay %dms)\n", autoplay, s.AutoplayDelayMS))
	sb.WriteString(fmt.Sprintf("🗣 Voice: %s", strings.ToLower(s.VoiceGender)))

	return sb.String()
}
