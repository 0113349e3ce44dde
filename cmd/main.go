package main

import (
	"context"
	"log"
	"time"

	"github.com/anvy2024/Duolingo-sub000/internal/bot"
	"github.com/anvy2024/Duolingo-sub000/internal/client"
	"github.com/anvy2024/Duolingo-sub000/internal/config"
	"github.com/anvy2024/Duolingo-sub000/internal/repository"
	"github.com/anvy2024/Duolingo-sub000/internal/service"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/cache"
	"github.com/anvy2024/Duolingo-sub000/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	clients := client.InitClients(cfg.AI)
	cache := cache.NewCache()
	services := service.InitServices(clients, repos, cache, logger)

	hydrateSnippets(repos, cache, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}

// hydrateSnippets warms the audio cache from the store so previously
// synthesized words play without another API call.
func hydrateSnippets(repos repository.Repository, c *cache.Cache, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snippets, err := repos.LoadAllSnippets(ctx)
	if err != nil {
		logger.Warn("failed to hydrate audio cache", zap.Error(err))
		return
	}

	c.ReplaceSnippets(snippets)
	logger.Info("audio cache hydrated", zap.Int("snippets", len(snippets)))
}
