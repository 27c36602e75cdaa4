package main

import (
	"log"

	"github.com/AngelaMMoreno/testbot.git/internal/bot"
	"github.com/AngelaMMoreno/testbot.git/internal/config"
	"github.com/AngelaMMoreno/testbot.git/internal/repository"
	"github.com/AngelaMMoreno/testbot.git/internal/service"
	"github.com/AngelaMMoreno/testbot.git/internal/storage/cache"
	"github.com/AngelaMMoreno/testbot.git/internal/storage/db"

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

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	sessions := cache.NewCache()
	services := service.InitServices(repos, sessions, cfg.Quiz, cfg.Exam, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
