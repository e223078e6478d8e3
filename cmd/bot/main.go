package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/DanRulev/wordweaver/internal/bot"
	"github.com/DanRulev/wordweaver/internal/client"
	"github.com/DanRulev/wordweaver/internal/config"
	"github.com/DanRulev/wordweaver/internal/repository"
	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/storage/cache"
	"github.com/DanRulev/wordweaver/internal/storage/db"

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	repos := repository.NewRepository(conn)
	if err := repos.Migrate(ctx); err != nil {
		logger.Fatal("failed migrate db", zap.Error(err))
	}

	sessions := cache.NewCache(func(userID int64) *service.Controller {
		api := client.NewWordWeaverAPI(cfg.API.BaseURL, cfg.API.Timeout)
		return service.NewController(api, repos, strconv.FormatInt(userID, 10), logger)
	})
	warmSessions(ctx, repos, sessions, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, sessions, cfg.App.Timeout, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	logger.Info("bot started", zap.String("api", cfg.API.BaseURL), zap.Int("sessions", sessions.Len()))
	handler.Start(ctx)
	logger.Info("bot stopped")
}

// warmSessions restores the sessions of every user with a stored token.
func warmSessions(ctx context.Context, repos repository.Repository, sessions *cache.Cache, logger *zap.Logger) {
	owners, err := repos.Owners(ctx)
	if err != nil {
		logger.Warn("failed to list stored sessions", zap.Error(err))
		return
	}

	for _, owner := range owners {
		userID, err := strconv.ParseInt(owner, 10, 64)
		if err != nil {
			logger.Warn("skipping stored session", zap.String("owner", owner), zap.Error(err))
			continue
		}
		ctrl, _ := sessions.Session(userID)
		if err := ctrl.Restore(ctx); err != nil {
			logger.Info("stored session not restored", zap.String("owner", owner), zap.Error(err))
		}
	}
}
