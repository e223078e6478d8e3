package main

import (
	"context"
	"log"

	"github.com/DanRulev/wordweaver/internal/client"
	"github.com/DanRulev/wordweaver/internal/config"
	"github.com/DanRulev/wordweaver/internal/repository"
	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/storage/db"
	"github.com/DanRulev/wordweaver/internal/tui"
	tea "github.com/charmbracelet/bubbletea"

	"go.uber.org/zap"
)

// The terminal owns stdout, so logs go to a file.
func setupLogger(env string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"wordweaver-tui.log"}
	cfg.ErrorOutputPaths = []string{"wordweaver-tui.log"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
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

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	repos := repository.NewRepository(conn)
	if err := repos.Migrate(ctx); err != nil {
		logger.Fatal("failed migrate db", zap.Error(err))
	}

	api := client.NewWordWeaverAPI(cfg.API.BaseURL, cfg.API.Timeout)
	ctrl := service.NewController(api, repos, cfg.TUI.Owner, logger)

	if err := ctrl.Health(ctx); err != nil {
		logger.Warn("api not healthy", zap.String("api", cfg.API.BaseURL), zap.Error(err))
	} else {
		logger.Info("api healthy", zap.String("api", cfg.API.BaseURL))
	}

	if err := ctrl.Restore(ctx); err != nil {
		logger.Info("session not restored", zap.Error(err))
	}

	p := tea.NewProgram(tui.New(ctrl, cfg.App.Timeout, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal("tui failed", zap.Error(err))
	}
}
