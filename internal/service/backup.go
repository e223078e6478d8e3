package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/session"
	"github.com/DanRulev/wordweaver/pkg/validator"
	"go.uber.org/zap"
)

func (c *Controller) LoadBackups(ctx context.Context) error {
	return c.loadBackups(ctx)
}

func (c *Controller) loadBackups(ctx context.Context) error {
	backups, err := c.api.Backups(ctx)
	if err != nil {
		c.log.Warn("failed to load backups", zap.Error(err))
		return c.fail(err, "Failed to load backups")
	}
	c.dispatch(session.BackupsLoaded{Backups: backups})
	return nil
}

func (c *Controller) CreateBackup(ctx context.Context) error {
	res, err := c.api.CreateBackup(ctx)
	if err != nil {
		c.log.Warn("failed to create backup", zap.Error(err))
		return c.fail(err, "Failed to create backup")
	}
	c.log.Info("backup created", zap.String("collection", res.CollectionName), zap.Int("word_count", res.WordCount))

	if err := c.loadBackups(ctx); err != nil {
		return err
	}
	return c.resync(ctx, fmt.Sprintf("Backup created: %s (%d words)", res.CollectionName, res.WordCount))
}

// RestoreBackup replaces all words with a backup collection. The server snapshots the current
// words first; that snapshot is named in the notice.
func (c *Controller) RestoreBackup(ctx context.Context, collection string) error {
	req := models.RestoreRequest{CollectionName: strings.TrimSpace(collection)}
	if err := validator.ValidateStruct(req); err != nil {
		return c.fail(err, "Failed to restore backup")
	}

	res, err := c.api.RestoreBackup(ctx, req.CollectionName)
	if err != nil {
		c.log.Warn("failed to restore backup", zap.String("collection", req.CollectionName), zap.Error(err))
		return c.fail(err, "Failed to restore backup")
	}
	c.log.Info("backup restored",
		zap.String("collection", res.RestoredFrom),
		zap.String("pre_restore_backup", res.PreRestoreBackup),
		zap.Int("word_count", res.WordCount))

	if err := c.loadBackups(ctx); err != nil {
		return err
	}
	return c.resync(ctx, fmt.Sprintf("Restored %d words from %s. Previous words saved as %s",
		res.WordCount, res.RestoredFrom, res.PreRestoreBackup))
}
