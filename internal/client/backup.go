package client

import (
	"context"
	"net/http"

	"github.com/DanRulev/wordweaver/internal/models"
)

func (a *WordWeaverAPI) Backups(ctx context.Context) ([]models.Backup, error) {
	var backups []models.Backup
	if err := a.do(ctx, http.MethodGet, "/api/admin/backups", nil, &backups); err != nil {
		return nil, err
	}
	return backups, nil
}

func (a *WordWeaverAPI) CreateBackup(ctx context.Context) (models.BackupResult, error) {
	var resp models.BackupResult
	if err := a.do(ctx, http.MethodPost, "/api/admin/create-backup", nil, &resp); err != nil {
		return models.BackupResult{}, err
	}
	return resp, nil
}

func (a *WordWeaverAPI) RestoreBackup(ctx context.Context, collection string) (models.RestoreResult, error) {
	var resp models.RestoreResult
	req := models.RestoreRequest{CollectionName: collection}
	if err := a.do(ctx, http.MethodPost, "/api/admin/restore-backup", req, &resp); err != nil {
		return models.RestoreResult{}, err
	}
	return resp, nil
}
