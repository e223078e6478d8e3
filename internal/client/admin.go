package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DanRulev/wordweaver/internal/models"
)

func (a *WordWeaverAPI) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := a.do(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *WordWeaverAPI) UserProgress(ctx context.Context, userID string) (models.UserProgress, error) {
	var progress models.UserProgress
	if err := a.do(ctx, http.MethodGet, "/api/admin/progress/"+url.PathEscape(userID), nil, &progress); err != nil {
		return models.UserProgress{}, err
	}
	return progress, nil
}

func (a *WordWeaverAPI) StudySets(ctx context.Context) ([]models.StudySet, error) {
	var sets []models.StudySet
	if err := a.do(ctx, http.MethodGet, "/api/admin/study-sets", nil, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (a *WordWeaverAPI) CreateStudySet(ctx context.Context, set models.StudySetInput) (models.CreatedResponse, error) {
	var resp models.CreatedResponse
	if err := a.do(ctx, http.MethodPost, "/api/admin/create-study-set", set, &resp); err != nil {
		return models.CreatedResponse{}, err
	}
	return resp, nil
}
