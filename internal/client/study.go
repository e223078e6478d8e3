package client

import (
	"context"
	"net/http"

	"github.com/DanRulev/wordweaver/internal/models"
)

func (a *WordWeaverAPI) RecordStudySession(ctx context.Context, req models.StudySessionRequest) (models.PointsResponse, error) {
	var resp models.PointsResponse
	if err := a.do(ctx, http.MethodPost, "/api/study-session", req, &resp); err != nil {
		return models.PointsResponse{}, err
	}
	return resp, nil
}

func (a *WordWeaverAPI) RecordQuizResult(ctx context.Context, req models.QuizResultRequest) (models.PointsResponse, error) {
	var resp models.PointsResponse
	if err := a.do(ctx, http.MethodPost, "/api/quiz-result", req, &resp); err != nil {
		return models.PointsResponse{}, err
	}
	return resp, nil
}

func (a *WordWeaverAPI) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := a.do(ctx, http.MethodGet, "/api/leaderboard", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
