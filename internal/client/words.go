package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DanRulev/wordweaver/internal/models"
)

func (a *WordWeaverAPI) Words(ctx context.Context) ([]models.WordCard, error) {
	var words []models.WordCard
	if err := a.do(ctx, http.MethodGet, "/api/words", nil, &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (a *WordWeaverAPI) CreateWord(ctx context.Context, word models.WordInput) (models.CreatedResponse, error) {
	var resp models.CreatedResponse
	if err := a.do(ctx, http.MethodPost, "/api/admin/create-word", word, &resp); err != nil {
		return models.CreatedResponse{}, err
	}
	return resp, nil
}

func (a *WordWeaverAPI) UpdateWord(ctx context.Context, id string, word models.WordInput) error {
	return a.do(ctx, http.MethodPut, "/api/admin/update-word/"+url.PathEscape(id), word, nil)
}

func (a *WordWeaverAPI) DeleteWord(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/admin/delete-word/"+url.PathEscape(id), nil, nil)
}
