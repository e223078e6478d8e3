package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DanRulev/wordweaver/internal/models"
)

func (a *WordWeaverAPI) LoginCodes(ctx context.Context) ([]models.LoginCode, error) {
	var codes []models.LoginCode
	if err := a.do(ctx, http.MethodGet, "/api/admin/login-codes", nil, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (a *WordWeaverAPI) CreateLoginCode(ctx context.Context, in models.LoginCodeInput) (models.LoginCode, error) {
	var code models.LoginCode
	if err := a.do(ctx, http.MethodPost, "/api/admin/login-codes", in, &code); err != nil {
		return models.LoginCode{}, err
	}
	return code, nil
}

func (a *WordWeaverAPI) ToggleLoginCode(ctx context.Context, code string) (models.LoginCode, error) {
	var updated models.LoginCode
	if err := a.do(ctx, http.MethodPut, "/api/admin/login-codes/"+url.PathEscape(code)+"/toggle", nil, &updated); err != nil {
		return models.LoginCode{}, err
	}
	return updated, nil
}

func (a *WordWeaverAPI) DeleteLoginCode(ctx context.Context, code string) error {
	return a.do(ctx, http.MethodDelete, "/api/admin/login-codes/"+url.PathEscape(code), nil, nil)
}
