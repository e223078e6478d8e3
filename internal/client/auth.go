package client

import (
	"context"
	"net/http"

	"github.com/DanRulev/wordweaver/internal/models"
)

func (a *WordWeaverAPI) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

// Register creates an account. A request carrying a login code goes through register-with-code.
func (a *WordWeaverAPI) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	path := "/api/register"
	if req.LoginCode != "" {
		path = "/api/register-with-code"
	}

	var resp models.AuthResponse
	if err := a.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (a *WordWeaverAPI) ValidateLoginCode(ctx context.Context, code string) (models.ClassInfo, error) {
	var class models.ClassInfo
	if err := a.do(ctx, http.MethodPost, "/api/validate-login-code", models.ValidateCodeRequest{Code: code}, &class); err != nil {
		return models.ClassInfo{}, err
	}
	return class, nil
}

func (a *WordWeaverAPI) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	if err := a.do(ctx, http.MethodGet, "/api/user/profile", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (a *WordWeaverAPI) Health(ctx context.Context) error {
	return a.do(ctx, http.MethodGet, "/api/health", nil, nil)
}
