package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/wordweaver/internal/client"
	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/session"
	"github.com/DanRulev/wordweaver/pkg/validator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotTeacher     = errors.New("teacher access required")
	ErrSessionExpired = errors.New("session expired")
)

func (c *Controller) Health(ctx context.Context) error {
	return c.api.Health(ctx)
}

// Restore signs the owner back in with a stored token. A missing token leaves the session on
// welcome; an expired or rejected one is deleted.
func (c *Controller) Restore(ctx context.Context) error {
	if c.tokens == nil {
		return nil
	}

	token, err := c.tokens.Token(ctx, c.owner)
	if err != nil {
		c.log.Warn("failed to read stored token", zap.Error(err))
		return nil
	}
	if token == "" {
		return nil
	}

	if exp, ok := client.TokenExpiry(token); ok && !c.now().Before(exp) {
		c.forgetToken(ctx)
		c.dispatch(session.TokenRejected{Message: "Session expired, please log in again"})
		return ErrSessionExpired
	}

	c.api.SetToken(token)

	user, words, err := c.loadUserData(ctx)
	if err != nil {
		c.log.Warn("failed to load user data", zap.Error(err))
		c.forgetToken(ctx)
		c.dispatch(session.TokenRejected{Message: withDetail("Failed to restore session", client.Detail(err))})
		return err
	}

	c.dispatch(session.LoggedIn{Token: token, User: user}, session.DataLoaded{User: user, Words: words})
	c.loadSets(ctx, user)

	return nil
}

// Login signs in with email and password. With teacher set, non-teacher accounts are refused.
func (c *Controller) Login(ctx context.Context, req models.LoginRequest, teacher bool) error {
	req.Email = strings.TrimSpace(req.Email)
	if err := validator.ValidateStruct(req); err != nil {
		return c.fail(err, "Login failed")
	}

	resp, err := c.api.Login(ctx, req)
	if err != nil {
		c.log.Info("login failed", zap.String("email", req.Email), zap.Error(err))
		return c.fail(err, "Login failed")
	}

	if teacher && !resp.User.IsTeacher {
		c.dispatch(session.Failed{Kind: session.FailureAuth, Message: "Login failed: teacher access required"})
		return ErrNotTeacher
	}

	return c.signIn(ctx, resp)
}

// Register creates an account. A login code validated earlier is attached along with its
// class metadata.
func (c *Controller) Register(ctx context.Context, req models.RegisterRequest) error {
	s := c.State()

	req.Email = strings.TrimSpace(req.Email)
	if req.LoginCode == "" {
		req.LoginCode = s.ClassCode
	}
	if s.Class != nil && req.LoginCode == s.ClassCode {
		req = req.WithClass(*s.Class)
	}

	if err := validator.ValidateStruct(req); err != nil {
		return c.fail(err, "Registration failed")
	}

	resp, err := c.api.Register(ctx, req)
	if err != nil {
		c.log.Info("registration failed", zap.String("email", req.Email), zap.Error(err))
		return c.fail(err, "Registration failed")
	}

	return c.signIn(ctx, resp)
}

// ValidateLoginCode checks a class code before registration and keeps its class metadata.
func (c *Controller) ValidateLoginCode(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if err := validator.ValidateStruct(models.ValidateCodeRequest{Code: code}); err != nil {
		c.dispatch(session.ClassCleared{})
		return c.fail(err, "Invalid login code")
	}

	class, err := c.api.ValidateLoginCode(ctx, code)
	if err != nil {
		c.dispatch(session.ClassCleared{})
		return c.fail(err, "Invalid login code")
	}

	c.dispatch(session.ClassValidated{Code: code, Class: class})
	return nil
}

func (c *Controller) ClearClass() session.State {
	return c.dispatch(session.ClassCleared{})
}

func (c *Controller) Logout(ctx context.Context) session.State {
	c.forgetToken(ctx)
	return c.dispatch(session.LoggedOut{})
}

// RefreshProfile replaces the user with the server's profile. Failures are logged only.
func (c *Controller) RefreshProfile(ctx context.Context) {
	if !c.State().SignedIn() {
		return
	}

	user, err := c.api.Profile(ctx)
	if err != nil {
		c.log.Warn("failed to refresh profile", zap.Error(err))
		return
	}
	c.dispatch(session.ProfileLoaded{User: user})
}

func (c *Controller) signIn(ctx context.Context, resp models.AuthResponse) error {
	c.api.SetToken(resp.AccessToken)
	if c.tokens != nil {
		if err := c.tokens.SaveToken(ctx, c.owner, resp.AccessToken); err != nil {
			c.log.Warn("failed to save token", zap.Error(err))
		}
	}

	c.dispatch(session.LoggedIn{Token: resp.AccessToken, User: resp.User})

	user, words, err := c.loadUserData(ctx)
	if err != nil {
		c.log.Warn("failed to load user data", zap.Error(err))
		c.dispatch(session.DataLoaded{User: resp.User}, failure(err, "Failed to load user data"))
		return err
	}

	c.dispatch(session.DataLoaded{User: user, Words: words})
	c.loadSets(ctx, user)
	return nil
}

// loadUserData fetches words and the profile concurrently.
func (c *Controller) loadUserData(ctx context.Context) (models.User, []models.WordCard, error) {
	var (
		user  models.User
		words []models.WordCard
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		words, err = c.api.Words(gctx)
		if err != nil {
			return fmt.Errorf("failed to load words: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		user, err = c.api.Profile(gctx)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.User{}, nil, err
	}
	return user, words, nil
}

// loadSets fetches server-defined study sets for teachers. Failures are logged only.
func (c *Controller) loadSets(ctx context.Context, user models.User) {
	if !user.IsTeacher {
		return
	}

	sets, err := c.api.StudySets(ctx)
	if err != nil {
		c.log.Warn("failed to load study sets", zap.Error(err))
		return
	}
	c.dispatch(session.SetsLoaded{Sets: sets})
}

func (c *Controller) forgetToken(ctx context.Context) {
	c.api.SetToken("")
	if c.tokens == nil {
		return
	}
	if err := c.tokens.DeleteToken(ctx, c.owner); err != nil {
		c.log.Warn("failed to delete token", zap.Error(err))
	}
}
