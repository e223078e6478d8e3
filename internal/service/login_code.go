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

func (c *Controller) LoadLoginCodes(ctx context.Context) error {
	return c.loadLoginCodes(ctx)
}

func (c *Controller) loadLoginCodes(ctx context.Context) error {
	codes, err := c.api.LoginCodes(ctx)
	if err != nil {
		c.log.Warn("failed to load login codes", zap.Error(err))
		return c.fail(err, "Failed to load login codes")
	}
	c.dispatch(session.LoginCodesLoaded{Codes: codes})
	return nil
}

func (c *Controller) CreateLoginCode(ctx context.Context, in models.LoginCodeInput) error {
	in.ClassName = strings.TrimSpace(in.ClassName)
	if err := validator.ValidateStruct(in); err != nil {
		return c.fail(err, "Failed to create login code")
	}

	code, err := c.api.CreateLoginCode(ctx, in)
	if err != nil {
		c.log.Warn("failed to create login code", zap.String("class", in.ClassName), zap.Error(err))
		return c.fail(err, "Failed to create login code")
	}

	return c.reloadLoginCodes(ctx, fmt.Sprintf("Login code %s created for %s", code.Code, in.ClassName))
}

func (c *Controller) ToggleLoginCode(ctx context.Context, code string) error {
	toggled, err := c.api.ToggleLoginCode(ctx, code)
	if err != nil {
		c.log.Warn("failed to toggle login code", zap.String("code", code), zap.Error(err))
		return c.fail(err, "Failed to update login code")
	}

	state := "deactivated"
	if toggled.Active {
		state = "activated"
	}
	return c.reloadLoginCodes(ctx, fmt.Sprintf("Login code %s %s", code, state))
}

func (c *Controller) DeleteLoginCode(ctx context.Context, code string) error {
	if err := c.api.DeleteLoginCode(ctx, code); err != nil {
		c.log.Warn("failed to delete login code", zap.String("code", code), zap.Error(err))
		return c.fail(err, "Failed to delete login code")
	}
	return c.reloadLoginCodes(ctx, fmt.Sprintf("Login code %s deleted", code))
}

func (c *Controller) reloadLoginCodes(ctx context.Context, notice string) error {
	if err := c.loadLoginCodes(ctx); err != nil {
		return err
	}
	return c.resync(ctx, notice)
}
