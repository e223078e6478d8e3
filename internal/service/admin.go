package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/session"
	"github.com/DanRulev/wordweaver/pkg/validator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (c *Controller) OpenAdmin(ctx context.Context) error {
	return c.Navigate(ctx, session.ScreenAdmin)
}

// loadAdmin fetches users and study sets for the admin dashboard.
func (c *Controller) loadAdmin(ctx context.Context) error {
	var (
		users []models.User
		sets  []models.StudySet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = c.api.Users(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sets, err = c.api.StudySets(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		c.log.Warn("failed to load admin data", zap.Error(err))
		return c.fail(err, "Failed to load admin data")
	}

	c.dispatch(session.UsersLoaded{Users: users}, session.SetsLoaded{Sets: sets})
	return nil
}

func (c *Controller) UserProgress(ctx context.Context, userID string) error {
	progress, err := c.api.UserProgress(ctx, userID)
	if err != nil {
		c.log.Warn("failed to load user progress", zap.String("user_id", userID), zap.Error(err))
		return c.fail(err, "Failed to load progress")
	}
	c.dispatch(session.ProgressLoaded{Progress: progress})
	return nil
}

// CreateWord adds a word from the slide creator and returns to the admin dashboard.
func (c *Controller) CreateWord(ctx context.Context, in models.WordInput) error {
	if err := validator.ValidateStruct(in); err != nil {
		return c.fail(err, "Failed to create word")
	}

	created, err := c.api.CreateWord(ctx, in)
	if err != nil {
		c.log.Warn("failed to create word", zap.String("root", in.Root), zap.Error(err))
		return c.fail(err, "Failed to create word")
	}
	c.log.Info("word created", zap.String("id", created.ID), zap.String("root", in.Root))

	c.dispatch(session.Navigated{To: session.ScreenAdmin})
	return c.resync(ctx, fmt.Sprintf("Word %q created", in.Root))
}

func (c *Controller) UpdateWord(ctx context.Context, id string, in models.WordInput) error {
	if err := validator.ValidateStruct(in); err != nil {
		return c.fail(err, "Failed to update word")
	}

	if err := c.api.UpdateWord(ctx, id, in); err != nil {
		c.log.Warn("failed to update word", zap.String("id", id), zap.Error(err))
		return c.fail(err, "Failed to update word")
	}

	c.dispatch(session.Navigated{To: session.ScreenAdmin})
	return c.resync(ctx, fmt.Sprintf("Word %q updated", in.Root))
}

func (c *Controller) DeleteWord(ctx context.Context, id string) error {
	if err := c.api.DeleteWord(ctx, id); err != nil {
		c.log.Warn("failed to delete word", zap.String("id", id), zap.Error(err))
		return c.fail(err, "Failed to delete word")
	}
	return c.resync(ctx, "Word deleted")
}

// CreateStudySet stores a named set of word ids and returns to the admin dashboard.
func (c *Controller) CreateStudySet(ctx context.Context, in models.StudySetInput) error {
	if err := validator.ValidateStruct(in); err != nil {
		return c.fail(err, "Failed to create study set")
	}

	if _, err := c.api.CreateStudySet(ctx, in); err != nil {
		c.log.Warn("failed to create study set", zap.String("name", in.Name), zap.Error(err))
		return c.fail(err, "Failed to create study set")
	}

	sets, err := c.api.StudySets(ctx)
	if err != nil {
		c.log.Warn("failed to reload study sets", zap.Error(err))
		return c.fail(err, "Failed to reload study sets")
	}

	c.dispatch(session.Navigated{To: session.ScreenAdmin}, session.SetsLoaded{Sets: sets})
	return c.resync(ctx, fmt.Sprintf("Study set %q created", in.Name))
}

// PrintableDeck lists every word grouped by type, then alphabetically by root.
func (c *Controller) PrintableDeck() []models.WordCard {
	words := append([]models.WordCard(nil), c.State().StudySet(session.AllSet)...)

	order := map[models.WordType]int{models.TypePrefix: 0, models.TypeRoot: 1, models.TypeSuffix: 2}
	sort.SliceStable(words, func(i, j int) bool {
		if order[words[i].Type] != order[words[j].Type] {
			return order[words[i].Type] < order[words[j].Type]
		}
		return words[i].Root < words[j].Root
	})
	return words
}

// resync replaces the words with the server's after a write, then posts notice.
func (c *Controller) resync(ctx context.Context, notice string) error {
	words, err := c.api.Words(ctx)
	if err != nil {
		c.log.Warn("failed to reload words", zap.Error(err))
		return c.fail(err, "Failed to reload words")
	}
	c.dispatch(session.WordsLoaded{Words: words}, session.Noticed{Message: notice})
	return nil
}
