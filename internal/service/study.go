package service

import (
	"context"
	"errors"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/session"
	"go.uber.org/zap"
)

// LeaderboardSize is how many leaderboard entries are shown.
const LeaderboardSize = 10

var ErrNoCard = errors.New("no card to study")

// Navigate moves to another screen and loads whatever that screen shows.
// Disallowed moves leave the session unchanged and return nil.
func (c *Controller) Navigate(ctx context.Context, to session.Screen) error {
	before := c.State().Screen
	s := c.dispatch(session.Navigated{To: to})
	if s.Screen != to || before == to {
		return nil
	}

	switch to {
	case session.ScreenDashboard:
		c.RefreshProfile(ctx)
	case session.ScreenLeaderboard:
		return c.loadLeaderboard(ctx)
	case session.ScreenAdmin:
		return c.loadAdmin(ctx)
	case session.ScreenBackupManager:
		return c.loadBackups(ctx)
	case session.ScreenLoginCodeManager:
		return c.loadLoginCodes(ctx)
	}
	return nil
}

func (c *Controller) OpenLeaderboard(ctx context.Context) error {
	return c.Navigate(ctx, session.ScreenLeaderboard)
}

func (c *Controller) LoadLeaderboard(ctx context.Context) error {
	return c.loadLeaderboard(ctx)
}

func (c *Controller) Next() session.State {
	return c.dispatch(session.CardAdvanced{})
}

func (c *Controller) Prev() session.State {
	return c.dispatch(session.CardRetreated{})
}

func (c *Controller) Reveal() session.State {
	return c.dispatch(session.AnswerShown{})
}

func (c *Controller) SelectSet(name string) session.State {
	return c.dispatch(session.SetSelected{Name: name})
}

// RecordStudy posts a study result for the current card, credits the points the server
// awarded and advances to the next card.
func (c *Controller) RecordStudy(ctx context.Context, correct bool) error {
	s := c.State()
	card, ok := s.CurrentCard()
	if !ok || s.User == nil || s.Quiz != nil {
		return ErrNoCard
	}

	resp, err := c.api.RecordStudySession(ctx, models.StudySessionRequest{
		UserID:    s.User.ID,
		WordID:    card.ID,
		Correct:   correct,
		Timestamp: c.now().UTC(),
	})
	if err != nil {
		c.log.Warn("failed to record study session", zap.String("word_id", card.ID), zap.Error(err))
		return c.fail(err, "Failed to record study session")
	}

	c.dispatch(session.PointsEarned{Points: resp.PointsEarned}, session.CardAdvanced{})
	return nil
}

// OfferChoice turns the current card into a multiple-choice question.
func (c *Controller) OfferChoice() session.State {
	card, ok := c.State().CurrentCard()
	if !ok {
		return c.State()
	}
	return c.dispatch(session.ChoiceOffered{Options: session.ChoiceOptions(card.Meaning, c.rng)})
}

func (c *Controller) Choose(option string) session.State {
	return c.dispatch(session.ChoiceSelected{Option: option})
}

func (c *Controller) loadLeaderboard(ctx context.Context) error {
	entries, err := c.api.Leaderboard(ctx)
	if err != nil {
		c.log.Warn("failed to load leaderboard", zap.Error(err))
		return c.fail(err, "Failed to load leaderboard")
	}
	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	c.dispatch(session.LeaderboardLoaded{Entries: entries})
	return nil
}
