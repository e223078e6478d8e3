package service

import (
	"context"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/session"
	"go.uber.org/zap"
)

// StartQuiz opens a ten-question quiz over the active deck, starting on a random card.
func (c *Controller) StartQuiz() session.State {
	n := len(c.State().ActiveDeck())
	if n == 0 {
		return c.State()
	}
	return c.dispatch(session.QuizStarted{CardIndex: c.rng.Intn(n)})
}

// AnswerQuiz scores the current question and moves to a random card. After the tenth answer the
// final score is posted and the quiz closes whether or not the post succeeds.
func (c *Controller) AnswerQuiz(ctx context.Context, correct bool) error {
	s := c.State()
	if s.Quiz == nil || s.Quiz.Finished {
		return nil
	}

	next := 0
	if n := len(s.ActiveDeck()); n > 0 {
		next = c.rng.Intn(n)
	}

	// Only the answer that finished the quiz posts it.
	before, s := c.step(session.QuizAnswered{Correct: correct, NextCardIndex: next})
	if before.Quiz == nil || before.Quiz.Finished || s.Quiz == nil || !s.Quiz.Finished || s.User == nil {
		return nil
	}

	resp, err := c.api.RecordQuizResult(ctx, models.QuizResultRequest{
		UserID:         s.User.ID,
		Score:          s.Quiz.Score,
		TotalQuestions: session.QuizLength,
		Timestamp:      c.now().UTC(),
	})
	if err != nil {
		c.log.Warn("failed to record quiz result", zap.Int("score", s.Quiz.Score), zap.Error(err))
		c.dispatch(session.QuizAbandoned{Message: failure(err, "Failed to record quiz result").Message})
		return err
	}

	c.dispatch(session.QuizRecorded{PointsEarned: resp.PointsEarned})
	return nil
}

func (c *Controller) ExitQuiz() session.State {
	return c.dispatch(session.QuizExited{})
}
