package service

import (
	"errors"
	"sync"
	"time"

	"github.com/DanRulev/wordweaver/internal/client"
	"github.com/DanRulev/wordweaver/internal/session"
	"github.com/DanRulev/wordweaver/pkg/validator"
	"go.uber.org/zap"
)

// Controller owns one client session. Every state change is folded through session.Reduce
// under mu; API calls run outside the lock against a snapshot, and their outcome is applied
// when they return even if the user has moved on.
type Controller struct {
	api    APII
	tokens TokenStore
	owner  string
	rng    session.Rand
	now    func() time.Time
	log    *zap.Logger

	mu    sync.Mutex
	state session.State
}

// NewController creates a signed-out session for owner. tokens may be nil, in which case
// nothing survives a restart.
func NewController(api APII, tokens TokenStore, owner string, log *zap.Logger) *Controller {
	return &Controller{
		api:    api,
		tokens: tokens,
		owner:  owner,
		rng:    newCryptoRand(log),
		now:    time.Now,
		log:    log.With(zap.String("owner", owner)),
		state:  session.New(),
	}
}

func (c *Controller) State() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Owner() string {
	return c.owner
}

func (c *Controller) dispatch(events ...session.Event) session.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ev := range events {
		c.state = session.Reduce(c.state, ev)
	}
	return c.state
}

// step applies ev and returns the states either side of it, read in the same locked section.
func (c *Controller) step(ev session.Event) (before, after session.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	before = c.state
	c.state = session.Reduce(c.state, ev)
	return before, c.state
}

// fail folds err into the session as a user-visible failure and returns err.
func (c *Controller) fail(err error, fallback string) error {
	c.dispatch(failure(err, fallback))
	return err
}

func failure(err error, fallback string) session.Failed {
	detail := client.Detail(err)

	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		return session.Failed{Kind: session.FailureValidation, Message: verr.Message()}
	case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrForbidden):
		return session.Failed{Kind: session.FailureAuth, Message: withDetail(fallback, detail)}
	case errors.Is(err, client.ErrValidation):
		return session.Failed{Kind: session.FailureValidation, Message: withDetail(fallback, detail)}
	case errors.Is(err, client.ErrNotFound):
		return session.Failed{Kind: session.FailureNotFound, Message: withDetail(fallback, detail)}
	}

	if detail == "" {
		detail = err.Error()
	}
	return session.Failed{Kind: session.FailureGeneric, Message: withDetail(fallback, detail)}
}

func withDetail(msg, detail string) string {
	if detail == "" {
		return msg
	}
	return msg + ": " + detail
}
