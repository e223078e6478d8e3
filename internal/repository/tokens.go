package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TokensR keeps one access token per session owner: a Telegram user id for the bot, a local
// profile name for the terminal client.
type TokensR struct {
	db QueryI
}

func NewTokensRepository(db QueryI) *TokensR {
	return &TokensR{db: db}
}

type storedToken struct {
	Owner     string    `db:"owner"`
	Token     string    `db:"token"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (t *TokensR) Migrate(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS auth_tokens (
		owner      TEXT PRIMARY KEY,
		token      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := t.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create auth_tokens: %w", err)
	}

	return nil
}

func (t *TokensR) Token(ctx context.Context, owner string) (string, error) {
	query := `SELECT owner, token, updated_at FROM auth_tokens WHERE owner = $1`

	var stored storedToken
	err := t.db.GetContext(ctx, &stored, query, owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	return stored.Token, nil
}

func (t *TokensR) SaveToken(ctx context.Context, owner, token string) error {
	query := `INSERT INTO auth_tokens (owner, token, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (owner)
		DO UPDATE SET
			token = EXCLUDED.token,
			updated_at = CURRENT_TIMESTAMP
		`

	_, err := t.db.ExecContext(ctx, query, owner, token)
	if err != nil {
		return err
	}

	return nil
}

func (t *TokensR) DeleteToken(ctx context.Context, owner string) error {
	query := `DELETE FROM auth_tokens WHERE owner = $1`

	_, err := t.db.ExecContext(ctx, query, owner)
	if err != nil {
		return err
	}

	return nil
}

// Owners lists every owner with a stored token, most recently updated first.
func (t *TokensR) Owners(ctx context.Context) ([]string, error) {
	query := `SELECT owner, token, updated_at FROM auth_tokens ORDER BY updated_at DESC`

	var stored []storedToken
	if err := t.db.SelectContext(ctx, &stored, query); err != nil {
		return nil, err
	}

	owners := make([]string, 0, len(stored))
	for _, s := range stored {
		owners = append(owners, s.Owner)
	}

	return owners, nil
}
