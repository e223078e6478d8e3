package repository

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_repository

import (
	"context"
	"database/sql"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*TokensR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		TokensR: NewTokensRepository(db),
	}
}
