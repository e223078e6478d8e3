package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	mock_repository "github.com/DanRulev/wordweaver/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokensMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *TokensR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &TokensR{db: db}
}

func TestTokensR_Token(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    string
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "42").
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*storedToken) = storedToken{Owner: "42", Token: "tok"}
						return nil
					})
			},
			want: "tok",
		},
		{
			name: "no rows",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "42").Return(sql.ErrNoRows)
			},
			want: "",
		},
		{
			name: "failed get",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "42").Return(errors.New("db closed"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokensR := newTokensMock(t, ctrl, tt.f)

			got, err := tokensR.Token(context.Background(), "42")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokensR_SaveToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "42", "tok").Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "42", "tok").Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokensR := newTokensMock(t, ctrl, tt.f)

			err := tokensR.SaveToken(context.Background(), "42", "tok")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTokensR_DeleteToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokensR := newTokensMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "42").Return(nil, nil)
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "43").Return(nil, errors.New("exec error"))
	})

	require.NoError(t, tokensR.DeleteToken(context.Background(), "42"))
	require.Error(t, tokensR.DeleteToken(context.Background(), "43"))
}

// TestTokensR_SQLite runs the queries against a real in-memory database.
func TestTokensR_SQLite(t *testing.T) {
	t.Parallel()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	repo := NewRepository(db)

	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, repo.Migrate(ctx))

	got, err := repo.Token(ctx, "local")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.SaveToken(ctx, "local", "first"))
	require.NoError(t, repo.SaveToken(ctx, "local", "second"))
	require.NoError(t, repo.SaveToken(ctx, "other", "x"))

	got, err = repo.Token(ctx, "local")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	owners, err := repo.Owners(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"local", "other"}, owners)

	require.NoError(t, repo.DeleteToken(ctx, "local"))
	got, err = repo.Token(ctx, "local")
	require.NoError(t, err)
	assert.Empty(t, got)
}
