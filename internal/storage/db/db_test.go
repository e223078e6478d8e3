package db

import (
	"path/filepath"
	"testing"

	"github.com/DanRulev/wordweaver/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.DBConfig
		want string
	}{
		{
			name: "sqlite",
			cfg:  config.DBConfig{Driver: "sqlite3", Conn: config.DBConn{Name: "ww.db"}},
			want: "file:ww.db?_busy_timeout=5000&_journal_mode=WAL",
		},
		{
			name: "postgres",
			cfg: config.DBConfig{Driver: "postgres", Conn: config.DBConn{
				Host: "db", Port: "5432", Name: "ww", User: "bot", Password: "pw", SSL: "require",
			}},
			want: "host=db port=5432 dbname=ww user=bot password=pw sslmode=require",
		},
		{
			name: "postgres default ssl",
			cfg:  config.DBConfig{Driver: "postgres", Conn: config.DBConn{Host: "db", Port: "5432", Name: "ww", User: "bot"}},
			want: "host=db port=5432 dbname=ww user=bot password= sslmode=disable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DSN(tt.cfg))
		})
	}
}

func TestInitDB_SQLite(t *testing.T) {
	t.Parallel()

	cfg := config.DBConfig{
		Driver: "sqlite3",
		Conn:   config.DBConn{Name: filepath.Join(t.TempDir(), "tokens.db")},
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	}

	db, err := InitDB(cfg)
	if err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	defer db.Close()

	var one int
	require.NoError(t, db.Get(&one, "SELECT 1"))
	assert.Equal(t, 1, one)
}
