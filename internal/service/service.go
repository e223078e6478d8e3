package service

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock_service

import (
	"context"

	"github.com/DanRulev/wordweaver/internal/models"
)

// APII is the Word Weaver REST API as seen by one session. The token set with SetToken is
// sent as a bearer token on every call.
type APII interface {
	SetToken(token string)
	Token() string

	Health(ctx context.Context) error
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	ValidateLoginCode(ctx context.Context, code string) (models.ClassInfo, error)
	Profile(ctx context.Context) (models.User, error)

	Words(ctx context.Context) ([]models.WordCard, error)
	CreateWord(ctx context.Context, word models.WordInput) (models.CreatedResponse, error)
	UpdateWord(ctx context.Context, id string, word models.WordInput) error
	DeleteWord(ctx context.Context, id string) error

	RecordStudySession(ctx context.Context, req models.StudySessionRequest) (models.PointsResponse, error)
	RecordQuizResult(ctx context.Context, req models.QuizResultRequest) (models.PointsResponse, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)

	Users(ctx context.Context) ([]models.User, error)
	UserProgress(ctx context.Context, userID string) (models.UserProgress, error)
	StudySets(ctx context.Context) ([]models.StudySet, error)
	CreateStudySet(ctx context.Context, set models.StudySetInput) (models.CreatedResponse, error)

	Backups(ctx context.Context) ([]models.Backup, error)
	CreateBackup(ctx context.Context) (models.BackupResult, error)
	RestoreBackup(ctx context.Context, collection string) (models.RestoreResult, error)

	LoginCodes(ctx context.Context) ([]models.LoginCode, error)
	CreateLoginCode(ctx context.Context, in models.LoginCodeInput) (models.LoginCode, error)
	ToggleLoginCode(ctx context.Context, code string) (models.LoginCode, error)
	DeleteLoginCode(ctx context.Context, code string) error
}

// TokenStore persists the access token of a session owner between runs.
// Token returns "" with a nil error when nothing is stored.
type TokenStore interface {
	Token(ctx context.Context, owner string) (string, error)
	SaveToken(ctx context.Context, owner, token string) error
	DeleteToken(ctx context.Context, owner string) error
}
