package session

import "github.com/DanRulev/wordweaver/internal/models"

// Event is anything that changes a session. The set of events is closed.
type Event interface {
	isEvent()
}

type (
	// Navigated is an explicit screen change requested by the user.
	Navigated struct{ To Screen }

	// LoggedIn carries a fresh token and the user returned with it.
	LoggedIn struct {
		Token string
		User  models.User
	}

	// DataLoaded carries the profile and words fetched after sign-in; it opens the dashboard.
	DataLoaded struct {
		User  models.User
		Words []models.WordCard
	}

	// TokenRejected clears a token the server refused.
	TokenRejected struct{ Message string }

	LoggedOut struct{}

	ProfileLoaded struct{ User models.User }
	WordsLoaded   struct{ Words []models.WordCard }
	SetsLoaded    struct{ Sets []models.StudySet }
	SetSelected   struct{ Name string }

	CardAdvanced  struct{}
	CardRetreated struct{}
	AnswerShown   struct{}

	// PointsEarned adds server-computed points to the signed-in user.
	PointsEarned struct{ Points int }

	QuizStarted struct{ CardIndex int }
	// QuizAnswered scores the current question; NextCardIndex is used unless it was the last one.
	QuizAnswered struct {
		Correct       bool
		NextCardIndex int
	}
	QuizRecorded  struct{ PointsEarned int }
	QuizAbandoned struct{ Message string }
	QuizExited    struct{}

	ChoiceOffered  struct{ Options []string }
	ChoiceSelected struct{ Option string }

	LeaderboardLoaded struct{ Entries []models.LeaderboardEntry }
	UsersLoaded       struct{ Users []models.User }
	ProgressLoaded    struct{ Progress models.UserProgress }
	BackupsLoaded     struct{ Backups []models.Backup }
	LoginCodesLoaded  struct{ Codes []models.LoginCode }

	ClassValidated struct {
		Code  string
		Class models.ClassInfo
	}
	ClassCleared struct{}

	Noticed struct{ Message string }
	Failed  struct {
		Kind    FailureKind
		Message string
	}
)

func (Navigated) isEvent()         {}
func (LoggedIn) isEvent()          {}
func (DataLoaded) isEvent()        {}
func (TokenRejected) isEvent()     {}
func (LoggedOut) isEvent()         {}
func (ProfileLoaded) isEvent()     {}
func (WordsLoaded) isEvent()       {}
func (SetsLoaded) isEvent()        {}
func (SetSelected) isEvent()       {}
func (CardAdvanced) isEvent()      {}
func (CardRetreated) isEvent()     {}
func (AnswerShown) isEvent()       {}
func (PointsEarned) isEvent()      {}
func (QuizStarted) isEvent()       {}
func (QuizAnswered) isEvent()      {}
func (QuizRecorded) isEvent()      {}
func (QuizAbandoned) isEvent()     {}
func (QuizExited) isEvent()        {}
func (ChoiceOffered) isEvent()     {}
func (ChoiceSelected) isEvent()    {}
func (LeaderboardLoaded) isEvent() {}
func (UsersLoaded) isEvent()       {}
func (ProgressLoaded) isEvent()    {}
func (BackupsLoaded) isEvent()     {}
func (LoginCodesLoaded) isEvent()  {}
func (ClassValidated) isEvent()    {}
func (ClassCleared) isEvent()      {}
func (Noticed) isEvent()           {}
func (Failed) isEvent()            {}
