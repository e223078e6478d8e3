package session

import (
	"github.com/DanRulev/wordweaver/internal/models"
)

// State is everything a client session shows. It is a value: Reduce never mutates
// a State it receives, so snapshots may be shared freely.
type State struct {
	Screen Screen       `json:"screen"`
	Token  string       `json:"token,omitempty"`
	User   *models.User `json:"user,omitempty"`

	Words     []models.WordCard `json:"words,omitempty"`
	Sets      []models.StudySet `json:"sets,omitempty"`
	ActiveSet string            `json:"active_set,omitempty"`
	Deck      Deck              `json:"deck"`
	Quiz      *Quiz             `json:"quiz,omitempty"`
	Choice    *Choice           `json:"choice,omitempty"`

	Leaderboard []models.LeaderboardEntry `json:"leaderboard,omitempty"`
	Users       []models.User             `json:"users,omitempty"`
	Progress    *models.UserProgress      `json:"progress,omitempty"`
	Backups     []models.Backup           `json:"backups,omitempty"`
	LoginCodes  []models.LoginCode        `json:"login_codes,omitempty"`

	// Class holds metadata of a validated login code during registration.
	Class     *models.ClassInfo `json:"class,omitempty"`
	ClassCode string            `json:"class_code,omitempty"`

	Notice  string   `json:"notice,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// Deck is the study cursor over the active study set.
type Deck struct {
	Index    int  `json:"index"`
	Revealed bool `json:"revealed"`
}

type FailureKind int

const (
	FailureGeneric FailureKind = iota
	FailureAuth
	FailureValidation
	FailureNotFound
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "auth"
	case FailureValidation:
		return "validation"
	case FailureNotFound:
		return "not-found"
	}
	return "generic"
}

// Failure is the user-visible outcome of a failed action.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

func New() State {
	return State{Screen: ScreenWelcome}
}

func (s State) SignedIn() bool {
	return s.User != nil
}

func (s State) IsTeacher() bool {
	return s.User != nil && s.User.IsTeacher
}

// Loading reports whether the dashboard has no deck to show yet.
func (s State) Loading() bool {
	return s.Screen == ScreenDashboard && len(s.Words) == 0
}

// CurrentCard is the card under the cursor: the quiz card in quiz mode, the deck card otherwise.
func (s State) CurrentCard() (models.WordCard, bool) {
	deck := s.ActiveDeck()
	idx := s.Deck.Index
	if s.Quiz != nil {
		idx = s.Quiz.CardIndex
	}
	if idx < 0 || idx >= len(deck) {
		return models.WordCard{}, false
	}
	return deck[idx], true
}
