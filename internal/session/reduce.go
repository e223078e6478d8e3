package session

import (
	"fmt"

	"github.com/DanRulev/wordweaver/internal/models"
)

// Reduce folds one event into a session. It performs no I/O and reads no clock or randomness;
// events that would be invalid in s leave it unchanged.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Navigated:
		return navigate(s, ev.To)

	case LoggedIn:
		user := ev.User
		s.Token = ev.Token
		s.User = &user
		s.Failure = nil
		return s

	case DataLoaded:
		user := ev.User
		s.User = &user
		s.Words = uniqueWords(ev.Words)
		s.Screen = ScreenDashboard
		s.Class, s.ClassCode = nil, ""
		s.Failure = nil
		return clampCursor(s)

	case TokenRejected:
		s.Token = ""
		s.User = nil
		s.Failure = &Failure{Kind: FailureAuth, Message: ev.Message}
		return s

	case LoggedOut:
		return New()

	case ProfileLoaded:
		user := ev.User
		s.User = &user
		return s

	case WordsLoaded:
		s.Words = uniqueWords(ev.Words)
		return clampCursor(s)

	case SetsLoaded:
		s.Sets = append([]models.StudySet(nil), ev.Sets...)
		return clampCursor(s)

	case SetSelected:
		if s.Quiz != nil {
			return s
		}
		s.ActiveSet = AllSet
		for _, name := range s.SetNames() {
			if name == ev.Name {
				s.ActiveSet = name
			}
		}
		s.Deck = Deck{}
		s.Choice = nil
		return s

	case CardAdvanced:
		return moveCard(s, Next)

	case CardRetreated:
		return moveCard(s, Prev)

	case AnswerShown:
		if _, ok := s.CurrentCard(); ok {
			s.Deck.Revealed = true
		}
		return s

	case PointsEarned:
		return addPoints(s, ev.Points)

	case QuizStarted:
		n := len(s.ActiveDeck())
		if s.Screen != ScreenStudy || n == 0 {
			return s
		}
		s.Quiz = &Quiz{CardIndex: clampIndex(ev.CardIndex, n)}
		s.Deck.Revealed = false
		s.Choice = nil
		s.Notice, s.Failure = "", nil
		return s

	case QuizAnswered:
		if s.Quiz == nil || s.Quiz.Finished {
			return s
		}
		q := *s.Quiz
		if ev.Correct {
			q.Score++
		}
		if q.Question == QuizLength-1 {
			q.Finished = true
		} else {
			q.Question++
			q.CardIndex = clampIndex(ev.NextCardIndex, len(s.ActiveDeck()))
		}
		s.Quiz = &q
		s.Deck.Revealed = false
		return s

	case QuizRecorded:
		if s.Quiz == nil {
			return s
		}
		score := s.Quiz.Score
		s.Quiz = nil
		s = addPoints(s, ev.PointsEarned)
		s.Notice = fmt.Sprintf("Quiz completed! Score: %d/%d. Points earned: %d", score, QuizLength, ev.PointsEarned)
		s.Failure = nil
		return s

	case QuizAbandoned:
		if s.Quiz == nil {
			return s
		}
		score := s.Quiz.Score
		s.Quiz = nil
		s.Notice = fmt.Sprintf("Quiz completed! Score: %d/%d", score, QuizLength)
		s.Failure = &Failure{Kind: FailureGeneric, Message: ev.Message}
		return s

	case QuizExited:
		s.Quiz = nil
		s.Deck.Revealed = false
		return s

	case ChoiceOffered:
		card, ok := s.CurrentCard()
		if !ok || s.Quiz != nil || s.Screen != ScreenLearning {
			return s
		}
		s.Choice = &Choice{
			CardIndex: s.Deck.Index,
			Options:   append([]string(nil), ev.Options...),
			Correct:   card.Meaning,
		}
		return s

	case ChoiceSelected:
		if s.Choice == nil || s.Choice.Answered {
			return s
		}
		c := *s.Choice
		c.Selected = ev.Option
		c.Answered = true
		c.Success = ev.Option == c.Correct
		s.Choice = &c
		s.Deck.Revealed = true
		return s

	case LeaderboardLoaded:
		s.Leaderboard = append([]models.LeaderboardEntry(nil), ev.Entries...)
		return s

	case UsersLoaded:
		s.Users = append([]models.User(nil), ev.Users...)
		return s

	case ProgressLoaded:
		p := ev.Progress
		s.Progress = &p
		return s

	case BackupsLoaded:
		s.Backups = append([]models.Backup(nil), ev.Backups...)
		return s

	case LoginCodesLoaded:
		s.LoginCodes = append([]models.LoginCode(nil), ev.Codes...)
		return s

	case ClassValidated:
		class := ev.Class
		s.Class = &class
		s.ClassCode = ev.Code
		s.Failure = nil
		return s

	case ClassCleared:
		s.Class, s.ClassCode = nil, ""
		return s

	case Noticed:
		s.Notice = ev.Message
		s.Failure = nil
		return s

	case Failed:
		s.Notice = ""
		s.Failure = &Failure{Kind: ev.Kind, Message: ev.Message}
		return s
	}

	return s
}

func navigate(s State, to Screen) State {
	if !s.Screen.CanReach(to) {
		return s
	}
	if !to.Public() && !s.SignedIn() {
		return s
	}
	if to.TeacherOnly() && !s.IsTeacher() {
		return s
	}

	if s.Screen == ScreenStudy && to != ScreenStudy {
		s.Quiz = nil
	}
	if to == ScreenWelcome {
		s.Class, s.ClassCode = nil, ""
	}
	if to == ScreenStudy || to == ScreenLearning {
		s.Deck.Revealed = false
	}
	if to != ScreenLearning {
		s.Choice = nil
	}
	if to != ScreenAdmin && !to.Overlay() {
		s.Progress = nil
	}

	s.Screen = to
	s.Notice, s.Failure = "", nil
	return s
}

func moveCard(s State, step func(i, n int) int) State {
	n := len(s.ActiveDeck())
	if n == 0 || s.Quiz != nil {
		return s
	}
	s.Deck = Deck{Index: step(s.Deck.Index, n)}
	s.Choice = nil
	return s
}

func addPoints(s State, points int) State {
	if s.User == nil || points <= 0 {
		return s
	}
	user := *s.User
	user.TotalPoints += points
	s.User = &user
	return s
}

// clampCursor keeps the deck and quiz cursors inside the active deck after it changes.
func clampCursor(s State) State {
	n := len(s.ActiveDeck())
	if s.Deck.Index >= n {
		s.Deck = Deck{}
	}
	if s.Quiz != nil && s.Quiz.CardIndex >= n {
		q := *s.Quiz
		q.CardIndex = 0
		s.Quiz = &q
	}
	if s.Choice != nil && s.Choice.CardIndex != s.Deck.Index {
		s.Choice = nil
	}
	return s
}

func clampIndex(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}
