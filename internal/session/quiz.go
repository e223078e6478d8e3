package session

// QuizLength is the fixed number of questions in a quiz, regardless of deck size.
const QuizLength = 10

// Quiz is a live quiz. At most one exists per session.
type Quiz struct {
	Question  int  `json:"question"`
	Score     int  `json:"score"`
	CardIndex int  `json:"card_index"`
	Finished  bool `json:"finished"`
}

// Answered is the number of questions answered so far.
func (q Quiz) Answered() int {
	if q.Finished {
		return QuizLength
	}
	return q.Question
}
