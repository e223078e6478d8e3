package models

import "time"

type StudySet struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	WordIDs     []string `json:"word_ids"`
}

type StudySetInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	WordIDs     []string `json:"word_ids" validate:"required,min=1"`
}

type StudySessionRequest struct {
	UserID    string    `json:"user_id"`
	WordID    string    `json:"word_id"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

type QuizResultRequest struct {
	UserID         string    `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Timestamp      time.Time `json:"timestamp"`
}

type PointsResponse struct {
	Status       string `json:"status"`
	PointsEarned int    `json:"points_earned"`
}

type CreatedResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// StudyRecord is a stored study session as the admin progress view returns it.
type StudyRecord struct {
	WordID       string    `json:"word_id"`
	Correct      bool      `json:"correct"`
	Timestamp    Timestamp `json:"timestamp"`
	PointsEarned int       `json:"points_earned"`
}

type QuizRecord struct {
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Timestamp      Timestamp `json:"timestamp"`
	PointsEarned   int       `json:"points_earned"`
}

// UserProgress is the teacher's view of one student's history.
type UserProgress struct {
	UserID        string        `json:"user_id"`
	StudySessions []StudyRecord `json:"study_sessions"`
	QuizResults   []QuizRecord  `json:"quiz_results"`
}

func (p UserProgress) CorrectSessions() int {
	n := 0
	for _, s := range p.StudySessions {
		if s.Correct {
			n++
		}
	}
	return n
}

// PointsEarned totals the points credited for the student's sessions and quizzes.
func (p UserProgress) PointsEarned() int {
	n := 0
	for _, s := range p.StudySessions {
		n += s.PointsEarned
	}
	for _, q := range p.QuizResults {
		n += q.PointsEarned
	}
	return n
}
