package models

// Badges shown on the dashboard, in display order.
var KnownBadges = []string{"First Century", "Word Warrior", "Scholar Supreme", "Level Master"}

type User struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	IsTeacher   bool     `json:"is_teacher"`
	Level       int      `json:"level"`
	TotalPoints int      `json:"total_points"`
	Badges      []string `json:"badges"`
	StreakDays  int      `json:"streak_days"`
	ClassName   string   `json:"class_name,omitempty"`
	BlockNumber string   `json:"block_number,omitempty"`
	School      string   `json:"school,omitempty"`
	Grade       string   `json:"grade,omitempty"`
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LevelTarget is the points ceiling of the dashboard progress bar.
func (u User) LevelTarget() int {
	level := u.Level
	if level < 1 {
		level = 1
	}
	return max(level*100, 100)
}

func (u User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// ActiveStudents returns the students (non-teachers) that have earned any points.
func ActiveStudents(users []User) []User {
	var active []User
	for _, u := range users {
		if !u.IsTeacher && u.TotalPoints > 0 {
			active = append(active, u)
		}
	}
	return active
}

func Students(users []User) []User {
	var students []User
	for _, u := range users {
		if !u.IsTeacher {
			students = append(students, u)
		}
	}
	return students
}

type LeaderboardEntry struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Level       int      `json:"level"`
	TotalPoints int      `json:"total_points"`
	Badges      []string `json:"badges"`
}
