package session

import "fmt"

// Screen is the single screen a session renders at any moment.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenStudentLogin
	ScreenTeacherLogin
	ScreenStudentRegister
	ScreenDashboard
	ScreenStudy
	ScreenLearning
	ScreenLeaderboard
	ScreenAdmin
	ScreenSlideCreator
	ScreenStudySetCreator
	ScreenBackupManager
	ScreenLoginCodeManager
	ScreenPrintableView
)

// Screens lists every screen in declaration order.
var Screens = []Screen{
	ScreenWelcome,
	ScreenStudentLogin,
	ScreenTeacherLogin,
	ScreenStudentRegister,
	ScreenDashboard,
	ScreenStudy,
	ScreenLearning,
	ScreenLeaderboard,
	ScreenAdmin,
	ScreenSlideCreator,
	ScreenStudySetCreator,
	ScreenBackupManager,
	ScreenLoginCodeManager,
	ScreenPrintableView,
}

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenStudentLogin:
		return "student-login"
	case ScreenTeacherLogin:
		return "teacher-login"
	case ScreenStudentRegister:
		return "student-register"
	case ScreenDashboard:
		return "dashboard"
	case ScreenStudy:
		return "study"
	case ScreenLearning:
		return "learning"
	case ScreenLeaderboard:
		return "leaderboard"
	case ScreenAdmin:
		return "admin"
	case ScreenSlideCreator:
		return "slide-creator"
	case ScreenStudySetCreator:
		return "study-set-creator"
	case ScreenBackupManager:
		return "backup-manager"
	case ScreenLoginCodeManager:
		return "login-code-manager"
	case ScreenPrintableView:
		return "printable-view"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

func ParseScreen(name string) (Screen, bool) {
	for _, s := range Screens {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Screen) UnmarshalText(text []byte) error {
	parsed, ok := ParseScreen(string(text))
	if !ok {
		return fmt.Errorf("unknown screen %q", text)
	}
	*s = parsed
	return nil
}

// Public screens are reachable without a signed-in user.
func (s Screen) Public() bool {
	switch s {
	case ScreenWelcome, ScreenStudentLogin, ScreenTeacherLogin, ScreenStudentRegister:
		return true
	}
	return false
}

// TeacherOnly screens are the admin dashboard and its overlays.
func (s Screen) TeacherOnly() bool {
	switch s {
	case ScreenAdmin, ScreenSlideCreator, ScreenStudySetCreator, ScreenBackupManager,
		ScreenLoginCodeManager, ScreenPrintableView:
		return true
	}
	return false
}

// Overlay screens return to the admin dashboard on cancel or save.
func (s Screen) Overlay() bool {
	return s.TeacherOnly() && s != ScreenAdmin
}

var transitions = map[Screen][]Screen{
	ScreenWelcome:          {ScreenStudentLogin, ScreenTeacherLogin, ScreenStudentRegister},
	ScreenStudentLogin:     {ScreenWelcome, ScreenStudentRegister},
	ScreenStudentRegister:  {ScreenWelcome, ScreenStudentLogin},
	ScreenTeacherLogin:     {ScreenWelcome},
	ScreenDashboard:        {ScreenStudy, ScreenLearning, ScreenLeaderboard, ScreenAdmin},
	ScreenStudy:            {ScreenDashboard},
	ScreenLearning:         {ScreenDashboard},
	ScreenLeaderboard:      {ScreenDashboard},
	ScreenAdmin:            {ScreenDashboard, ScreenSlideCreator, ScreenStudySetCreator, ScreenBackupManager, ScreenLoginCodeManager, ScreenPrintableView},
	ScreenSlideCreator:     {ScreenAdmin},
	ScreenStudySetCreator:  {ScreenAdmin},
	ScreenBackupManager:    {ScreenAdmin},
	ScreenLoginCodeManager: {ScreenAdmin},
	ScreenPrintableView:    {ScreenAdmin},
}

func (s Screen) CanReach(to Screen) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}
