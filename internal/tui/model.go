package tui

import (
	"context"
	"errors"
	"time"

	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/session"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// syncedMsg carries the controller state after an action finished.
type syncedMsg struct {
	state session.State
	err   error
}

// inputError is a form value the terminal rejects before it reaches the controller.
type inputError string

func (e inputError) Error() string { return string(e) }

// Model renders one controller session in the terminal.
type Model struct {
	ctrl    *service.Controller
	timeout time.Duration
	log     *zap.Logger

	state   session.State
	form    *form
	overlay bool
	cursor  int
	hint    string

	level progress.Model
	width int
}

func New(ctrl *service.Controller, timeout time.Duration, log *zap.Logger) Model {
	m := Model{
		ctrl:    ctrl,
		timeout: timeout,
		log:     log,
		level:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
	return m.apply(ctrl.State())
}

func (m Model) Init() tea.Cmd {
	return nil
}

// run executes fn against the controller off the UI loop.
func (m Model) run(fn func(ctx context.Context) error) tea.Cmd {
	ctrl, timeout := m.ctrl, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := fn(ctx)
		return syncedMsg{state: ctrl.State(), err: err}
	}
}

// apply takes a new state snapshot. Changing screen resets the cursor and opens the screen's form.
func (m Model) apply(s session.State) Model {
	if s.Screen != m.state.Screen || (m.form == nil && !m.overlay) {
		if s.Screen != m.state.Screen {
			m.cursor = 0
			m.hint = ""
		}
		m.overlay = false
		m.form = screenForm(s.Screen)
	}
	m.state = s
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.level.Width = min(max(msg.Width-20, 10), 60)
		return m, nil

	case syncedMsg:
		var ie inputError
		switch {
		case errors.As(msg.err, &ie):
			m.hint = ie.Error()
		case msg.err != nil:
			m.hint = ""
			m.log.Debug("action failed", zap.Stringer("screen", msg.state.Screen), zap.Error(msg.err))
		default:
			m.hint = ""
			if m.overlay {
				m.form, m.overlay = nil, false
			}
		}
		return m.apply(msg.state), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateScreen(msg)
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	switch msg.String() {
	case "enter":
		values := f.values()
		return m, m.run(func(ctx context.Context) error {
			return f.submit(ctx, m.ctrl, values)
		})
	case "esc":
		if m.overlay {
			m.form, m.overlay = nil, false
			return m, nil
		}
		return m, m.navigate(backTarget(m.state.Screen))
	case "ctrl+k":
		switch m.state.Screen {
		case session.ScreenStudentRegister:
			code := f.values()[registerCodeField]
			if code == "" {
				return m.local(m.ctrl.ClearClass)
			}
			return m, m.run(func(ctx context.Context) error {
				return m.ctrl.ValidateLoginCode(ctx, code)
			})
		case session.ScreenSlideCreator:
			id := f.values()[0]
			if !fillWord(f, m.state.Words, id) {
				m.hint = "No word with id " + id
				return m, nil
			}
			m.hint = ""
			return m, nil
		}
	}

	return m, f.update(msg)
}

func (m Model) navigate(to session.Screen) tea.Cmd {
	ctrl := m.ctrl
	return m.run(func(ctx context.Context) error {
		err := ctrl.Navigate(ctx, to)
		if to == session.ScreenLearning {
			ctrl.OfferChoice()
		}
		return err
	})
}

// local applies a controller call that does no I/O.
func (m Model) local(fn func() session.State) (tea.Model, tea.Cmd) {
	m.hint = ""
	return m.apply(fn()), nil
}

func (m Model) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	ctrl := m.ctrl
	s := m.state

	if key == "esc" && s.Screen != session.ScreenWelcome && s.Screen != session.ScreenDashboard {
		if s.Screen == session.ScreenStudy && s.Quiz != nil {
			return m.local(ctrl.ExitQuiz)
		}
		return m, m.navigate(backTarget(s.Screen))
	}

	switch s.Screen {
	case session.ScreenWelcome:
		switch key {
		case "s":
			return m, m.navigate(session.ScreenStudentLogin)
		case "t":
			return m, m.navigate(session.ScreenTeacherLogin)
		case "r":
			return m, m.navigate(session.ScreenStudentRegister)
		case "q":
			return m, tea.Quit
		}

	case session.ScreenStudentLogin, session.ScreenTeacherLogin, session.ScreenStudentRegister,
		session.ScreenSlideCreator, session.ScreenStudySetCreator:
		// keys go to the screen form

	case session.ScreenDashboard:
		switch key {
		case "s":
			return m, m.navigate(session.ScreenStudy)
		case "l":
			return m, m.navigate(session.ScreenLearning)
		case "b":
			return m, m.run(ctrl.OpenLeaderboard)
		case "a":
			return m, m.run(ctrl.OpenAdmin)
		case "r":
			return m, m.run(func(ctx context.Context) error {
				ctrl.RefreshProfile(ctx)
				return nil
			})
		case "o":
			return m, m.run(func(ctx context.Context) error {
				ctrl.Logout(ctx)
				return nil
			})
		case "q":
			return m, tea.Quit
		}

	case session.ScreenStudy:
		return m.updateStudy(key)

	case session.ScreenLearning:
		return m.updateLearning(key)

	case session.ScreenLeaderboard:
		if key == "r" {
			return m, m.run(ctrl.LoadLeaderboard)
		}

	case session.ScreenAdmin:
		return m.updateAdmin(key)

	case session.ScreenBackupManager:
		return m.updateBackups(key)

	case session.ScreenLoginCodeManager:
		return m.updateLoginCodes(key)

	case session.ScreenPrintableView:
		// read only
	}

	return m, nil
}

func (m Model) updateStudy(key string) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl

	if m.state.Quiz != nil {
		switch key {
		case " ", "enter":
			return m.local(ctrl.Reveal)
		case "y", "n":
			correct := key == "y"
			return m, m.run(func(ctx context.Context) error {
				return ctrl.AnswerQuiz(ctx, correct)
			})
		case "x":
			return m.local(ctrl.ExitQuiz)
		}
		return m, nil
	}

	switch key {
	case " ", "enter":
		return m.local(ctrl.Reveal)
	case "y", "n":
		correct := key == "y"
		return m, m.run(func(ctx context.Context) error {
			return ctrl.RecordStudy(ctx, correct)
		})
	case "left", "h":
		return m.local(ctrl.Prev)
	case "right", "l":
		return m.local(ctrl.Next)
	case "z":
		return m.local(ctrl.StartQuiz)
	case "[", "]":
		return m.local(func() session.State {
			return ctrl.SelectSet(cycleSet(m.state, key == "]"))
		})
	}
	return m, nil
}

func (m Model) updateLearning(key string) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	c := m.state.Choice

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if c != nil && m.cursor < len(c.Options)-1 {
			m.cursor++
		}
	case "enter":
		if c != nil && !c.Answered && m.cursor < len(c.Options) {
			return m.local(func() session.State { return ctrl.Choose(c.Options[m.cursor]) })
		}
	case "left", "h", "right", "l", "[", "]":
		m.cursor = 0
		return m.local(func() session.State {
			switch key {
			case "left", "h":
				ctrl.Prev()
			case "right", "l":
				ctrl.Next()
			default:
				ctrl.SelectSet(cycleSet(m.state, key == "]"))
			}
			return ctrl.OfferChoice()
		})
	}
	return m, nil
}

// cycleSet returns the study set after (or before) the active one.
func cycleSet(s session.State, forward bool) string {
	names := s.SetNames()
	active := s.ActiveSet
	if active == "" {
		active = session.AllSet
	}

	i := 0
	for j, n := range names {
		if n == active {
			i = j
			break
		}
	}
	if forward {
		i++
	} else {
		i--
	}
	return names[(i+len(names))%len(names)]
}

func (m Model) openOverlay(f *form) (tea.Model, tea.Cmd) {
	m.form, m.overlay = f, true
	return m, nil
}

func (m Model) updateAdmin(key string) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	students := adminStudents(m.state)

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(students)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(students) {
			id := students[m.cursor].ID
			return m, m.run(func(ctx context.Context) error {
				return ctrl.UserProgress(ctx, id)
			})
		}
	case "w":
		return m, m.navigate(session.ScreenSlideCreator)
	case "n":
		return m, m.navigate(session.ScreenStudySetCreator)
	case "b":
		return m, m.navigate(session.ScreenBackupManager)
	case "c":
		return m, m.navigate(session.ScreenLoginCodeManager)
	case "p":
		return m, m.navigate(session.ScreenPrintableView)
	case "d":
		return m.openOverlay(deleteWordForm())
	}
	return m, nil
}

func (m Model) updateBackups(key string) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	backups := m.state.Backups

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(backups)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(backups) {
			name := backups[m.cursor].CollectionName
			return m, m.run(func(ctx context.Context) error {
				return ctrl.RestoreBackup(ctx, name)
			})
		}
	case "c":
		return m, m.run(ctrl.CreateBackup)
	case "r":
		return m, m.run(ctrl.LoadBackups)
	}
	return m, nil
}

func (m Model) updateLoginCodes(key string) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	codes := m.state.LoginCodes

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(codes)-1 {
			m.cursor++
		}
	case "t", "x":
		if m.cursor >= len(codes) {
			return m, nil
		}
		code := codes[m.cursor].Code
		if key == "x" {
			m.cursor = max(m.cursor-1, 0)
			return m, m.run(func(ctx context.Context) error {
				return ctrl.DeleteLoginCode(ctx, code)
			})
		}
		return m, m.run(func(ctx context.Context) error {
			return ctrl.ToggleLoginCode(ctx, code)
		})
	case "n":
		return m.openOverlay(loginCodeForm())
	case "r":
		return m, m.run(ctrl.LoadLoginCodes)
	}
	return m, nil
}

// backTarget is where esc leads from screen.
func backTarget(screen session.Screen) session.Screen {
	switch {
	case screen.Public():
		return session.ScreenWelcome
	case screen.Overlay():
		return session.ScreenAdmin
	}
	return session.ScreenDashboard
}
