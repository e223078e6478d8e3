package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/service"
	mock_service "github.com/DanRulev/wordweaver/internal/service/mock"
	"github.com/DanRulev/wordweaver/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newModelMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockAPII)) Model {
	t.Helper()

	api := mock_service.NewMockAPII(ctrl)
	api.EXPECT().SetToken(gomock.Any()).AnyTimes()
	if setupMock != nil {
		setupMock(api)
	}

	return New(service.NewController(api, nil, "local", zap.NewNop()), 5*time.Second, zap.NewNop())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys and runs the controller commands they return.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		next, cmd := m.Update(keyMsg(k))
		if cmd != nil {
			msg, ok := cmd().(syncedMsg)
			require.True(t, ok, "key %q returned a non-sync command", k)
			next, _ = next.Update(msg)
		}
		m = next.(Model)
	}
	return m
}

// fill sets the values of the open form.
func fill(t *testing.T, m Model, values ...string) {
	t.Helper()

	require.NotNil(t, m.form)
	require.Len(t, m.form.inputs, len(values))
	for i, v := range values {
		m.form.setValue(i, v)
	}
}

func testWords(n int) []models.WordCard {
	words := make([]models.WordCard, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, models.WordCard{
			ID:      fmt.Sprintf("w%d", i),
			Root:    fmt.Sprintf("root%d", i),
			Type:    models.TypeRoot,
			Origin:  models.OriginGreek,
			Meaning: fmt.Sprintf("meaning %d", i),
			Points:  10,
		})
	}
	return words
}

func expectLogin(api *mock_service.MockAPII, teacher bool, words []models.WordCard) {
	user := models.User{ID: "u1", FirstName: "Ana", LastName: "Lee", IsTeacher: teacher, Level: 1, TotalPoints: 40}
	api.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ana@school.org", Password: "secret"}).
		Return(models.AuthResponse{AccessToken: "tok", User: user}, nil)
	api.EXPECT().Words(gomock.Any()).Return(words, nil)
	api.EXPECT().Profile(gomock.Any()).Return(user, nil)
	if teacher {
		api.EXPECT().StudySets(gomock.Any()).Return(nil, nil)
	}
}

func login(t *testing.T, m Model, teacher bool) Model {
	t.Helper()

	key := "s"
	if teacher {
		key = "t"
	}
	m = press(t, m, key)
	fill(t, m, "ana@school.org", "secret")
	m = press(t, m, "enter")
	require.Equal(t, session.ScreenDashboard, m.state.Screen)
	return m
}

func TestModel_Login(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, func(api *mock_service.MockAPII) {
		expectLogin(api, false, testWords(3))
	})
	assert.Contains(t, m.View(), "Word Weaver")

	m = press(t, m, "s")
	require.NotNil(t, m.form)
	assert.Equal(t, session.ScreenStudentLogin, m.state.Screen)

	m = press(t, m, "enter")
	require.NotNil(t, m.state.Failure)
	assert.Equal(t, session.FailureValidation, m.state.Failure.Kind)
	assert.NotNil(t, m.form)

	fill(t, m, "ana@school.org", "secret")
	m = press(t, m, "enter")

	assert.Equal(t, session.ScreenDashboard, m.state.Screen)
	assert.Nil(t, m.form)
	view := m.View()
	assert.Contains(t, view, "Welcome, Ana Lee!")
	assert.Contains(t, view, "3 words")
	assert.NotContains(t, view, "a admin")
}

func TestModel_TypingGoesToForm(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, nil)
	m = press(t, m, "s")

	next, _ := m.Update(keyMsg("q"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("pw"))
	m = next.(Model)

	assert.Equal(t, []string{"q", "pw"}, m.form.values())
	assert.Equal(t, session.ScreenStudentLogin, m.state.Screen)

	m = press(t, m, "esc")
	assert.Equal(t, session.ScreenWelcome, m.state.Screen)
	assert.Nil(t, m.form)
}

func TestModel_Register(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, func(api *mock_service.MockAPII) {
		api.EXPECT().ValidateLoginCode(gomock.Any(), "ENG9-3").
			Return(models.ClassInfo{ClassName: "English 9", BlockNumber: "3", School: "Central", Grade: "9"}, nil)
	})

	m = press(t, m, "r")
	fill(t, m, "Ana", "Lee", "ana@school.org", "secret1", "ENG9-3")
	m = press(t, m, "ctrl+k")

	require.NotNil(t, m.state.Class)
	assert.Equal(t, "ENG9-3", m.state.ClassCode)
	assert.Contains(t, m.View(), "Class English 9, block 3")
	assert.Equal(t, "Ana", m.form.values()[0])

	m.form.setValue(registerCodeField, "")
	m = press(t, m, "ctrl+k")
	assert.Nil(t, m.state.Class)
	assert.Empty(t, m.state.ClassCode)
	assert.NotContains(t, m.View(), "English 9")
}

func TestModel_Study(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, func(api *mock_service.MockAPII) {
		expectLogin(api, false, testWords(3))
		api.EXPECT().RecordStudySession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.StudySessionRequest) (models.PointsResponse, error) {
				assert.Equal(t, "w0", req.WordID)
				assert.True(t, req.Correct)
				return models.PointsResponse{PointsEarned: 10}, nil
			})
	})
	m = login(t, m, false)

	m = press(t, m, "s")
	assert.Equal(t, session.ScreenStudy, m.state.Screen)
	assert.Contains(t, m.View(), "card 1/3")

	m = press(t, m, "space")
	assert.True(t, m.state.Deck.Revealed)
	assert.Contains(t, m.View(), "meaning 0")

	m = press(t, m, "y")
	assert.Equal(t, 1, m.state.Deck.Index)
	assert.False(t, m.state.Deck.Revealed)
	assert.Equal(t, 50, m.state.User.TotalPoints)

	m = press(t, m, "]")
	assert.Equal(t, "prefixes", m.state.ActiveSet)

	m = press(t, m, "z")
	require.NotNil(t, m.state.Quiz)
	assert.Contains(t, m.View(), "question 1/10")

	m = press(t, m, "esc")
	assert.Nil(t, m.state.Quiz)
	assert.Equal(t, session.ScreenStudy, m.state.Screen)
}

func TestModel_Learning(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, func(api *mock_service.MockAPII) {
		expectLogin(api, false, testWords(2))
	})
	m = login(t, m, false)

	m = press(t, m, "l")
	require.Equal(t, session.ScreenLearning, m.state.Screen)
	require.NotNil(t, m.state.Choice)
	require.Len(t, m.state.Choice.Options, 3)

	for m.state.Choice.Options[m.cursor] != "meaning 0" {
		m = press(t, m, "down")
	}
	m = press(t, m, "enter")

	assert.True(t, m.state.Choice.Answered)
	assert.True(t, m.state.Choice.Success)
	assert.Contains(t, m.View(), "Correct!")

	m = press(t, m, "right")
	assert.Equal(t, 1, m.state.Deck.Index)
	assert.False(t, m.state.Choice.Answered)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_SlideCreator(t *testing.T) {
	t.Parallel()

	words := testWords(2)
	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, func(api *mock_service.MockAPII) {
		expectLogin(api, true, words)
		api.EXPECT().Users(gomock.Any()).Return([]models.User{{ID: "u2", FirstName: "Sam", TotalPoints: 5}}, nil)
		api.EXPECT().StudySets(gomock.Any()).Return(nil, nil)
		api.EXPECT().CreateWord(gomock.Any(), models.WordInput{
			Root:       "tele",
			Type:       models.TypePrefix,
			Origin:     models.OriginGreek,
			Meaning:    "far, distant",
			Examples:   []string{"telephone", "telescope"},
			Difficulty: models.Beginner,
			Points:     10,
		}).Return(models.CreatedResponse{ID: "w9"}, nil)
		api.EXPECT().Words(gomock.Any()).Return(append(words, models.WordCard{ID: "w9", Root: "tele", Type: models.TypePrefix}), nil)
	})
	m = login(t, m, true)

	m = press(t, m, "a")
	require.Equal(t, session.ScreenAdmin, m.state.Screen)
	assert.Contains(t, m.View(), "1 students, 1 active")

	m = press(t, m, "w")
	require.Equal(t, session.ScreenSlideCreator, m.state.Screen)

	fill(t, m, "", "tele", "Prefix", "greek", "far, distant", "", "telephone; telescope", "beginner", "ten")
	m = press(t, m, "enter")
	assert.Equal(t, "Points must be a number", m.hint)
	assert.Equal(t, session.ScreenSlideCreator, m.state.Screen)

	m.form.setValue(8, "10")
	m = press(t, m, "enter")

	assert.Equal(t, session.ScreenAdmin, m.state.Screen)
	assert.Empty(t, m.hint)
	assert.Len(t, m.state.Words, 3)
	assert.Contains(t, m.View(), `Word "tele" created`)
}

func TestModel_SlideCreatorLoadsWord(t *testing.T) {
	t.Parallel()

	words := testWords(2)
	words[1].Examples = []string{"rootology", "rooter"}
	words[1].Difficulty = models.Intermediate

	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, func(api *mock_service.MockAPII) {
		expectLogin(api, true, words)
		api.EXPECT().Users(gomock.Any()).Return(nil, nil)
		api.EXPECT().StudySets(gomock.Any()).Return(nil, nil)
	})
	m = login(t, m, true)
	m = press(t, m, "a", "w")
	require.Equal(t, session.ScreenSlideCreator, m.state.Screen)

	m.form.setValue(0, "w7")
	m = press(t, m, "ctrl+k")
	assert.Equal(t, "No word with id w7", m.hint)

	m.form.setValue(0, "w1")
	m = press(t, m, "ctrl+k")
	assert.Empty(t, m.hint)
	assert.Equal(t, []string{"w1", "root1", "root", "Greek", "meaning 1", "", "rootology; rooter", "intermediate", "10"}, m.form.values())
}

func TestModel_LoginCodes(t *testing.T) {
	t.Parallel()

	expires := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)
	code := models.LoginCode{Code: "ENG9-3", ClassName: "English 9", BlockNumber: "3", MaxUses: 30, ExpiresAt: models.Timestamp{Time: expires}, Active: true}

	ctrl := gomock.NewController(t)
	m := newModelMock(t, ctrl, func(api *mock_service.MockAPII) {
		expectLogin(api, true, testWords(1))
		api.EXPECT().Users(gomock.Any()).Return(nil, nil).Times(2)
		api.EXPECT().StudySets(gomock.Any()).Return(nil, nil).Times(2)
		gomock.InOrder(
			api.EXPECT().LoginCodes(gomock.Any()).Return(nil, nil),
			api.EXPECT().CreateLoginCode(gomock.Any(), models.LoginCodeInput{
				ClassName: "English 9", BlockNumber: "3", School: "Central", Grade: "9", MaxUses: 30, ExpiresInDays: 14,
			}).Return(code, nil),
			api.EXPECT().LoginCodes(gomock.Any()).Return([]models.LoginCode{code}, nil),
		)
		toggled := code
		toggled.Active = false
		api.EXPECT().ToggleLoginCode(gomock.Any(), "ENG9-3").Return(toggled, nil)
		api.EXPECT().LoginCodes(gomock.Any()).Return([]models.LoginCode{toggled}, nil)
		api.EXPECT().Words(gomock.Any()).Return(testWords(1), nil).Times(2)
	})
	m = login(t, m, true)
	m = press(t, m, "a", "c")
	require.Equal(t, session.ScreenLoginCodeManager, m.state.Screen)
	assert.Nil(t, m.form)

	m = press(t, m, "n")
	require.True(t, m.overlay)
	fill(t, m, "English 9", "3", "Central", "9", "30", "14")
	m = press(t, m, "enter")

	assert.Nil(t, m.form)
	assert.False(t, m.overlay)
	assert.Equal(t, "Login code ENG9-3 created for English 9", m.state.Notice)
	assert.Contains(t, m.View(), "ENG9-3 · English 9 block 3 · 0/30 uses · expires 2024-09-16 · active")

	m = press(t, m, "t")
	assert.Equal(t, "Login code ENG9-3 deactivated", m.state.Notice)
	assert.Contains(t, m.View(), "inactive")

	m = press(t, m, "esc")
	assert.Equal(t, session.ScreenAdmin, m.state.Screen)
}

func TestCycleSet(t *testing.T) {
	t.Parallel()

	s := session.State{Sets: []models.StudySet{{Name: "Week 1"}}}

	tests := []struct {
		name    string
		active  string
		forward bool
		want    string
	}{
		{name: "from default", active: "", forward: true, want: "prefixes"},
		{name: "wrap forward", active: "Week 1", forward: true, want: session.AllSet},
		{name: "wrap back", active: session.AllSet, forward: false, want: "Week 1"},
		{name: "back", active: "roots", forward: false, want: "prefixes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := s
			st.ActiveSet = tt.active
			assert.Equal(t, tt.want, cycleSet(st, tt.forward))
		})
	}
}
