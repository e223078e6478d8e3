package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DanRulev/wordweaver/internal/client"
	"github.com/DanRulev/wordweaver/internal/models"
	mock_service "github.com/DanRulev/wordweaver/internal/service/mock"
	"github.com/DanRulev/wordweaver/internal/session"
	"github.com/DanRulev/wordweaver/pkg/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)

// firstRand always picks the first option.
type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

func newControllerMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockAPII, *mock_service.MockTokenStore)) *Controller {
	t.Helper()

	api := mock_service.NewMockAPII(ctrl)
	tokens := mock_service.NewMockTokenStore(ctrl)
	api.EXPECT().SetToken(gomock.Any()).AnyTimes()

	if setupMock != nil {
		setupMock(api, tokens)
	}

	return &Controller{
		api:    api,
		tokens: tokens,
		owner:  "42",
		rng:    firstRand{},
		now:    func() time.Time { return testNow },
		log:    zap.NewNop(),
		state:  session.New(),
	}
}

func testWords(n int) []models.WordCard {
	types := []models.WordType{models.TypePrefix, models.TypeRoot, models.TypeSuffix}
	words := make([]models.WordCard, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, models.WordCard{
			ID:      fmt.Sprintf("w%d", i),
			Root:    fmt.Sprintf("root%d", i),
			Type:    types[i%len(types)],
			Meaning: fmt.Sprintf("meaning %d", i),
			Points:  10,
		})
	}
	return words
}

// withSession puts c straight onto the dashboard as a signed-in user.
func withSession(c *Controller, teacher bool, words []models.WordCard) {
	user := models.User{ID: "u1", FirstName: "Ana", IsTeacher: teacher, TotalPoints: 100}
	c.state = session.Reduce(c.state, session.LoggedIn{Token: "tok", User: user})
	c.state = session.Reduce(c.state, session.DataLoaded{User: user, Words: words})
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}).
		SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func TestController_LoginThenStudy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	words := testWords(5)

	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
		api.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ana@school.org", Password: "secret"}).
			Return(models.AuthResponse{AccessToken: "tok", User: models.User{ID: "u1", TotalPoints: 90}}, nil)
		tokens.EXPECT().SaveToken(gomock.Any(), "42", "tok").Return(nil)
		api.EXPECT().Words(gomock.Any()).Return(words, nil)
		api.EXPECT().Profile(gomock.Any()).Return(models.User{ID: "u1", TotalPoints: 120}, nil)

		api.EXPECT().RecordStudySession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.StudySessionRequest) (models.PointsResponse, error) {
				assert.Equal(t, "u1", req.UserID)
				assert.Equal(t, words[0].ID, req.WordID)
				assert.True(t, req.Correct)
				assert.Equal(t, testNow, req.Timestamp)
				return models.PointsResponse{Status: "recorded", PointsEarned: 10}, nil
			})
	})

	require.NoError(t, c.Login(context.Background(), models.LoginRequest{Email: " ana@school.org ", Password: "secret"}, false))

	s := c.State()
	assert.Equal(t, session.ScreenDashboard, s.Screen)
	assert.Equal(t, "tok", s.Token)
	assert.Equal(t, 120, s.User.TotalPoints)
	assert.Len(t, s.Words, 5)

	require.NoError(t, c.Navigate(context.Background(), session.ScreenStudy))
	require.NoError(t, c.RecordStudy(context.Background(), true))

	s = c.State()
	assert.Equal(t, 130, s.User.TotalPoints)
	assert.Equal(t, 1, s.Deck.Index)
	assert.False(t, s.Deck.Revealed)
}

func TestController_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      models.LoginRequest
		teacher  bool
		f        func(*mock_service.MockAPII, *mock_service.MockTokenStore)
		wantKind session.FailureKind
		wantMsg  string
	}{
		{
			name:     "fail: invalid form",
			req:      models.LoginRequest{Email: "not-an-email"},
			wantKind: session.FailureValidation,
		},
		{
			name: "fail: bad credentials",
			req:  models.LoginRequest{Email: "a@b.co", Password: "x"},
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.AuthResponse{}, &client.APIError{StatusCode: 401, Detail: "Invalid credentials"})
			},
			wantKind: session.FailureAuth,
			wantMsg:  "Login failed: Invalid credentials",
		},
		{
			name:    "fail: student on teacher login",
			req:     models.LoginRequest{Email: "a@b.co", Password: "x"},
			teacher: true,
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.AuthResponse{AccessToken: "tok", User: models.User{ID: "u1"}}, nil)
			},
			wantKind: session.FailureAuth,
			wantMsg:  "Login failed: teacher access required",
		},
		{
			name: "fail: server down",
			req:  models.LoginRequest{Email: "a@b.co", Password: "x"},
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResponse{}, errors.New("connection refused"))
			},
			wantKind: session.FailureGeneric,
			wantMsg:  "Login failed: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			c := newControllerMock(t, ctrl, tt.f)
			c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenStudentLogin})

			err := c.Login(context.Background(), tt.req, tt.teacher)
			require.Error(t, err)

			s := c.State()
			assert.False(t, s.SignedIn())
			assert.Equal(t, session.ScreenStudentLogin, s.Screen)
			require.NotNil(t, s.Failure)
			assert.Equal(t, tt.wantKind, s.Failure.Kind)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, s.Failure.Message)
			}
		})
	}
}

func TestController_Restore(t *testing.T) {
	t.Parallel()

	valid := signedToken(t, testNow.Add(time.Hour))
	expired := signedToken(t, testNow.Add(-time.Hour))

	tests := []struct {
		name       string
		f          func(*mock_service.MockAPII, *mock_service.MockTokenStore)
		wantErr    bool
		wantScreen session.Screen
		wantFail   bool
	}{
		{
			name: "no stored token",
			f: func(_ *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
				tokens.EXPECT().Token(gomock.Any(), "42").Return("", nil)
			},
			wantScreen: session.ScreenWelcome,
		},
		{
			name: "store unavailable",
			f: func(_ *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
				tokens.EXPECT().Token(gomock.Any(), "42").Return("", errors.New("db closed"))
			},
			wantScreen: session.ScreenWelcome,
		},
		{
			name: "expired token is dropped",
			f: func(_ *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
				tokens.EXPECT().Token(gomock.Any(), "42").Return(expired, nil)
				tokens.EXPECT().DeleteToken(gomock.Any(), "42").Return(nil)
			},
			wantErr:    true,
			wantScreen: session.ScreenWelcome,
			wantFail:   true,
		},
		{
			name: "rejected token is dropped",
			f: func(api *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
				tokens.EXPECT().Token(gomock.Any(), "42").Return(valid, nil)
				api.EXPECT().Words(gomock.Any()).Return(testWords(2), nil).AnyTimes()
				api.EXPECT().Profile(gomock.Any()).Return(models.User{}, &client.APIError{StatusCode: 401, Detail: "Invalid token"})
				tokens.EXPECT().DeleteToken(gomock.Any(), "42").Return(nil)
			},
			wantErr:    true,
			wantScreen: session.ScreenWelcome,
			wantFail:   true,
		},
		{
			name: "success",
			f: func(api *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
				tokens.EXPECT().Token(gomock.Any(), "42").Return(valid, nil)
				api.EXPECT().Words(gomock.Any()).Return(testWords(3), nil)
				api.EXPECT().Profile(gomock.Any()).Return(models.User{ID: "u1", IsTeacher: true}, nil)
				api.EXPECT().StudySets(gomock.Any()).Return([]models.StudySet{{ID: "s1", Name: "week one"}}, nil)
			},
			wantScreen: session.ScreenDashboard,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			c := newControllerMock(t, ctrl, tt.f)

			err := c.Restore(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			s := c.State()
			assert.Equal(t, tt.wantScreen, s.Screen)
			assert.Equal(t, tt.wantFail, s.Failure != nil)
			if tt.wantFail {
				assert.Equal(t, session.FailureAuth, s.Failure.Kind)
				assert.Empty(t, s.Token)
				assert.Nil(t, s.User)
			}
		})
	}
}

func TestController_RegisterWithClassCode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	class := models.ClassInfo{ClassName: "English 9", BlockNumber: "3", School: "Lincoln High", Grade: "9"}

	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
		api.EXPECT().ValidateLoginCode(gomock.Any(), "ENG9-3").Return(class, nil)
		api.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
				assert.Equal(t, "ENG9-3", req.LoginCode)
				assert.Equal(t, "English 9", req.ClassName)
				assert.Equal(t, "Lincoln High", req.School)
				return models.AuthResponse{AccessToken: "tok", User: models.User{ID: "u2"}}, nil
			})
		tokens.EXPECT().SaveToken(gomock.Any(), "42", "tok").Return(nil)
		api.EXPECT().Words(gomock.Any()).Return(testWords(2), nil)
		api.EXPECT().Profile(gomock.Any()).Return(models.User{ID: "u2"}, nil)
	})
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenStudentRegister})

	require.NoError(t, c.ValidateLoginCode(context.Background(), " ENG9-3 "))
	require.NotNil(t, c.State().Class)
	assert.Equal(t, "English 9", c.State().Class.ClassName)

	err := c.Register(context.Background(), models.RegisterRequest{
		Email:     "sam@school.org",
		Password:  "secret1",
		FirstName: "Sam",
		LastName:  "Lee",
		ClassName: "ignored",
	})
	require.NoError(t, err)

	s := c.State()
	assert.Equal(t, session.ScreenDashboard, s.Screen)
	assert.Nil(t, s.Class)
}

func TestController_ValidateLoginCodeRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
		api.EXPECT().ValidateLoginCode(gomock.Any(), "OLD").
			Return(models.ClassInfo{}, &client.APIError{StatusCode: 404, Detail: "Login code not found"})
	})

	require.Error(t, c.ValidateLoginCode(context.Background(), "OLD"))

	s := c.State()
	assert.Nil(t, s.Class)
	require.NotNil(t, s.Failure)
	assert.Equal(t, session.FailureNotFound, s.Failure.Kind)
	assert.Equal(t, "Invalid login code: Login code not found", s.Failure.Message)

	require.Error(t, c.ValidateLoginCode(context.Background(), "  "))
}

func TestController_Logout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(_ *mock_service.MockAPII, tokens *mock_service.MockTokenStore) {
		tokens.EXPECT().DeleteToken(gomock.Any(), "42").Return(errors.New("db closed"))
	})
	withSession(c, false, testWords(3))

	s := c.Logout(context.Background())
	assert.Equal(t, session.New(), s)
}

func TestController_RecordStudyFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
		api.EXPECT().RecordStudySession(gomock.Any(), gomock.Any()).Return(models.PointsResponse{}, errors.New("timeout"))
	})
	withSession(c, false, testWords(3))
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenStudy})

	require.Error(t, c.RecordStudy(context.Background(), true))

	s := c.State()
	assert.Equal(t, 0, s.Deck.Index)
	assert.Equal(t, 100, s.User.TotalPoints)
	require.NotNil(t, s.Failure)
	assert.Equal(t, "Failed to record study session: timeout", s.Failure.Message)

	empty := newControllerMock(t, ctrl, nil)
	withSession(empty, false, nil)
	assert.ErrorIs(t, empty.RecordStudy(context.Background(), true), ErrNoCard)
}

func TestController_Quiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_service.MockAPII, *mock_service.MockTokenStore)
		wantErr    bool
		wantPoints int
		wantNotice string
	}{
		{
			name: "success",
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().RecordQuizResult(gomock.Any(), models.QuizResultRequest{
					UserID:         "u1",
					Score:          6,
					TotalQuestions: 10,
					Timestamp:      testNow,
				}).Return(models.PointsResponse{PointsEarned: 30}, nil)
			},
			wantPoints: 130,
			wantNotice: "Quiz completed! Score: 6/10. Points earned: 30",
		},
		{
			name: "fail: result not recorded",
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().RecordQuizResult(gomock.Any(), gomock.Any()).
					Return(models.PointsResponse{}, &client.APIError{StatusCode: 500, Detail: "db down"})
			},
			wantErr:    true,
			wantPoints: 100,
			wantNotice: "Quiz completed! Score: 6/10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			c := newControllerMock(t, ctrl, tt.f)
			withSession(c, false, testWords(3))
			c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenStudy})

			s := c.StartQuiz()
			require.NotNil(t, s.Quiz)

			var err error
			for i := 0; i < session.QuizLength; i++ {
				require.NotNil(t, c.State().Quiz)
				err = c.AnswerQuiz(context.Background(), i%5 < 3)
			}
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			s = c.State()
			assert.Nil(t, s.Quiz)
			assert.Equal(t, session.ScreenStudy, s.Screen)
			assert.Equal(t, tt.wantPoints, s.User.TotalPoints)
			assert.Equal(t, tt.wantNotice, s.Notice)

			require.NoError(t, c.AnswerQuiz(context.Background(), true))
		})
	}
}

func TestController_QuizPostedOnce(t *testing.T) {
	t.Parallel()

	posting := make(chan struct{})
	release := make(chan struct{})

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
		api.EXPECT().RecordQuizResult(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, models.QuizResultRequest) (models.PointsResponse, error) {
				close(posting)
				<-release
				return models.PointsResponse{PointsEarned: 5}, nil
			}).Times(1)
	})
	withSession(c, false, testWords(3))
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenStudy})
	c.StartQuiz()

	for i := 0; i < session.QuizLength-1; i++ {
		require.NoError(t, c.AnswerQuiz(context.Background(), true))
	}

	done := make(chan error, 1)
	go func() {
		done <- c.AnswerQuiz(context.Background(), true)
	}()
	<-posting

	// A second answer to the last question while the result is in flight.
	require.NoError(t, c.AnswerQuiz(context.Background(), true))
	require.NotNil(t, c.State().Quiz)
	assert.True(t, c.State().Quiz.Finished)

	close(release)
	require.NoError(t, <-done)

	s := c.State()
	assert.Nil(t, s.Quiz)
	assert.Equal(t, 105, s.User.TotalPoints)
}

func TestController_Choice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, nil)
	withSession(c, false, testWords(2))
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenLearning})

	s := c.OfferChoice()
	require.NotNil(t, s.Choice)
	require.Len(t, s.Choice.Options, 3)
	assert.Contains(t, s.Choice.Options, "meaning 0")

	s = c.Choose("meaning 0")
	assert.True(t, s.Choice.Success)
	assert.True(t, s.Deck.Revealed)

	s = c.Next()
	assert.Nil(t, s.Choice)
	assert.Equal(t, 1, s.Deck.Index)
}

func TestController_Navigate(t *testing.T) {
	t.Parallel()

	entries := make([]models.LeaderboardEntry, 15)
	for i := range entries {
		entries[i] = models.LeaderboardEntry{FirstName: fmt.Sprintf("student %d", i), TotalPoints: 1000 - i}
	}

	tests := []struct {
		name       string
		teacher    bool
		to         session.Screen
		f          func(*mock_service.MockAPII, *mock_service.MockTokenStore)
		wantScreen session.Screen
		check      func(*testing.T, session.State)
	}{
		{
			name: "leaderboard keeps top ten",
			to:   session.ScreenLeaderboard,
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().Leaderboard(gomock.Any()).Return(entries, nil)
			},
			wantScreen: session.ScreenLeaderboard,
			check: func(t *testing.T, s session.State) {
				require.Len(t, s.Leaderboard, LeaderboardSize)
				assert.Equal(t, "student 0", s.Leaderboard[0].FirstName)
			},
		},
		{
			name:       "student is kept off admin",
			to:         session.ScreenAdmin,
			wantScreen: session.ScreenDashboard,
		},
		{
			name:    "teacher admin loads users and sets",
			teacher: true,
			to:      session.ScreenAdmin,
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().Users(gomock.Any()).Return([]models.User{{ID: "u1"}, {ID: "u2", TotalPoints: 20}}, nil)
				api.EXPECT().StudySets(gomock.Any()).Return([]models.StudySet{{ID: "s1", Name: "week one", WordIDs: []string{"w1"}}}, nil)
			},
			wantScreen: session.ScreenAdmin,
			check: func(t *testing.T, s session.State) {
				assert.Len(t, s.Users, 2)
				assert.Contains(t, s.SetNames(), "week one")
			},
		},
		{
			name:    "admin load failure is surfaced",
			teacher: true,
			to:      session.ScreenAdmin,
			f: func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
				api.EXPECT().Users(gomock.Any()).Return(nil, &client.APIError{StatusCode: 403, Detail: "Admin access required"})
				api.EXPECT().StudySets(gomock.Any()).Return(nil, nil).AnyTimes()
			},
			wantScreen: session.ScreenAdmin,
			check: func(t *testing.T, s session.State) {
				require.NotNil(t, s.Failure)
				assert.Equal(t, session.FailureAuth, s.Failure.Kind)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			c := newControllerMock(t, ctrl, tt.f)
			withSession(c, tt.teacher, testWords(3))

			_ = c.Navigate(context.Background(), tt.to)

			s := c.State()
			assert.Equal(t, tt.wantScreen, s.Screen)
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}

func TestController_WordWritesResync(t *testing.T) {
	t.Parallel()

	words := testWords(3)
	created := append(append([]models.WordCard(nil), words...), models.WordCard{ID: "w9", Root: "tele-", Type: models.TypePrefix})
	input := models.WordInput{
		Root:       "tele-",
		Type:       models.TypePrefix,
		Origin:     models.OriginGreek,
		Meaning:    "far, distant",
		Difficulty: models.Beginner,
		Points:     10,
	}

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
		gomock.InOrder(
			api.EXPECT().CreateWord(gomock.Any(), input).Return(models.CreatedResponse{Status: "created", ID: "w9"}, nil),
			api.EXPECT().Words(gomock.Any()).Return(created, nil),
			api.EXPECT().DeleteWord(gomock.Any(), "w9").Return(nil),
			api.EXPECT().Words(gomock.Any()).Return(words, nil),
		)
	})
	withSession(c, true, words)
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenAdmin})
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenSlideCreator})

	require.NoError(t, c.CreateWord(context.Background(), input))

	s := c.State()
	assert.Equal(t, session.ScreenAdmin, s.Screen)
	assert.Equal(t, `Word "tele-" created`, s.Notice)
	assert.Equal(t, 1, countID(s.StudySet(session.AllSet), "w9"))
	assert.Equal(t, 1, countID(s.StudySet("prefixes"), "w9"))

	require.NoError(t, c.DeleteWord(context.Background(), "w9"))
	s = c.State()
	for _, name := range s.SetNames() {
		assert.Zero(t, countID(s.StudySet(name), "w9"), name)
	}

	err := c.CreateWord(context.Background(), models.WordInput{Root: "x"})
	require.Error(t, err)
	assert.Equal(t, session.FailureValidation, c.State().Failure.Kind)
}

func TestController_CreateStudySet(t *testing.T) {
	t.Parallel()

	words := testWords(4)
	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
		api.EXPECT().CreateStudySet(gomock.Any(), gomock.Any()).Return(models.CreatedResponse{ID: "s1"}, nil)
		api.EXPECT().StudySets(gomock.Any()).Return([]models.StudySet{{ID: "s1", Name: "odd", WordIDs: []string{"w1", "w3"}}}, nil)
		api.EXPECT().Words(gomock.Any()).Return(words, nil)
	})
	withSession(c, true, words)
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenAdmin})
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenStudySetCreator})

	require.NoError(t, c.CreateStudySet(context.Background(), models.StudySetInput{Name: "odd", WordIDs: []string{"w1", "w3"}}))

	s := c.SelectSet("odd")
	assert.Equal(t, session.ScreenAdmin, s.Screen)
	deck := s.ActiveDeck()
	require.Len(t, deck, 2)
	assert.Equal(t, "w3", deck[1].ID)
}

func TestController_Backups(t *testing.T) {
	t.Parallel()

	backups := []models.Backup{{CollectionName: "words_backup_20240901_120000", WordCount: 31}}

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
		api.EXPECT().Backups(gomock.Any()).Return(backups, nil).Times(3)
		api.EXPECT().CreateBackup(gomock.Any()).Return(models.BackupResult{CollectionName: "words_backup_20240902_080000", WordCount: 3}, nil)
		api.EXPECT().RestoreBackup(gomock.Any(), "words_backup_20240901_120000").Return(models.RestoreResult{
			Status:           "restored",
			RestoredFrom:     "words_backup_20240901_120000",
			WordCount:        31,
			PreRestoreBackup: "words_backup_before_restore_20240902_080000",
		}, nil)
		api.EXPECT().Words(gomock.Any()).Return(testWords(31), nil).Times(2)
	})
	withSession(c, true, testWords(3))
	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenAdmin})

	c.state = session.Reduce(c.state, session.Navigated{To: session.ScreenBackupManager})
	require.NoError(t, c.LoadBackups(context.Background()))
	assert.Len(t, c.State().Backups, 1)

	require.NoError(t, c.CreateBackup(context.Background()))
	assert.Equal(t, "Backup created: words_backup_20240902_080000 (3 words)", c.State().Notice)

	require.NoError(t, c.RestoreBackup(context.Background(), "words_backup_20240901_120000"))
	s := c.State()
	assert.Len(t, s.Words, 31)
	assert.Contains(t, s.Notice, "words_backup_before_restore_20240902_080000")

	require.Error(t, c.RestoreBackup(context.Background(), "prod"))
	assert.Equal(t, session.FailureValidation, c.State().Failure.Kind)
}

func TestController_LoginCodes(t *testing.T) {
	t.Parallel()

	code := models.LoginCode{Code: "ENG9-3", ClassName: "English 9", MaxUses: 30, Active: true}
	input := models.LoginCodeInput{ClassName: "English 9", BlockNumber: "3", School: "Lincoln High", Grade: "9", MaxUses: 30, ExpiresInDays: 30}

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, func(api *mock_service.MockAPII, _ *mock_service.MockTokenStore) {
		api.EXPECT().CreateLoginCode(gomock.Any(), input).Return(code, nil)
		api.EXPECT().ToggleLoginCode(gomock.Any(), "ENG9-3").Return(models.LoginCode{Code: "ENG9-3", Active: false}, nil)
		api.EXPECT().DeleteLoginCode(gomock.Any(), "ENG9-3").Return(&client.APIError{StatusCode: 404, Detail: "Login code not found"})
		api.EXPECT().LoginCodes(gomock.Any()).Return([]models.LoginCode{code}, nil).Times(2)
		api.EXPECT().Words(gomock.Any()).Return(testWords(1), nil).Times(2)
	})
	withSession(c, true, testWords(1))

	require.NoError(t, c.CreateLoginCode(context.Background(), input))
	assert.Equal(t, "Login code ENG9-3 created for English 9", c.State().Notice)

	require.NoError(t, c.ToggleLoginCode(context.Background(), "ENG9-3"))
	assert.Equal(t, "Login code ENG9-3 deactivated", c.State().Notice)

	require.Error(t, c.DeleteLoginCode(context.Background(), "ENG9-3"))
	assert.Equal(t, session.FailureNotFound, c.State().Failure.Kind)

	require.Error(t, c.CreateLoginCode(context.Background(), models.LoginCodeInput{ClassName: "x"}))
}

func TestController_PrintableDeck(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	c := newControllerMock(t, ctrl, nil)
	withSession(c, true, []models.WordCard{
		{ID: "1", Root: "-logy", Type: models.TypeSuffix},
		{ID: "2", Root: "graph", Type: models.TypeRoot},
		{ID: "3", Root: "tele-", Type: models.TypePrefix},
		{ID: "4", Root: "anti-", Type: models.TypePrefix},
	})

	var roots []string
	for _, w := range c.PrintableDeck() {
		roots = append(roots, w.Root)
	}
	assert.Equal(t, []string{"anti-", "tele-", "graph", "-logy"}, roots)
	assert.Equal(t, "1", c.State().Words[0].ID)
}

func TestFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind session.FailureKind
		wantMsg  string
	}{
		{name: "unauthorized", err: &client.APIError{StatusCode: 401, Detail: "Invalid token"}, wantKind: session.FailureAuth, wantMsg: "Oops: Invalid token"},
		{name: "server validation", err: &client.APIError{StatusCode: 422, Detail: "email: bad"}, wantKind: session.FailureValidation, wantMsg: "Oops: email: bad"},
		{name: "not found", err: fmt.Errorf("wrapped: %w", &client.APIError{StatusCode: 404}), wantKind: session.FailureNotFound, wantMsg: "Oops"},
		{name: "transport", err: errors.New("eof"), wantKind: session.FailureGeneric, wantMsg: "Oops: eof"},
		{
			name:     "form validation",
			err:      validator.ValidateStruct(models.LoginRequest{Email: "nope", Password: "pw"}),
			wantKind: session.FailureValidation,
			wantMsg:  "Email must be a valid address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := failure(tt.err, "Oops")
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func countID(words []models.WordCard, id string) int {
	n := 0
	for _, w := range words {
		if w.ID == id {
			n++
		}
	}
	return n
}
