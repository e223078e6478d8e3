package bot

import (
	"context"
	"strconv"
	"strings"

	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonStudentLogin = "👩‍🎓 Student login"
	ButtonTeacherLogin = "👨‍🏫 Teacher login"
	ButtonRegister     = "📝 Register"

	ButtonStudy       = "📚 Study"
	ButtonLearning    = "🎯 Learning"
	ButtonLeaderboard = "🏆 Leaderboard"
	ButtonAdmin       = "🛠 Admin"
	ButtonLogout      = "🚪 Logout"

	ButtonShowAnswer = "👁 Show answer"
	ButtonGotIt      = "✅ Got it"
	ButtonMissed     = "❌ Missed"
	ButtonPrev       = "⬅️ Prev"
	ButtonNext       = "➡️ Next"
	ButtonQuiz       = "🧠 Quiz"
	ButtonSets       = "🗂 Sets"
	ButtonCorrect    = "✅ Correct"
	ButtonWrong      = "❌ Wrong"
	ButtonExitQuiz   = "⏹ Exit quiz"

	ButtonAddWord    = "➕ Add word"
	ButtonNewSet     = "🗂 New study set"
	ButtonBackups    = "💾 Backups"
	ButtonLoginCodes = "🔑 Login codes"
	ButtonPrintable  = "🖨 Printable"
	ButtonNewBackup  = "💾 Create backup"
	ButtonRefresh    = "🔄 Refresh"

	ButtonBack = "⏪ Back"
)

const (
	callbackSet      = "set:"
	callbackChoice   = "choice:"
	callbackProgress = "progress:"
	callbackRestore  = "restore:"
	callbackToggle   = "toggle:"
	callbackDelCode  = "delcode:"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("command without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	ctrl := t.session(ctx, message.From.ID)

	switch message.Command() {
	case "start":
		t.reply(message.Chat.ID, ctrl)
	case "help":
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, helpText))
	case "logout":
		ctrl.Logout(ctx)
		t.sessions.DeleteSession(message.From.ID)
		t.reply(message.Chat.ID, ctrl)
	default:
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start"))
	}
}

const helpText = `📚 Word Weaver
/start: show the current screen
/logout: sign out
/help: this message

Use the buttons below. Forms are answered with one message:
• login: email password
• register: first last email password [code]
• class code: code ENG9-3`

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	ctrl := t.session(ctx, message.From.ID)
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	if text == ButtonSets {
		t.sendSets(chatID, ctrl.State())
		return
	}
	if text == ButtonLogout {
		defer t.sessions.DeleteSession(message.From.ID)
	}

	if !t.handleButton(ctx, ctrl, text) {
		if usage, ok := t.handleForm(ctx, ctrl, text); !ok {
			t.sendMessage(tgbotapi.NewMessage(chatID, usage))
			return
		}
	}

	t.reply(chatID, ctrl)
}

// handleButton runs the action of a keyboard button. It reports false for any other text.
func (t *TelegramAPI) handleButton(ctx context.Context, ctrl *service.Controller, text string) bool {
	s := ctrl.State()

	var err error
	switch text {
	case ButtonStudentLogin:
		err = ctrl.Navigate(ctx, session.ScreenStudentLogin)
	case ButtonTeacherLogin:
		err = ctrl.Navigate(ctx, session.ScreenTeacherLogin)
	case ButtonRegister:
		err = ctrl.Navigate(ctx, session.ScreenStudentRegister)
	case ButtonStudy:
		err = ctrl.Navigate(ctx, session.ScreenStudy)
	case ButtonLearning:
		err = ctrl.Navigate(ctx, session.ScreenLearning)
		ctrl.OfferChoice()
	case ButtonLeaderboard:
		err = ctrl.OpenLeaderboard(ctx)
	case ButtonAdmin:
		err = ctrl.OpenAdmin(ctx)
	case ButtonLogout:
		ctrl.Logout(ctx)
	case ButtonBack:
		err = ctrl.Navigate(ctx, backTarget(s.Screen))

	case ButtonShowAnswer:
		ctrl.Reveal()
	case ButtonGotIt, ButtonMissed:
		err = ctrl.RecordStudy(ctx, text == ButtonGotIt)
	case ButtonPrev, ButtonNext:
		if text == ButtonPrev {
			ctrl.Prev()
		} else {
			ctrl.Next()
		}
		if s.Screen == session.ScreenLearning {
			ctrl.OfferChoice()
		}
	case ButtonQuiz:
		ctrl.StartQuiz()
	case ButtonCorrect, ButtonWrong:
		err = ctrl.AnswerQuiz(ctx, text == ButtonCorrect)
	case ButtonExitQuiz:
		ctrl.ExitQuiz()

	case ButtonAddWord:
		err = ctrl.Navigate(ctx, session.ScreenSlideCreator)
	case ButtonNewSet:
		err = ctrl.Navigate(ctx, session.ScreenStudySetCreator)
	case ButtonBackups:
		err = ctrl.Navigate(ctx, session.ScreenBackupManager)
	case ButtonLoginCodes:
		err = ctrl.Navigate(ctx, session.ScreenLoginCodeManager)
	case ButtonPrintable:
		err = ctrl.Navigate(ctx, session.ScreenPrintableView)
	case ButtonNewBackup:
		err = ctrl.CreateBackup(ctx)
	case ButtonRefresh:
		err = t.refresh(ctx, ctrl, s.Screen)

	default:
		return false
	}

	if err != nil {
		t.log.Info("action failed", zap.String("owner", ctrl.Owner()), zap.String("button", text), zap.Error(err))
	}
	return true
}

func (t *TelegramAPI) refresh(ctx context.Context, ctrl *service.Controller, screen session.Screen) error {
	switch screen {
	case session.ScreenLeaderboard:
		return ctrl.LoadLeaderboard(ctx)
	case session.ScreenBackupManager:
		return ctrl.LoadBackups(ctx)
	case session.ScreenLoginCodeManager:
		return ctrl.LoadLoginCodes(ctx)
	case session.ScreenDashboard:
		ctrl.RefreshProfile(ctx)
	}
	return nil
}

// backTarget is where the back button leads from screen.
func backTarget(screen session.Screen) session.Screen {
	switch {
	case screen.Public():
		return session.ScreenWelcome
	case screen.Overlay():
		return session.ScreenAdmin
	}
	return session.ScreenDashboard
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if t.api != nil {
		callback := tgbotapi.NewCallback(query.ID, "")
		if _, err := t.api.Request(callback); err != nil {
			t.log.Warn("failed to answer callback", zap.Error(err))
		}
	}

	if query.Message == nil || query.From == nil {
		t.log.Warn("callback without message", zap.String("id", query.ID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	ctrl := t.session(ctx, query.From.ID)
	data := query.Data

	var err error
	switch {
	case strings.HasPrefix(data, callbackSet):
		ctrl.SelectSet(strings.TrimPrefix(data, callbackSet))
		if ctrl.State().Screen == session.ScreenLearning {
			ctrl.OfferChoice()
		}
	case strings.HasPrefix(data, callbackChoice):
		i, convErr := strconv.Atoi(strings.TrimPrefix(data, callbackChoice))
		if c := ctrl.State().Choice; convErr == nil && c != nil && i >= 0 && i < len(c.Options) {
			ctrl.Choose(c.Options[i])
		}
	case strings.HasPrefix(data, callbackProgress):
		err = ctrl.UserProgress(ctx, strings.TrimPrefix(data, callbackProgress))
	case strings.HasPrefix(data, callbackRestore):
		err = ctrl.RestoreBackup(ctx, strings.TrimPrefix(data, callbackRestore))
	case strings.HasPrefix(data, callbackToggle):
		err = ctrl.ToggleLoginCode(ctx, strings.TrimPrefix(data, callbackToggle))
	case strings.HasPrefix(data, callbackDelCode):
		err = ctrl.DeleteLoginCode(ctx, strings.TrimPrefix(data, callbackDelCode))
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
		return
	}

	if err != nil {
		t.log.Info("action failed", zap.String("owner", ctrl.Owner()), zap.String("callback", data), zap.Error(err))
	}

	t.reply(query.Message.Chat.ID, ctrl)
}
