package bot

import (
	"context"
	"time"

	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramAPI serves one Word Weaver session per Telegram user.
type TelegramAPI struct {
	api      *tgbotapi.BotAPI
	bot      BotSender
	sessions *cache.Cache
	timeout  time.Duration
	log      *zap.Logger
}

func NewTelegramAPI(botToken, env string, sessions *cache.Cache, timeout time.Duration, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	t := newTelegram(bot, sessions, timeout, log)
	t.api = bot
	return t, nil
}

func newTelegram(bot BotSender, sessions *cache.Cache, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:      bot,
		sessions: sessions,
		timeout:  timeout,
		log:      log,
	}
}

// Start consumes updates until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	defer t.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// session returns the user's controller. A controller made on first contact first tries to
// restore a stored token.
func (t *TelegramAPI) session(ctx context.Context, userID int64) *service.Controller {
	ctrl, created := t.sessions.Session(userID)
	if created {
		if err := ctrl.Restore(ctx); err != nil {
			t.log.Info("session not restored", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	return ctrl
}

func (t *TelegramAPI) sendMessage(msg tgbotapi.Chattable) {
	sentMsg, err := t.bot.Send(msg)
	if err != nil {
		t.log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		t.log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
