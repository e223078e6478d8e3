package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// reply sends the current screen of ctrl with its keyboard.
func (t *TelegramAPI) reply(chatID int64, ctrl *service.Controller) {
	s := ctrl.State()

	var printable []models.WordCard
	if s.Screen == session.ScreenPrintableView {
		printable = ctrl.PrintableDeck()
	}

	// Long screens go out in pieces; the keyboard rides on the last one.
	parts := splitMessage(renderScreen(s, printable), maxMessageLen)
	for _, part := range parts[:len(parts)-1] {
		t.sendMessage(tgbotapi.NewMessage(chatID, part))
	}

	msg := tgbotapi.NewMessage(chatID, parts[len(parts)-1])
	msg.ReplyMarkup = screenKeyboard(s)
	t.sendMessage(msg)

	if inline := inlineKeyboard(s); inline != nil {
		extra := tgbotapi.NewMessage(chatID, inlineCaption(s))
		extra.ReplyMarkup = inline
		t.sendMessage(extra)
	}
}

// maxMessageLen is Telegram's limit on message text. Counting bytes never undercounts it.
const maxMessageLen = 4096

// splitMessage cuts text into pieces of at most limit bytes, breaking between lines where it can.
func splitMessage(text string, limit int) []string {
	var parts []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, strings.TrimRight(cur.String(), "\n"))
			cur.Reset()
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			flush()
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			parts = append(parts, line[:cut])
			line = line[cut:]
		}
		if cur.Len()+len(line) > limit {
			flush()
		}
		cur.WriteString(line)
	}
	flush()

	if len(parts) == 0 {
		return []string{""}
	}
	return parts
}

func (t *TelegramAPI) sendSets(chatID int64, s session.State) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range s.SetNames() {
		label := name
		if name == s.ActiveSet || (s.ActiveSet == "" && name == session.AllSet) {
			label = "• " + name
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, callbackSet+name)))
	}

	msg := tgbotapi.NewMessage(chatID, "🗂 Choose a study set:")
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	msg.ReplyMarkup = &keyboard
	t.sendMessage(msg)
}

func renderScreen(s session.State, printable []models.WordCard) string {
	var sb strings.Builder

	if s.Failure != nil {
		sb.WriteString("❌ " + s.Failure.Message + "\n\n")
	}
	if s.Notice != "" {
		sb.WriteString("✅ " + s.Notice + "\n\n")
	}

	switch s.Screen {
	case session.ScreenWelcome:
		sb.WriteString("🏛 Word Weaver\nLearn Greek and Latin prefixes, roots and suffixes.")
	case session.ScreenStudentLogin:
		sb.WriteString("👩‍🎓 Student login\n" + usageLogin)
	case session.ScreenTeacherLogin:
		sb.WriteString("👨‍🏫 Teacher login\n" + usageLogin)
	case session.ScreenStudentRegister:
		sb.WriteString("📝 Register\n")
		if s.Class != nil {
			fmt.Fprintf(&sb, "Class: %s, block %s, %s, grade %s (code %s)\n",
				s.Class.ClassName, s.Class.BlockNumber, s.Class.School, s.Class.Grade, s.ClassCode)
		}
		sb.WriteString(usageRegister)
	case session.ScreenDashboard:
		renderDashboard(&sb, s)
	case session.ScreenStudy, session.ScreenLearning:
		renderCard(&sb, s)
	case session.ScreenLeaderboard:
		renderLeaderboard(&sb, s.Leaderboard)
	case session.ScreenAdmin:
		renderAdmin(&sb, s)
	case session.ScreenSlideCreator:
		sb.WriteString("➕ Slide creator\n" + usageWord)
	case session.ScreenStudySetCreator:
		sb.WriteString("🗂 Study set creator\n" + usageSet + "\n\nWord ids:\n")
		for _, w := range s.Words {
			fmt.Fprintf(&sb, "%s  %s\n", w.ID, w.Root)
		}
	case session.ScreenBackupManager:
		renderBackups(&sb, s.Backups)
	case session.ScreenLoginCodeManager:
		renderLoginCodes(&sb, s.LoginCodes)
	case session.ScreenPrintableView:
		renderPrintable(&sb, printable)
	}

	return strings.TrimSpace(sb.String())
}

func renderDashboard(sb *strings.Builder, s session.State) {
	if s.User == nil {
		return
	}
	u := *s.User

	fmt.Fprintf(sb, "👋 Welcome, %s!\n", u.FullName())
	if u.ClassName != "" {
		fmt.Fprintf(sb, "🏫 %s, block %s\n", u.ClassName, u.BlockNumber)
	}
	fmt.Fprintf(sb, "⭐ Level %d · %d points\n", max(u.Level, 1), u.TotalPoints)
	fmt.Fprintf(sb, "%s %d/%d\n", progressBar(u.TotalPoints, u.LevelTarget(), 10), u.TotalPoints, u.LevelTarget())
	fmt.Fprintf(sb, "🔥 Streak: %d days\n", u.StreakDays)

	sb.WriteString("🏅 Badges:")
	for _, b := range models.KnownBadges {
		mark := "▫️"
		if u.HasBadge(b) {
			mark = "🏅"
		}
		fmt.Fprintf(sb, " %s %s", mark, b)
	}
	sb.WriteString("\n")

	if s.Loading() {
		sb.WriteString("\nLoading words...")
		return
	}
	stats := models.CountWords(s.Words)
	fmt.Fprintf(sb, "\n📚 %d words: %d prefixes, %d roots, %d suffixes",
		stats.TotalCount, stats.PrefixCount, stats.RootCount, stats.SuffixCount)
}

func progressBar(value, target, width int) string {
	if target <= 0 {
		target = 1
	}
	filled := value * width / target
	filled = min(max(filled, 0), width)
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}

func renderCard(sb *strings.Builder, s session.State) {
	deck := s.ActiveDeck()
	card, ok := s.CurrentCard()
	if !ok {
		sb.WriteString("No words to study yet.")
		return
	}

	set := s.ActiveSet
	if set == "" {
		set = session.AllSet
	}

	if s.Quiz != nil {
		fmt.Fprintf(sb, "🧠 Quiz: question %d/%d · score %d\n\n", s.Quiz.Question+1, session.QuizLength, s.Quiz.Score)
	} else {
		fmt.Fprintf(sb, "🗂 %s · card %d/%d\n\n", set, s.Deck.Index+1, len(deck))
	}

	fmt.Fprintf(sb, "%s\n%s · %s · %s\n", card.Root, card.Type, card.Origin, card.Difficulty)

	if s.Deck.Revealed {
		fmt.Fprintf(sb, "\n💡 %s\n", card.Meaning)
		if card.Definition != "" {
			sb.WriteString(card.Definition + "\n")
		}
		if len(card.Examples) > 0 {
			sb.WriteString("Examples: " + strings.Join(card.Examples, ", ") + "\n")
		}
		fmt.Fprintf(sb, "+%d points when correct\n", card.Points)
	}

	if c := s.Choice; c != nil && c.Answered {
		if c.Success {
			sb.WriteString("\n✅ Correct!")
		} else {
			fmt.Fprintf(sb, "\n❌ Not quite. It means: %s", c.Correct)
		}
	}
}

func renderLeaderboard(sb *strings.Builder, entries []models.LeaderboardEntry) {
	sb.WriteString("🏆 Leaderboard\n")
	if len(entries) == 0 {
		sb.WriteString("No scores yet.")
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}
	for i, e := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(sb, "%s %s %s · %d pts · level %d\n", rank, e.FirstName, e.LastName, e.TotalPoints, e.Level)
	}
}

func renderAdmin(sb *strings.Builder, s session.State) {
	students := models.Students(s.Users)
	active := models.ActiveStudents(s.Users)
	stats := models.CountWords(s.Words)

	sb.WriteString("🛠 Admin\n")
	fmt.Fprintf(sb, "👥 %d students, %d active\n", len(students), len(active))
	fmt.Fprintf(sb, "📚 %d words: %d prefixes, %d roots, %d suffixes\n",
		stats.TotalCount, stats.PrefixCount, stats.RootCount, stats.SuffixCount)
	fmt.Fprintf(sb, "🗂 %d study sets\n", len(s.Sets))

	if len(active) > 0 {
		sb.WriteString("\nActive students:\n")
		for _, u := range active {
			fmt.Fprintf(sb, "%s · %d pts · level %d\n", u.FullName(), u.TotalPoints, u.Level)
		}
	}

	if p := s.Progress; p != nil {
		fmt.Fprintf(sb, "\n📈 Progress of %s: %d study sessions (%d correct), %d quizzes, %d points\n",
			p.UserID, len(p.StudySessions), p.CorrectSessions(), len(p.QuizResults), p.PointsEarned())
	}

	sb.WriteString("\n" + usageAdmin)
}

func renderBackups(sb *strings.Builder, backups []models.Backup) {
	sb.WriteString("💾 Backups\n")
	if len(backups) == 0 {
		sb.WriteString("No backups yet.\n")
	}
	for _, b := range backups {
		fmt.Fprintf(sb, "%s · %s · %d words\n", b.CollectionName, b.ReadableTime, b.WordCount)
	}
	sb.WriteString(usageBackup)
}

func renderLoginCodes(sb *strings.Builder, codes []models.LoginCode) {
	sb.WriteString("🔑 Login codes\n")
	for _, c := range codes {
		status := "active"
		if !c.Active {
			status = "inactive"
		}
		fmt.Fprintf(sb, "%s · %s block %s · %d/%d uses · expires %s · %s\n",
			c.Code, c.ClassName, c.BlockNumber, c.CurrentUses, c.MaxUses, c.ExpiresAt.Format("2006-01-02"), status)
	}
	sb.WriteString(usageLoginCode)
}

func renderPrintable(sb *strings.Builder, words []models.WordCard) {
	sb.WriteString("🖨 Printable flashcards\n")
	var current models.WordType
	for _, w := range words {
		if w.Type != current {
			current = w.Type
			fmt.Fprintf(sb, "\n%s\n", strings.ToUpper(string(current)))
		}
		fmt.Fprintf(sb, "%s (%s): %s\n", w.Root, w.Origin, w.Meaning)
	}
}

func buttonRow(labels ...string) []tgbotapi.KeyboardButton {
	row := make([]tgbotapi.KeyboardButton, 0, len(labels))
	for _, l := range labels {
		row = append(row, tgbotapi.NewKeyboardButton(l))
	}
	return row
}

func screenKeyboard(s session.State) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	switch s.Screen {
	case session.ScreenWelcome:
		rows = append(rows, buttonRow(ButtonStudentLogin, ButtonTeacherLogin), buttonRow(ButtonRegister))
	case session.ScreenDashboard:
		rows = append(rows, buttonRow(ButtonStudy, ButtonLearning), buttonRow(ButtonLeaderboard, ButtonRefresh))
		if s.IsTeacher() {
			rows = append(rows, buttonRow(ButtonAdmin))
		}
		rows = append(rows, buttonRow(ButtonLogout))
	case session.ScreenStudy:
		if s.Quiz != nil {
			rows = append(rows, buttonRow(ButtonShowAnswer), buttonRow(ButtonCorrect, ButtonWrong), buttonRow(ButtonExitQuiz))
			break
		}
		rows = append(rows,
			buttonRow(ButtonShowAnswer),
			buttonRow(ButtonGotIt, ButtonMissed),
			buttonRow(ButtonPrev, ButtonNext),
			buttonRow(ButtonQuiz, ButtonSets),
			buttonRow(ButtonBack))
	case session.ScreenLearning:
		rows = append(rows, buttonRow(ButtonPrev, ButtonNext), buttonRow(ButtonSets), buttonRow(ButtonBack))
	case session.ScreenLeaderboard, session.ScreenLoginCodeManager:
		rows = append(rows, buttonRow(ButtonRefresh), buttonRow(ButtonBack))
	case session.ScreenAdmin:
		rows = append(rows,
			buttonRow(ButtonAddWord, ButtonNewSet),
			buttonRow(ButtonBackups, ButtonLoginCodes),
			buttonRow(ButtonPrintable),
			buttonRow(ButtonBack))
	case session.ScreenBackupManager:
		rows = append(rows, buttonRow(ButtonNewBackup, ButtonRefresh), buttonRow(ButtonBack))
	default:
		rows = append(rows, buttonRow(ButtonBack))
	}

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

// inlineKeyboard holds per-item actions of the screen, if it has any.
func inlineKeyboard(s session.State) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch s.Screen {
	case session.ScreenLearning:
		if s.Choice == nil || s.Choice.Answered {
			return nil
		}
		for i, opt := range s.Choice.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(opt, fmt.Sprintf("%s%d", callbackChoice, i))))
		}
	case session.ScreenAdmin:
		for _, u := range models.Students(s.Users) {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📈 "+u.FullName(), callbackProgress+u.ID)))
		}
	case session.ScreenBackupManager:
		for _, b := range s.Backups {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("♻️ "+b.CollectionName, callbackRestore+b.CollectionName)))
		}
	case session.ScreenLoginCodeManager:
		for _, c := range s.LoginCodes {
			toggle := "⏸ " + c.Code
			if !c.Active {
				toggle = "▶️ " + c.Code
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(toggle, callbackToggle+c.Code),
				tgbotapi.NewInlineKeyboardButtonData("🗑 "+c.Code, callbackDelCode+c.Code)))
		}
	}

	if len(rows) == 0 {
		return nil
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}

func inlineCaption(s session.State) string {
	switch s.Screen {
	case session.ScreenLearning:
		return "❓ What does it mean?"
	case session.ScreenAdmin:
		return "📈 Student progress:"
	case session.ScreenBackupManager:
		return "♻️ Restore a backup:"
	}
	return "🔑 Manage codes:"
}
