package tui

import (
	"fmt"
	"strings"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/session"
)

func (m Model) View() string {
	s := m.state
	var sb strings.Builder

	if s.Failure != nil {
		sb.WriteString(failureStyle.Render("✗ "+s.Failure.Message) + "\n")
	}
	if m.hint != "" {
		sb.WriteString(failureStyle.Render("✗ "+m.hint) + "\n")
	}
	if s.Notice != "" {
		sb.WriteString(noticeStyle.Render("✓ "+s.Notice) + "\n")
	}

	var body, help string
	switch s.Screen {
	case session.ScreenWelcome:
		body = titleStyle.Render("Word Weaver") + "\nLearn Greek and Latin prefixes, roots and suffixes.\n"
		help = "s student login · t teacher login · r register · q quit"
	case session.ScreenStudentLogin, session.ScreenTeacherLogin:
		help = "tab next field · enter log in · esc back"
	case session.ScreenStudentRegister:
		if s.Class != nil {
			body = noticeStyle.Render(fmt.Sprintf("Class %s, block %s, %s, grade %s",
				s.Class.ClassName, s.Class.BlockNumber, s.Class.School, s.Class.Grade)) + "\n"
		}
		help = "tab next field · ctrl+k check class code · enter register · esc back"
	case session.ScreenDashboard:
		body = m.viewDashboard()
		help = "s study · l learning · b leaderboard · r refresh · o logout · q quit"
		if s.IsTeacher() {
			help = "s study · l learning · b leaderboard · a admin · r refresh · o logout · q quit"
		}
	case session.ScreenStudy:
		body = viewCard(s)
		help = "space reveal · y got it · n missed · ←/→ move · [ ] set · z quiz · esc back"
		if s.Quiz != nil {
			help = "space reveal · y correct · n wrong · x exit quiz"
		}
	case session.ScreenLearning:
		body = viewCard(s) + m.viewChoice()
		help = "↑/↓ pick · enter answer · ←/→ move · [ ] set · esc back"
	case session.ScreenLeaderboard:
		body = viewLeaderboard(s.Leaderboard)
		help = "r refresh · esc back"
	case session.ScreenAdmin:
		body = m.viewAdmin()
		help = "↑/↓ student · enter progress · w word · n study set · b backups · c login codes · p printable · d delete word · esc back"
	case session.ScreenSlideCreator:
		help = "tab next field · ctrl+k load word · enter save · esc back"
	case session.ScreenStudySetCreator:
		body = viewWordIDs(s.Words)
		help = "tab next field · enter create · esc back"
	case session.ScreenBackupManager:
		body = m.viewBackups()
		help = "↑/↓ select · enter restore · c create · r refresh · esc back"
	case session.ScreenLoginCodeManager:
		body = m.viewLoginCodes()
		help = "↑/↓ select · t toggle · x delete · n new · r refresh · esc back"
	case session.ScreenPrintableView:
		body = viewPrintable(m.ctrl.PrintableDeck())
		help = "esc back"
	}

	if m.form != nil {
		sb.WriteString(m.form.view())
		if m.overlay {
			help = "tab next field · enter submit · esc cancel"
		}
	}
	sb.WriteString(body)
	sb.WriteString(helpStyle.Render(help) + "\n")

	return sb.String()
}

func (m Model) viewDashboard() string {
	s := m.state
	if s.User == nil {
		return ""
	}
	u := *s.User

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Welcome, "+u.FullName()+"!") + "\n")
	if u.ClassName != "" {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%s, block %s", u.ClassName, u.BlockNumber)) + "\n")
	}

	target := u.LevelTarget()
	fmt.Fprintf(&sb, "Level %d · %d points · %d day streak\n", max(u.Level, 1), u.TotalPoints, u.StreakDays)
	sb.WriteString(m.level.ViewAs(min(float64(u.TotalPoints)/float64(target), 1)))
	fmt.Fprintf(&sb, " %d/%d\n", u.TotalPoints, target)

	var badges []string
	for _, b := range models.KnownBadges {
		if u.HasBadge(b) {
			badges = append(badges, selectedRow.Render(b))
		} else {
			badges = append(badges, mutedStyle.Render(b))
		}
	}
	sb.WriteString("Badges: " + strings.Join(badges, " · ") + "\n")

	if s.Loading() {
		sb.WriteString(mutedStyle.Render("Loading words...") + "\n")
		return sb.String()
	}
	stats := models.CountWords(s.Words)
	fmt.Fprintf(&sb, "%d words: %d prefixes, %d roots, %d suffixes\n",
		stats.TotalCount, stats.PrefixCount, stats.RootCount, stats.SuffixCount)
	return sb.String()
}

func viewCard(s session.State) string {
	card, ok := s.CurrentCard()
	if !ok {
		return "No words to study yet.\n"
	}

	set := s.ActiveSet
	if set == "" {
		set = session.AllSet
	}

	var head string
	if s.Quiz != nil {
		head = fmt.Sprintf("Quiz · question %d/%d · score %d", s.Quiz.Question+1, session.QuizLength, s.Quiz.Score)
	} else {
		head = fmt.Sprintf("%s · card %d/%d", set, s.Deck.Index+1, len(s.ActiveDeck()))
	}

	var sb strings.Builder
	sb.WriteString(rootStyle.Render(card.Root) + "\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%s · %s · %s", card.Type, card.Origin, card.Difficulty)) + "\n")
	if s.Deck.Revealed {
		sb.WriteString("\n" + card.Meaning + "\n")
		if card.Definition != "" {
			sb.WriteString(mutedStyle.Render(card.Definition) + "\n")
		}
		if len(card.Examples) > 0 {
			sb.WriteString("Examples: " + strings.Join(card.Examples, ", ") + "\n")
		}
		sb.WriteString(labelStyle.Render(fmt.Sprintf("+%d points", card.Points)))
	}

	return titleStyle.Render(head) + "\n" + cardStyle.Render(strings.TrimRight(sb.String(), "\n")) + "\n"
}

func (m Model) viewChoice() string {
	c := m.state.Choice
	if c == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("What does it mean?\n")
	for i, opt := range c.Options {
		line := "  " + opt
		if i == m.cursor && !c.Answered {
			line = selectedRow.Render("> " + opt)
		}
		sb.WriteString(line + "\n")
	}

	if c.Answered {
		if c.Success {
			sb.WriteString(noticeStyle.Render("Correct!") + "\n")
		} else {
			sb.WriteString(failureStyle.Render("Not quite. It means: "+c.Correct) + "\n")
		}
	}
	return sb.String()
}

func viewLeaderboard(entries []models.LeaderboardEntry) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Leaderboard") + "\n")
	if len(entries) == 0 {
		return sb.String() + "No scores yet.\n"
	}
	for i, e := range entries {
		fmt.Fprintf(&sb, "%2d. %-24s %6d pts  level %d\n", i+1, e.FirstName+" "+e.LastName, e.TotalPoints, e.Level)
	}
	return sb.String()
}

func (m Model) viewAdmin() string {
	s := m.state
	students := adminStudents(s)
	stats := models.CountWords(s.Words)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Admin") + "\n")
	fmt.Fprintf(&sb, "%d students, %d active · %d words · %d study sets\n\n",
		len(students), len(models.ActiveStudents(s.Users)), stats.TotalCount, len(s.Sets))

	for i, u := range students {
		line := fmt.Sprintf("%s · %d pts · level %d", u.FullName(), u.TotalPoints, u.Level)
		if i == m.cursor {
			sb.WriteString(selectedRow.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}

	if p := s.Progress; p != nil {
		fmt.Fprintf(&sb, "\nProgress of %s: %d study sessions (%d correct), %d quizzes, %d points\n",
			p.UserID, len(p.StudySessions), p.CorrectSessions(), len(p.QuizResults), p.PointsEarned())
	}
	return sb.String()
}

func viewWordIDs(words []models.WordCard) string {
	var sb strings.Builder
	sb.WriteString("\n" + labelStyle.Render("Word ids") + "\n")
	for _, w := range words {
		fmt.Fprintf(&sb, "%-12s %s\n", w.ID, w.Root)
	}
	return sb.String()
}

func (m Model) viewBackups() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Backups") + "\n")
	if len(m.state.Backups) == 0 {
		sb.WriteString("No backups yet.\n")
	}
	for i, b := range m.state.Backups {
		line := fmt.Sprintf("%s · %s · %d words", b.CollectionName, b.ReadableTime, b.WordCount)
		if i == m.cursor {
			sb.WriteString(selectedRow.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}

func (m Model) viewLoginCodes() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Login codes") + "\n")
	for i, c := range m.state.LoginCodes {
		status := "active"
		if !c.Active {
			status = "inactive"
		}
		line := fmt.Sprintf("%s · %s block %s · %d/%d uses · expires %s · %s",
			c.Code, c.ClassName, c.BlockNumber, c.CurrentUses, c.MaxUses, c.ExpiresAt.Format("2006-01-02"), status)
		if i == m.cursor {
			sb.WriteString(selectedRow.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}

func viewPrintable(words []models.WordCard) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Printable flashcards") + "\n")

	var current models.WordType
	for _, w := range words {
		if w.Type != current {
			current = w.Type
			sb.WriteString("\n" + rootStyle.Render(strings.ToUpper(string(current))) + "\n")
		}
		fmt.Fprintf(&sb, "%-14s %-6s %s\n", w.Root, w.Origin, w.Meaning)
	}
	return sb.String()
}
