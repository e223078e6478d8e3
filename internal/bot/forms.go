package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/session"
	"go.uber.org/zap"
)

var errFormat = errors.New("unexpected format")

const (
	usageLogin     = "Send: email password"
	usageRegister  = "Send: first last email password [code]\nOr check a class code first: code ENG9-3"
	usageWord      = "Send: root | type | origin | meaning | definition | example; example | difficulty | points\nTo edit: edit <id> | root | ..."
	usageSet       = "Send: name | description | id1, id2, id3"
	usageLoginCode = "Send: class | block | school | grade | max uses | days valid"
	usageBackup    = "Send: restore <collection>"
	usageAdmin     = "Send: delete <word id> or progress <user id>"
	usageDefault   = "I didn't get that. Use the buttons below."
)

// handleForm reads free text as the form of the current screen. It reports false with a usage
// hint when the text does not fit.
func (t *TelegramAPI) handleForm(ctx context.Context, ctrl *service.Controller, text string) (string, bool) {
	s := ctrl.State()

	var err error
	switch s.Screen {
	case session.ScreenStudentLogin, session.ScreenTeacherLogin:
		req, perr := parseLogin(text)
		if perr != nil {
			return usageLogin, false
		}
		err = ctrl.Login(ctx, req, s.Screen == session.ScreenTeacherLogin)

	case session.ScreenStudentRegister:
		if code, ok := cutCommand(text, "code"); ok {
			err = ctrl.ValidateLoginCode(ctx, code)
			break
		}
		req, perr := parseRegister(text)
		if perr != nil {
			return usageRegister, false
		}
		err = ctrl.Register(ctx, req)

	case session.ScreenSlideCreator:
		id, in, perr := parseWord(text)
		if perr != nil {
			return usageWord, false
		}
		if id == "" {
			err = ctrl.CreateWord(ctx, in)
		} else {
			err = ctrl.UpdateWord(ctx, id, in)
		}

	case session.ScreenStudySetCreator:
		in, perr := parseStudySet(text)
		if perr != nil {
			return usageSet, false
		}
		err = ctrl.CreateStudySet(ctx, in)

	case session.ScreenLoginCodeManager:
		in, perr := parseLoginCode(text)
		if perr != nil {
			return usageLoginCode, false
		}
		err = ctrl.CreateLoginCode(ctx, in)

	case session.ScreenBackupManager:
		name, ok := cutCommand(text, "restore")
		if !ok {
			return usageBackup, false
		}
		err = ctrl.RestoreBackup(ctx, name)

	case session.ScreenAdmin:
		if id, ok := cutCommand(text, "delete"); ok {
			err = ctrl.DeleteWord(ctx, id)
			break
		}
		if id, ok := cutCommand(text, "progress"); ok {
			err = ctrl.UserProgress(ctx, id)
			break
		}
		return usageAdmin, false

	default:
		return usageDefault, false
	}

	if err != nil {
		t.log.Info("form rejected", zap.String("owner", ctrl.Owner()), zap.Stringer("screen", s.Screen), zap.Error(err))
	}
	return "", true
}

// cutCommand splits "cmd arg" and returns the trimmed arg.
func cutCommand(text, cmd string) (string, bool) {
	head, rest, ok := strings.Cut(strings.TrimSpace(text), " ")
	if !ok || !strings.EqualFold(head, cmd) {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	return rest, rest != ""
}

func parseLogin(text string) (models.LoginRequest, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return models.LoginRequest{}, errFormat
	}
	return models.LoginRequest{Email: fields[0], Password: fields[1]}, nil
}

func parseRegister(text string) (models.RegisterRequest, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 && len(fields) != 5 {
		return models.RegisterRequest{}, errFormat
	}

	req := models.RegisterRequest{
		FirstName: fields[0],
		LastName:  fields[1],
		Email:     fields[2],
		Password:  fields[3],
	}
	if len(fields) == 5 {
		req.LoginCode = fields[4]
	}
	return req, nil
}

func splitForm(text string) []string {
	parts := strings.Split(text, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseWord reads a slide-creator form. A leading "edit <id>" part turns it into an update.
func parseWord(text string) (string, models.WordInput, error) {
	parts := splitForm(text)

	var id string
	if len(parts) > 0 {
		if edit, ok := cutCommand(parts[0], "edit"); ok {
			id = edit
			parts = parts[1:]
		}
	}
	if len(parts) != 8 {
		return "", models.WordInput{}, errFormat
	}

	points, err := strconv.Atoi(parts[7])
	if err != nil {
		return "", models.WordInput{}, errFormat
	}

	var examples []string
	for _, ex := range strings.Split(parts[5], ";") {
		if ex = strings.TrimSpace(ex); ex != "" {
			examples = append(examples, ex)
		}
	}

	return id, models.WordInput{
		Root:       parts[0],
		Type:       models.WordType(strings.ToLower(parts[1])),
		Origin:     models.ParseOrigin(parts[2]),
		Meaning:    parts[3],
		Definition: parts[4],
		Examples:   examples,
		Difficulty: models.Difficulty(strings.ToLower(parts[6])),
		Points:     points,
	}, nil
}

func parseStudySet(text string) (models.StudySetInput, error) {
	parts := splitForm(text)
	if len(parts) != 3 {
		return models.StudySetInput{}, errFormat
	}

	var ids []string
	for _, id := range strings.Split(parts[2], ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	return models.StudySetInput{Name: parts[0], Description: parts[1], WordIDs: ids}, nil
}

func parseLoginCode(text string) (models.LoginCodeInput, error) {
	parts := splitForm(text)
	if len(parts) != 6 {
		return models.LoginCodeInput{}, errFormat
	}

	maxUses, err := strconv.Atoi(parts[4])
	if err != nil {
		return models.LoginCodeInput{}, errFormat
	}
	days, err := strconv.Atoi(parts[5])
	if err != nil {
		return models.LoginCodeInput{}, errFormat
	}

	return models.LoginCodeInput{
		ClassName:     parts[0],
		BlockNumber:   parts[1],
		School:        parts[2],
		Grade:         parts[3],
		MaxUses:       maxUses,
		ExpiresInDays: days,
	}, nil
}
