package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/DanRulev/wordweaver/internal/models"
	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/DanRulev/wordweaver/internal/session"
)

const registerCodeField = 4

// screenForm returns the form a screen is made of, or nil for screens driven by keys.
func screenForm(screen session.Screen) *form {
	switch screen {
	case session.ScreenStudentLogin, session.ScreenTeacherLogin:
		teacher := screen == session.ScreenTeacherLogin
		title := "Student login"
		if teacher {
			title = "Teacher login"
		}
		return newForm(title, func(ctx context.Context, ctrl *service.Controller, v []string) error {
			return ctrl.Login(ctx, models.LoginRequest{Email: v[0], Password: v[1]}, teacher)
		},
			field{label: "Email", placeholder: "you@school.org"},
			field{label: "Password", secret: true},
		)

	case session.ScreenStudentRegister:
		return newForm("Register", func(ctx context.Context, ctrl *service.Controller, v []string) error {
			return ctrl.Register(ctx, models.RegisterRequest{
				FirstName: v[0],
				LastName:  v[1],
				Email:     v[2],
				Password:  v[3],
				LoginCode: v[registerCodeField],
			})
		},
			field{label: "First name"},
			field{label: "Last name"},
			field{label: "Email", placeholder: "you@school.org"},
			field{label: "Password", placeholder: "at least 6 characters", secret: true},
			field{label: "Class code (ctrl+k to check, blank clears)", placeholder: "optional"},
		)

	case session.ScreenSlideCreator:
		return newForm("Slide creator", submitWord,
			field{label: "Word id (ctrl+k to load)", placeholder: "blank creates a new word"},
			field{label: "Root", placeholder: "bio"},
			field{label: "Type", placeholder: "prefix, root or suffix"},
			field{label: "Origin", placeholder: "Greek or Latin"},
			field{label: "Meaning", placeholder: "life"},
			field{label: "Definition"},
			field{label: "Examples", placeholder: "biology; biography"},
			field{label: "Difficulty", placeholder: "beginner, intermediate or advanced"},
			field{label: "Points", placeholder: "10"},
		)

	case session.ScreenStudySetCreator:
		return newForm("Study set creator", func(ctx context.Context, ctrl *service.Controller, v []string) error {
			return ctrl.CreateStudySet(ctx, models.StudySetInput{
				Name:        v[0],
				Description: v[1],
				WordIDs:     splitList(v[2], ","),
			})
		},
			field{label: "Name"},
			field{label: "Description"},
			field{label: "Word ids", placeholder: "w1, w2, w3"},
		)
	}

	return nil
}

func submitWord(ctx context.Context, ctrl *service.Controller, v []string) error {
	points, err := strconv.Atoi(v[8])
	if err != nil {
		return inputError("Points must be a number")
	}

	in := models.WordInput{
		Root:       v[1],
		Type:       models.WordType(strings.ToLower(v[2])),
		Origin:     models.ParseOrigin(v[3]),
		Meaning:    v[4],
		Definition: v[5],
		Examples:   splitList(v[6], ";"),
		Difficulty: models.Difficulty(strings.ToLower(v[7])),
		Points:     points,
	}

	if v[0] == "" {
		return ctrl.CreateWord(ctx, in)
	}
	return ctrl.UpdateWord(ctx, v[0], in)
}

// fillWord loads the word with id into the slide creator fields for editing.
func fillWord(f *form, words []models.WordCard, id string) bool {
	for _, w := range words {
		if w.ID != id {
			continue
		}
		for i, v := range []string{
			w.ID, w.Root, string(w.Type), string(w.Origin), w.Meaning, w.Definition,
			strings.Join(w.Examples, "; "), string(w.Difficulty), strconv.Itoa(w.Points),
		} {
			f.setValue(i, v)
		}
		return true
	}
	return false
}

func deleteWordForm() *form {
	return newForm("Delete word", func(ctx context.Context, ctrl *service.Controller, v []string) error {
		if v[0] == "" {
			return inputError("Enter a word id")
		}
		return ctrl.DeleteWord(ctx, v[0])
	}, field{label: "Word id"})
}

func loginCodeForm() *form {
	return newForm("New login code", func(ctx context.Context, ctrl *service.Controller, v []string) error {
		maxUses, err := strconv.Atoi(v[4])
		if err != nil {
			return inputError("Max uses must be a number")
		}
		days, err := strconv.Atoi(v[5])
		if err != nil {
			return inputError("Days valid must be a number")
		}
		return ctrl.CreateLoginCode(ctx, models.LoginCodeInput{
			ClassName:     v[0],
			BlockNumber:   v[1],
			School:        v[2],
			Grade:         v[3],
			MaxUses:       maxUses,
			ExpiresInDays: days,
		})
	},
		field{label: "Class", placeholder: "English 9"},
		field{label: "Block", placeholder: "3"},
		field{label: "School"},
		field{label: "Grade", placeholder: "9"},
		field{label: "Max uses", placeholder: "30"},
		field{label: "Days valid", placeholder: "14"},
	)
}

func adminStudents(s session.State) []models.User {
	return models.Students(s.Users)
}
