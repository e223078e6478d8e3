package tui

import (
	"context"
	"strings"

	"github.com/DanRulev/wordweaver/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field struct {
	label       string
	placeholder string
	secret      bool
}

// submitFunc sends the form values, in field order, through the controller.
type submitFunc func(ctx context.Context, ctrl *service.Controller, values []string) error

type form struct {
	title  string
	inputs []textinput.Model
	labels []string
	focus  int
	submit submitFunc
}

func newForm(title string, submit submitFunc, fields ...field) *form {
	f := &form{title: title, submit: submit}
	for i, fd := range fields {
		ti := textinput.New()
		ti.Placeholder = fd.placeholder
		ti.CharLimit = 256
		ti.Width = 40
		if fd.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if i == 0 {
			ti.Focus()
		}
		f.inputs = append(f.inputs, ti)
		f.labels = append(f.labels, fd.label)
	}
	return f
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (f *form) setValue(i int, v string) {
	if i >= 0 && i < len(f.inputs) {
		f.inputs[i].SetValue(v)
	}
}

func (f *form) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// update handles field navigation and typing. Enter and esc are handled by the caller.
func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.move(1)
	case "shift+tab", "up":
		return f.move(-1)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(f.title) + "\n")
	for i, in := range f.inputs {
		label := labelStyle.Render(f.labels[i])
		if i == f.focus {
			label = selectedRow.Render(f.labels[i])
		}
		sb.WriteString(label + "\n" + in.View() + "\n")
	}
	return sb.String()
}

// splitList splits s on sep and drops blank items.
func splitList(s, sep string) []string {
	var out []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
