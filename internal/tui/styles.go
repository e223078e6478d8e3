package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2).
			Width(56)

	rootStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A49FA5"))
	selectedRow  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)
