package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const dbTimeout = 5 * time.Second

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// DoneMsg returns to the menu with a notification to show there.
type DoneMsg struct {
	Notification string
}

// FormatDate formats a time.Time into YYYY-MM-DD in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for storage and insight calls.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	boxStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func frame(title, body, help string) string {
	out := titleStyle.Render(title) + "\n\n" + body
	if help != "" {
		out += "\n\n" + faintStyle.Render(help)
	}

	return lipgloss.NewStyle().Padding(1).Render(out)
}
