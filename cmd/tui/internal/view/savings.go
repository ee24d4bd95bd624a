package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

const barWidth = 30

type analysisMsg struct {
	text string
	err  error
}

// SavingsModel shows the cumulative savings of the report window and an
// analysis of the daily totals.
type SavingsModel struct {
	CommonModel
	sess *session.Session

	days     []transaction.CumulativeSavings
	analysis string
	loading  bool
}

func NewSavingsModel(sess *session.Session) SavingsModel {
	return SavingsModel{
		sess:    sess,
		days:    sess.Cumulative(transaction.DefaultWindowDays),
		loading: true,
	}
}

func (m SavingsModel) Title() string { return "Savings" }

func (m SavingsModel) ShortHelp() string {
	return "Esc: back"
}

func (m SavingsModel) Init() tea.Cmd {
	sess := m.sess

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		text, err := sess.SavingsAnalysis(ctx)

		return analysisMsg{text: text, err: err}
	}
}

func (m SavingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisMsg:
		m.loading = false
		m.analysis = msg.text

		if msg.err != nil {
			m.analysis = msg.err.Error()
		}
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, Back
		}
	}

	return m, nil
}

func (m SavingsModel) View() string {
	var top int64
	for _, d := range m.days {
		top = max(top, d.Total)
	}

	var b strings.Builder

	for _, d := range m.days {
		n := 0
		if top > 0 {
			n = int(d.Total * barWidth / top)
		}

		fmt.Fprintf(&b, "%s %-*s %s (+%s)\n",
			d.Date.Format("Mon 02"), barWidth, strings.Repeat("█", n),
			money.Format(d.Total), money.Format(d.Savings))
	}

	analysis := m.analysis
	if m.loading {
		analysis = "Analyzing..."
	}

	body := b.String() + "\n" + boxStyle.Render(analysis)

	return frame("Cumulative savings, last 7 days", body, m.ShortHelp())
}
