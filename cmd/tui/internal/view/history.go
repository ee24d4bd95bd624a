package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
	"github.com/MrJamesThe3rd/paygrow/internal/transaction"
)

var kindFilters = []transaction.Kind{"", transaction.KindPayment, transaction.KindWithdrawal}

type HistoryModel struct {
	CommonModel
	sess *session.Session

	table     table.Model
	kindIdx   int
	txs       []transaction.Transaction
}

func NewHistoryModel(sess *session.Session) HistoryModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 11},
		{Title: "Vendor", Width: 24},
		{Title: "Amount", Width: 14},
		{Title: "Savings", Width: 12},
		{Title: "Mult", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := HistoryModel{sess: sess, table: t}
	m.refreshTable()

	return m
}

func (m HistoryModel) Title() string { return "Transaction history" }

func (m HistoryModel) ShortHelp() string {
	return "Esc: back | k: type filter | r: refresh"
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.refreshTable()
			return m, nil
		case "k":
			m.kindIdx = (m.kindIdx + 1) % len(kindFilters)
			m.refreshTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *HistoryModel) refreshTable() {
	all := m.sess.Snapshot().Ledger.Entries()
	kind := kindFilters[m.kindIdx]

	m.txs = m.txs[:0]
	rows := make([]table.Row, 0, len(all))

	for _, tx := range all {
		if kind != "" && tx.Kind != kind {
			continue
		}

		m.txs = append(m.txs, tx)

		amount := money.Format(tx.Amount)
		savings, mult := "", ""

		switch tx.Kind {
		case transaction.KindPayment:
			amount = "-" + amount
			savings = money.Format(tx.RoundedAmount)
			mult = fmt.Sprintf("%dx", tx.Multiplier)
		case transaction.KindWithdrawal:
			amount = "+" + amount
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Kind),
			tx.Vendor,
			amount,
			savings,
			mult,
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m HistoryModel) View() string {
	label := "All"
	if k := kindFilters[m.kindIdx]; k != "" {
		label = string(k)
	}

	header := fmt.Sprintf("Filter: [k] Type: %s | %d record(s)", titleStyle.Render(label), len(m.txs))

	body := "No transactions yet."
	if len(m.txs) > 0 {
		body = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		body,
	)

	return frame(m.Title(), content, m.ShortHelp())
}
