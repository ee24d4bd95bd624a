package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

type WithdrawModel struct {
	CommonModel
	sess *session.Session

	amount *string
	form   *huh.Form
	busy   bool
	status string
}

func NewWithdrawModel(sess *session.Session) WithdrawModel {
	m := WithdrawModel{sess: sess, amount: new(string)}
	m.form = m.newForm()

	return m
}

func (m WithdrawModel) newForm() *huh.Form {
	saved := m.sess.Snapshot().Account.TotalSaved

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Withdraw from savings (₹)").
				Description("Available: " + money.Format(saved)).
				Placeholder("0.00").
				Value(m.amount).
				Validate(func(s string) error {
					if v, err := money.Parse(s); err != nil || v <= 0 {
						return errors.New(msgInvalidAmount)
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m WithdrawModel) Title() string { return "Withdraw" }

func (m WithdrawModel) ShortHelp() string {
	return "Enter: withdraw | Esc: back"
}

func (m WithdrawModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m WithdrawModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opFailedMsg:
		m.busy = false
		m.status = fmt.Sprintf("Error: %v", msg.err)
		m.form = m.newForm()

		return m, m.form.Init()
	case tea.KeyMsg:
		if msg.String() == "esc" && !m.busy {
			return m, Back
		}
	}

	if m.busy {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		return m, Back
	case huh.StateCompleted:
		m.busy = true

		return m, m.withdrawCmd()
	}

	return m, cmd
}

func (m WithdrawModel) withdrawCmd() tea.Cmd {
	raw := *m.amount
	sess := m.sess

	return func() tea.Msg {
		amount, err := money.Parse(raw)
		if err != nil {
			return opFailedMsg{err: errors.New(msgInvalidAmount)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		res, err := sess.Withdraw(ctx, amount)
		if err != nil {
			return opFailedMsg{err: err}
		}

		return DoneMsg{Notification: res.Notification}
	}
}

func (m WithdrawModel) View() string {
	body := m.form.View()
	if m.busy {
		body = "Processing withdrawal..."
	}

	if m.status != "" {
		body = errorStyle.Render(m.status) + "\n\n" + body
	}

	return frame("Withdraw savings", body, m.ShortHelp())
}
