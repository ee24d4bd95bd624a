package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

const (
	msgInvalidVendor = "Please enter a recipient or vendor."
	msgInvalidAmount = "Please enter a valid amount."
)

type payFields struct {
	vendor     string
	amount     string
	multiplier int
	confirm    bool
}

// opFailedMsg reports an error from a payment or withdrawal.
type opFailedMsg struct {
	err error
}

type PayModel struct {
	CommonModel
	sess *session.Session

	fields *payFields
	form   *huh.Form
	busy   bool
	status string
}

func NewPayModel(sess *session.Session) PayModel {
	m := PayModel{sess: sess, fields: &payFields{multiplier: 1, confirm: true}}
	m.form = m.newForm()

	return m
}

func (m PayModel) newForm() *huh.Form {
	f := m.fields

	fields := []huh.Field{
		huh.NewInput().
			Key("vendor").
			Title("Pay to").
			Placeholder("Coffee Shop").
			Value(&f.vendor).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New(msgInvalidVendor)
				}

				return nil
			}),
		huh.NewInput().
			Key("amount").
			Title("Amount (₹)").
			Placeholder("0.00").
			Value(&f.amount).
			Validate(func(s string) error {
				if v, err := money.Parse(s); err != nil || v <= 0 {
					return errors.New(msgInvalidAmount)
				}

				return nil
			}),
	}

	if m.sess.MultiplierAvailable() {
		fields = append(fields, huh.NewSelect[int]().
			Key("multiplier").
			Title("Round-up multiplier").
			Options(
				huh.NewOption("1x", 1),
				huh.NewOption("2x", 2),
				huh.NewOption("3x", 3),
			).
			Value(&f.multiplier))
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Confirm payment").
				DescriptionFunc(m.quote, []any{&f.vendor, &f.amount, &f.multiplier}).
				Affirmative("Pay").
				Negative("Cancel").
				Value(&f.confirm),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m PayModel) quote() string {
	f := m.fields

	amount, err := money.Parse(f.amount)
	if err != nil {
		return msgInvalidAmount
	}

	q, err := m.sess.Quote(amount, f.multiplier)
	if err != nil {
		return err.Error()
	}

	out := fmt.Sprintf("%s to %s\nSavings %s (%dx)\nTotal %s",
		money.Format(amount), strings.TrimSpace(f.vendor),
		money.Format(q.RoundUp.Savings), q.Multiplier,
		money.Format(q.RoundUp.TotalDeduction))
	if !q.Affordable {
		out += "\nInsufficient funds."
	}

	return out
}

func (m PayModel) Title() string { return "Pay" }

func (m PayModel) ShortHelp() string {
	return "Enter: next | Esc: back"
}

func (m PayModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m PayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opFailedMsg:
		m.busy = false
		m.status = fmt.Sprintf("Error: %v", msg.err)
		m.fields.confirm = true
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
		if !m.fields.confirm {
			return m, Back
		}

		m.busy = true

		return m, m.payCmd()
	}

	return m, cmd
}

func (m PayModel) payCmd() tea.Cmd {
	f := *m.fields
	sess := m.sess

	return func() tea.Msg {
		amount, err := money.Parse(f.amount)
		if err != nil {
			return opFailedMsg{err: errors.New(msgInvalidAmount)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		res, err := sess.Pay(ctx, session.PaymentRequest{
			Vendor:     strings.TrimSpace(f.vendor),
			Amount:     amount,
			Multiplier: f.multiplier,
		})
		if err != nil {
			return opFailedMsg{err: err}
		}

		note := fmt.Sprintf("Paid %s to %s.", money.Format(res.Transaction.Amount), res.Transaction.Vendor)
		if res.Notification != "" {
			note += " " + res.Notification
		}

		return DoneMsg{Notification: note}
	}
}

func (m PayModel) View() string {
	body := m.form.View()
	if m.busy {
		body = "Processing payment..."
	}

	if m.status != "" {
		body = errorStyle.Render(m.status) + "\n\n" + body
	}

	return frame("Make a payment", body, m.ShortHelp())
}
