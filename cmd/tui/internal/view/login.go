package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/paygrow/internal/auth"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

// LoggedInMsg carries the session of a phone that completed sign-in.
type LoggedInMsg struct {
	Session *session.Session
}

type loginFailedMsg struct {
	err error
}

type loginMode string

const (
	loginRestore loginMode = "restore"
	loginFresh   loginMode = "fresh"
)

// loginFields is shared by copies of the model so form bindings stay valid.
type loginFields struct {
	phone string
	otp   string
	name  string
	bank  string
	mode  loginMode
}

type LoginModel struct {
	CommonModel
	sessions *session.Service

	fields *loginFields
	form   *huh.Form
	busy   bool
	status string
}

func NewLoginModel(sessions *session.Service) LoginModel {
	m := LoginModel{sessions: sessions, fields: &loginFields{mode: loginRestore}}
	m.form = m.newForm()

	return m
}

func (m LoginModel) newForm() *huh.Form {
	f := m.fields

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("phone").
				Title("Phone number").
				Prompt("+91 ").
				Value(&f.phone).
				Validate(func(s string) error {
					return friendly(auth.RequestOTP(auth.OTPRequest{Phone: s}))
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("otp").
				Title("Enter OTP").
				DescriptionFunc(func() string { return "OTP sent to +91 " + f.phone + "." }, &f.phone).
				Value(&f.otp).
				Validate(func(s string) error {
					if len(s) != 6 {
						return errors.New(auth.MsgInvalidOTP)
					}

					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name (optional)").
				Value(&f.name),
			huh.NewInput().
				Key("bank").
				Title("Bank account number").
				Value(&f.bank).
				Validate(func(s string) error {
					if len(s) < 4 {
						return errors.New(auth.MsgInvalidBankAccount)
					}

					return nil
				}),
			huh.NewSelect[loginMode]().
				Key("mode").
				Title("Account").
				Options(
					huh.NewOption("Restore my saved account", loginRestore),
					huh.NewOption("Start fresh", loginFresh),
				).
				Value(&f.mode),
		),
	).WithWidth(50).WithShowHelp(false)
}

func friendly(err error) error {
	var verr *auth.ValidationError
	if errors.As(err, &verr) {
		return errors.New(verr.Message)
	}

	return err
}

func (m LoginModel) Title() string { return "Sign in" }

func (m LoginModel) ShortHelp() string {
	return "Enter: next | Ctrl+C: quit"
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(loginFailedMsg); ok {
		m.busy = false
		m.status = fmt.Sprintf("Error: %v", msg.err)
		m.form = m.newForm()

		return m, m.form.Init()
	}

	if m.busy {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.busy = true

	return m, m.loginCmd()
}

func (m LoginModel) loginCmd() tea.Cmd {
	f := *m.fields
	sessions := m.sessions

	return func() tea.Msg {
		err := auth.VerifyOTP(auth.VerifyRequest{Phone: f.phone, OTP: f.otp, Name: f.name, BankAccount: f.bank})
		if err != nil {
			return loginFailedMsg{err: friendly(err)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if f.mode == loginRestore {
			sess, err := sessions.Restore(ctx, f.phone)
			if err == nil {
				return LoggedInMsg{Session: sess}
			}

			if !errors.Is(err, session.ErrNotFound) {
				return loginFailedMsg{err: err}
			}
		}

		sess, err := sessions.Signup(ctx, session.SignupParams{Phone: f.phone, Name: f.name, BankAccountRef: f.bank})
		if err != nil {
			return loginFailedMsg{err: err}
		}

		return LoggedInMsg{Session: sess}
	}
}

func (m LoginModel) View() string {
	body := m.form.View()
	if m.busy {
		body = "Signing in..."
	}

	if m.status != "" {
		body = errorStyle.Render(m.status) + "\n\n" + body
	}

	return frame("Pay & Grow", body, m.ShortHelp())
}
