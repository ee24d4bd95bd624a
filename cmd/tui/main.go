package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/paygrow/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/paygrow/internal/app"
	"github.com/MrJamesThe3rd/paygrow/internal/config"
	"github.com/MrJamesThe3rd/paygrow/internal/metrics"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

type model struct {
	sessions *session.Service
	sess     *session.Session

	currentView  View
	notification string

	loginView    view.LoginModel
	payView      view.PayModel
	withdrawView view.WithdrawModel
	historyView  view.HistoryModel
	savingsView  view.SavingsModel
	insightsView view.InsightsModel
}

type View int

const (
	ViewLogin    View = 0
	ViewMenu     View = 1
	ViewPay      View = 2
	ViewWithdraw View = 3
	ViewHistory  View = 4
	ViewSavings  View = 5
	ViewInsights View = 6
)

func initialModel(sessions *session.Service) model {
	return model{
		sessions:    sessions,
		currentView: ViewLogin,
		loginView:   view.NewLoginModel(sessions),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "l":
				m.sessions.Logout(m.sess.Snapshot().Account.Phone)
				m.sess = nil
				m.notification = ""
				m.currentView = ViewLogin
				m.loginView = view.NewLoginModel(m.sessions)

				return m, m.loginView.Init()
			case "1":
				m.currentView = ViewPay
				m.payView = view.NewPayModel(m.sess)

				return m, m.payView.Init()
			case "2":
				m.currentView = ViewWithdraw
				m.withdrawView = view.NewWithdrawModel(m.sess)

				return m, m.withdrawView.Init()
			case "3":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.sess)

				return m, m.historyView.Init()
			case "4":
				m.currentView = ViewSavings
				m.savingsView = view.NewSavingsModel(m.sess)

				return m, m.savingsView.Init()
			case "5":
				m.currentView = ViewInsights
				m.insightsView = view.NewInsightsModel(m.sess)

				return m, m.insightsView.Init()
			}
		}
	case view.LoggedInMsg:
		m.sess = msg.Session
		m.currentView = ViewMenu

		return m, nil
	case view.DoneMsg:
		m.notification = msg.Notification
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewPay:
		var newModel tea.Model
		newModel, cmd = m.payView.Update(msg)
		m.payView = newModel.(view.PayModel)
	case ViewWithdraw:
		var newModel tea.Model
		newModel, cmd = m.withdrawView.Update(msg)
		m.withdrawView = newModel.(view.WithdrawModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewSavings:
		var newModel tea.Model
		newModel, cmd = m.savingsView.Update(msg)
		m.savingsView = newModel.(view.SavingsModel)
	case ViewInsights:
		var newModel tea.Model
		newModel, cmd = m.insightsView.Update(msg)
		m.insightsView = newModel.(view.InsightsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		return view.Menu(view.Dashboard(m.sess, m.notification),
			"1. Pay\n"+
				"2. Withdraw Savings\n"+
				"3. Transaction History\n"+
				"4. Savings Chart\n"+
				"5. Insights\n\n"+
				"l. Logout\n"+
				"q. Quit",
		)
	case ViewPay:
		return m.payView.View()
	case ViewWithdraw:
		return m.withdrawView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewSavings:
		return m.savingsView.View()
	case ViewInsights:
		return m.insightsView.View()
	}

	return "Unknown View"
}

func main() {
	if err := run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	// The terminal belongs to the UI; logs go to a file.
	logFile, err := tea.LogToFile("paygrow-tui.log", "")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := context.Background()

	gateway, closeGateway, err := app.OpenGateway(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer closeGateway()

	insights, err := app.NewInsights(ctx, cfg)
	if err != nil {
		return fmt.Errorf("creating insight provider: %w", err)
	}

	sessions, err := app.NewSessions(cfg, gateway, insights, metrics.New())
	if err != nil {
		return fmt.Errorf("creating session service: %w", err)
	}

	_, err = tea.NewProgram(initialModel(sessions)).Run()

	return err
}
