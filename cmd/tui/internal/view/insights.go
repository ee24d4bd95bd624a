package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/paygrow/internal/insight"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

type investmentsMsg struct {
	items []insight.InvestmentSuggestion
	err   error
}

type rewardsMsg struct {
	items []insight.RewardSuggestion
	err   error
}

// InsightsModel lists investment ideas and reward offers.
type InsightsModel struct {
	CommonModel
	sess *session.Session

	investments    string
	rewards        string
	loadingInvest  bool
	loadingRewards bool
}

func NewInsightsModel(sess *session.Session) InsightsModel {
	return InsightsModel{sess: sess, loadingInvest: true, loadingRewards: true}
}

func (m InsightsModel) Title() string { return "Insights" }

func (m InsightsModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m InsightsModel) Init() tea.Cmd {
	sess := m.sess

	return tea.Batch(
		func() tea.Msg {
			ctx, cancel := DbCtx()
			defer cancel()

			items, err := sess.Investments(ctx)

			return investmentsMsg{items: items, err: err}
		},
		func() tea.Msg {
			ctx, cancel := DbCtx()
			defer cancel()

			items, err := sess.Rewards(ctx)

			return rewardsMsg{items: items, err: err}
		},
	)
}

func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case investmentsMsg:
		m.loadingInvest = false
		m.investments = renderInvestments(msg.items, msg.err)
	case rewardsMsg:
		m.loadingRewards = false
		m.rewards = renderRewards(msg.items, msg.err)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loadingInvest, m.loadingRewards = true, true
			return m, m.Init()
		}
	}

	return m, nil
}

func renderInvestments(items []insight.InvestmentSuggestion, err error) string {
	if err != nil {
		return insight.MsgInvestmentsUnavailable
	}

	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s [%s, %s risk]\n  %s\n", titleStyle.Render(it.Name), it.Type, it.RiskLevel, it.Description)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderRewards(items []insight.RewardSuggestion, err error) string {
	if err != nil {
		return insight.MsgRewardsUnavailable
	}

	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s: %s\n  %s\n", titleStyle.Render(it.Vendor), it.Offer, it.Details)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m InsightsModel) View() string {
	investments, rewards := m.investments, m.rewards
	if m.loadingInvest {
		investments = "Loading suggestions..."
	}

	if m.loadingRewards {
		rewards = "Loading offers..."
	}

	body := "Investment ideas\n" + boxStyle.Render(investments) +
		"\n\nRewards for you\n" + boxStyle.Render(rewards)

	return frame(m.Title(), body, m.ShortHelp())
}
