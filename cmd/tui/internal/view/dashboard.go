package view

import (
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
	"github.com/MrJamesThe3rd/paygrow/internal/session"
)

// Dashboard renders the account summary shown above the menu.
func Dashboard(sess *session.Session, notification string) string {
	acc := sess.Snapshot().Account

	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s (+91 %s)\n", acc.Name, acc.Phone)
	fmt.Fprintf(&b, "Bank account: %s\n\n", acc.BankAccountRef)
	fmt.Fprintf(&b, "Balance:       %s\n", money.Format(acc.Balance))
	fmt.Fprintf(&b, "Savings pot:   %s\n", money.Format(acc.TotalSaved))
	fmt.Fprintf(&b, "Badges:        Bronze %d | Silver %d | Gold %d\n",
		acc.Badges.Bronze, acc.Badges.Silver, acc.Badges.Gold)

	if sess.MultiplierAvailable() {
		b.WriteString("Multipliers:   2x and 3x round-ups available")
	} else {
		b.WriteString(faintStyle.Render("Multipliers:   unlock 2x and 3x with a higher balance"))
	}

	out := boxStyle.Render(b.String())
	if notification != "" {
		out += "\n\n" + noticeStyle.Render(notification)
	}

	return out
}

// Menu renders the dashboard above the menu entries.
func Menu(dashboard, entries string) string {
	return frame("Pay & Grow", dashboard+"\n\n"+entries, "")
}
