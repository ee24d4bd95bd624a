package insight

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/MrJamesThe3rd/paygrow/internal/money"
)

const (
	consistentDays  = 5
	strongWeekTotal = 2500
	bigSavings      = 500
)

// Local implements Analyst with fixed rules and templates.
type Local struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLocal returns a Local analyst. A nil rnd uses a randomly seeded source.
func NewLocal(rnd *rand.Rand) *Local {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Local{rnd: rnd}
}

func (l *Local) AnalyzeSavings(_ context.Context, days []DaySavings) (string, error) {
	var total int64

	active := 0
	for _, d := range days {
		total += d.Savings
		if d.Savings > 0 {
			active++
		}
	}

	switch {
	case total == 0:
		return "You haven't saved anything in the last week. Make a few small payments to see how your " +
			"savings can grow automatically!", nil
	case active >= consistentDays:
		return fmt.Sprintf("Excellent consistency! You've saved on %d of the last %d days. This regular habit "+
			"is the best way to build your savings pot. Keep up the fantastic work!", active, len(days)), nil
	case total > strongWeekTotal:
		return "Great job! You've had a strong week of savings. Even a few transactions can add up to a " +
			"significant amount. Imagine what you could save with more consistency!", nil
	default:
		return fmt.Sprintf("You're off to a good start with savings on %d day(s) this week! Every little bit "+
			"counts. Try to make it a daily habit to see your savings grow even faster.", active), nil
	}
}

func (l *Local) InsightForSavings(_ context.Context, amount int64) (string, error) {
	s := money.Format(amount)
	templates := []string{
		fmt.Sprintf("Great job! You've tucked away %s.", s),
		fmt.Sprintf("Consistency is key. Another %s saved!", s),
		fmt.Sprintf("Your future self will thank you for saving %s.", s),
		fmt.Sprintf("Every drop counts! You've just added %s to your savings.", s),
		fmt.Sprintf("That's a smart move! %s is now working for you.", s),
		fmt.Sprintf("Nice one! You just saved %s without even trying.", s),
	}

	if amount > bigSavings {
		templates = append(templates, fmt.Sprintf("That's a big one! %s is a solid step towards your goals.", s))
	}

	l.mu.Lock()
	i := l.rnd.IntN(len(templates))
	l.mu.Unlock()

	return templates[i], nil
}

// FallbackInsight is shown when InsightForSavings fails.
func FallbackInsight(amount int64) string {
	return fmt.Sprintf("%s added to your savings pot.", money.Format(amount))
}
