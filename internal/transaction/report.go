package transaction

import "time"

// DefaultWindowDays is the length of the savings report window.
const DefaultWindowDays = 7

// DaySavings is the round-up total of one calendar day.
type DaySavings struct {
	Date    time.Time // Local midnight starting the day
	Savings int64
}

// CumulativeSavings is a day of the report window with its running total.
type CumulativeSavings struct {
	Date    time.Time
	Savings int64
	Total   int64
}

// DailySavings sums payment round-ups per calendar day for the days-long
// window ending on ref's day, oldest first. Day boundaries are local to
// ref's location.
func (l Ledger) DailySavings(ref time.Time, days int) []DaySavings {
	if days <= 0 {
		days = DefaultWindowDays
	}

	loc := ref.Location()
	y, m, d := ref.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	out := make([]DaySavings, days)
	for i := range out {
		out[i].Date = today.AddDate(0, 0, i-(days-1))
	}

	for _, tx := range l.entries {
		if tx.Kind != KindPayment || tx.RoundedAmount == 0 {
			continue
		}

		at := tx.Date.In(loc)

		for i := range out {
			start := out[i].Date
			end := start.AddDate(0, 0, 1)

			if !at.Before(start) && at.Before(end) {
				out[i].Savings += tx.RoundedAmount
				break
			}
		}
	}

	return out
}

// Cumulative returns the running prefix sum of daily, oldest to newest.
// The last Total equals the sum of all daily savings.
func Cumulative(daily []DaySavings) []CumulativeSavings {
	out := make([]CumulativeSavings, len(daily))

	var total int64

	for i, day := range daily {
		total += day.Savings
		out[i] = CumulativeSavings{Date: day.Date, Savings: day.Savings, Total: total}
	}

	return out
}

// RecentVendors returns the distinct vendors of kind records, most recent
// first, truncated to limit. A non-positive limit returns all of them.
func (l Ledger) RecentVendors(limit int, kind Kind) []string {
	seen := make(map[string]struct{})

	var vendors []string

	for _, tx := range l.entries {
		if tx.Kind != kind {
			continue
		}

		if _, ok := seen[tx.Vendor]; ok {
			continue
		}

		seen[tx.Vendor] = struct{}{}
		vendors = append(vendors, tx.Vendor)

		if limit > 0 && len(vendors) == limit {
			break
		}
	}

	return vendors
}
