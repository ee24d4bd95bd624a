// Package roundup computes the savings diverted from a payment by rounding
// it up to the next multiple of ₹10.
package roundup

// Step is the rounding granularity in paise (₹10).
const Step int64 = 1000

const (
	MinMultiplier = 1
	MaxMultiplier = 3
)

// Result is the outcome of rounding up a single payment. All values are paise.
type Result struct {
	Base           int64 // rounding gap before the multiplier, in [0, Step)
	Savings        int64
	TotalDeduction int64
}

// Compute rounds amount up to the next multiple of Step and scales the gap
// by multiplier. Inputs are not validated; amount is expected to be positive
// and multiplier at least 1.
func Compute(amount int64, multiplier int) Result {
	base := ceilToStep(amount) - amount
	if base < 0 {
		base = 0
	}

	savings := base * int64(multiplier)

	return Result{
		Base:           base,
		Savings:        savings,
		TotalDeduction: amount + savings,
	}
}

func ceilToStep(amount int64) int64 {
	if amount <= 0 {
		return 0
	}

	return ((amount + Step - 1) / Step) * Step
}

// ValidMultiplier reports whether m is one of the selectable multipliers.
func ValidMultiplier(m int) bool {
	return m >= MinMultiplier && m <= MaxMultiplier
}

// MultiplierAvailable reports whether boosted multipliers are offered for
// the given balance.
func MultiplierAvailable(balance, threshold int64) bool {
	return balance > threshold
}

// EffectiveMultiplier returns the multiplier actually applied: the requested
// one when boosting is available, 1 otherwise.
func EffectiveMultiplier(requested int, balance, threshold int64) int {
	if !MultiplierAvailable(balance, threshold) {
		return MinMultiplier
	}

	return requested
}
