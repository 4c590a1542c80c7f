package roundup

import (
	"errors"
	"math"
)

// Default allocation percentages used when a user has never set their own.
const (
	DefaultSavingsPercent   = 40.0 // Default percent of each round-up sent to savings
	DefaultInvestingPercent = 30.0 // Default percent of each round-up sent to investing
	DefaultGoalsPercent     = 30.0 // Default percent of each round-up sent to goals
)

// PercentSumTolerance is how far the three percentages may drift from 100.
const PercentSumTolerance = 0.01

// ErrInvalidAllocation is returned when the three percentages do not sum to 100.
var ErrInvalidAllocation = errors.New("allocation percentages must sum to 100")

// Calculate returns the round-up amount in cents for a purchase amount.
// Amounts on an exact dollar boundary round up by a full dollar, so the
// result is always in [1, 100].
func Calculate(amountCents int64) int64 {
	// If exactly on a dollar, round up by $1.00
	if amountCents%100 == 0 {
		return 100
	}
	// Otherwise, round up to the next dollar
	return 100 - (amountCents % 100)
}

// Split divides a round-up across savings, investing, and goals according to
// the given percentages. Savings and investing are floored; the goals share
// takes the remainder, so the three parts always sum exactly to roundupCents
// and every cent of rounding error accrues to goals. A policy whose savings
// and investing percents sit just above 100 (still inside the validation
// tolerance) can over-allocate on large amounts; the excess is shaved from
// savings so every share stays non-negative.
func Split(roundupCents int64, savingsPercent, investingPercent float64) (savings, investing, goals int64) {
	savings = int64(float64(roundupCents) * savingsPercent / 100)     // Floor of the savings share
	investing = int64(float64(roundupCents) * investingPercent / 100) // Floor of the investing share
	goals = roundupCents - savings - investing                        // Remainder to goals
	// Shave any over-allocation so goals never goes negative
	if goals < 0 {
		savings += goals // Remove the excess from savings
		goals = 0
		if savings < 0 {
			investing += savings // Savings alone could not absorb it
			savings = 0
		}
	}
	return savings, investing, goals
}

// ValidatePercents checks that the three percentages are non-negative and sum
// to 100 within PercentSumTolerance. Violations are rejected, never normalized.
func ValidatePercents(savingsPercent, investingPercent, goalsPercent float64) error {
	if savingsPercent < 0 || investingPercent < 0 || goalsPercent < 0 {
		return ErrInvalidAllocation
	}
	sum := savingsPercent + investingPercent + goalsPercent
	if math.Abs(sum-100) > PercentSumTolerance {
		return ErrInvalidAllocation
	}
	return nil
}
