package roundup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	// $12.34 rounds up 66 cents
	assert.Equal(t, int64(66), Calculate(1234))
	// $0.01 rounds up 99 cents
	assert.Equal(t, int64(99), Calculate(1))
	// Exact dollar amounts round up by a full dollar
	assert.Equal(t, int64(100), Calculate(100))
	assert.Equal(t, int64(100), Calculate(0))
	assert.Equal(t, int64(100), Calculate(5000))
	// One cent short of a dollar rounds up a single cent
	assert.Equal(t, int64(1), Calculate(199))
}

func TestCalculateRange(t *testing.T) {
	// Every amount yields a round-up in [1, 100]
	for amount := int64(0); amount <= 500; amount++ {
		r := Calculate(amount)
		require.GreaterOrEqual(t, r, int64(1), "amount %d", amount)
		require.LessOrEqual(t, r, int64(100), "amount %d", amount)
		if amount%100 == 0 {
			require.Equal(t, int64(100), r, "amount %d", amount)
		} else {
			require.Equal(t, 100-amount%100, r, "amount %d", amount)
		}
	}
}

func TestSplitScenario(t *testing.T) {
	// roundup=66 with 40/30/30: savings=26, investing=19, goals=21
	savings, investing, goals := Split(66, 40, 30)
	assert.Equal(t, int64(26), savings)
	assert.Equal(t, int64(19), investing)
	assert.Equal(t, int64(21), goals)
	assert.Equal(t, int64(66), savings+investing+goals)
}

func TestSplitRoundingErrorGoesToGoals(t *testing.T) {
	// roundup=1 with 40/30/30: the whole cent lands in goals
	savings, investing, goals := Split(1, 40, 30)
	assert.Equal(t, int64(0), savings)
	assert.Equal(t, int64(0), investing)
	assert.Equal(t, int64(1), goals)
}

func TestSplitOverAllocatedPolicyStaysNonNegative(t *testing.T) {
	// 50.005+50.004 passes validation tolerance but over-allocates on large
	// amounts; the excess is shaved from savings and goals stays at zero
	require.NoError(t, ValidatePercents(50.005, 50.004, 0))
	savings, investing, goals := Split(1000000, 50.005, 50.004)
	assert.GreaterOrEqual(t, savings, int64(0))
	assert.GreaterOrEqual(t, investing, int64(0))
	assert.Equal(t, int64(0), goals)
	assert.Equal(t, int64(1000000), savings+investing+goals)
}

func TestSplitConservation(t *testing.T) {
	policies := [][2]float64{
		{40, 30}, {0, 0}, {100, 0}, {0, 100}, {33.33, 33.33}, {50, 25}, {1, 98},
	}
	// Every round-up and policy splits into non-negative parts summing exactly
	for r := int64(1); r <= 100; r++ {
		for _, p := range policies {
			savings, investing, goals := Split(r, p[0], p[1])
			require.GreaterOrEqual(t, savings, int64(0), "r=%d p=%v", r, p)
			require.GreaterOrEqual(t, investing, int64(0), "r=%d p=%v", r, p)
			require.GreaterOrEqual(t, goals, int64(0), "r=%d p=%v", r, p)
			require.Equal(t, r, savings+investing+goals, "r=%d p=%v", r, p)
		}
	}
}

func TestValidatePercents(t *testing.T) {
	// Exact sum accepted
	assert.NoError(t, ValidatePercents(40, 30, 30))
	// Within tolerance accepted
	assert.NoError(t, ValidatePercents(33.33, 33.33, 33.34))
	// Sum 101 rejected
	assert.ErrorIs(t, ValidatePercents(50, 50, 1), ErrInvalidAllocation)
	// Sum 99 rejected
	assert.ErrorIs(t, ValidatePercents(33, 33, 33), ErrInvalidAllocation)
	// Negative percentages rejected even when the sum is 100
	assert.ErrorIs(t, ValidatePercents(-10, 60, 50), ErrInvalidAllocation)
}
