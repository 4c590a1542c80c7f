package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePortfolioReturnsDeterministic(t *testing.T) {
	first := GeneratePortfolioReturns("user_abc", 100000, 365)
	second := GeneratePortfolioReturns("user_abc", 100000, 365)
	require.Len(t, first, 365)
	require.Len(t, second, 365)
	// The same user always sees the same simulated history
	for i := range first {
		assert.Equal(t, first[i].ValueCents, second[i].ValueCents)
	}
}

func TestGeneratePortfolioReturnsVariesByUser(t *testing.T) {
	a := GeneratePortfolioReturns("user_abc", 100000, 30)
	b := GeneratePortfolioReturns("user_xyz", 100000, 30)
	// Different users get different walks
	same := true
	for i := range a {
		if a[i].ValueCents != b[i].ValueCents {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestGetPortfolioSummary(t *testing.T) {
	summary := GetPortfolioSummary("user_abc", 100000, 110000)
	assert.Equal(t, int64(110000), summary.CurrentValueCents)
	assert.Equal(t, int64(10000), summary.TotalReturnCents)
	assert.InDelta(t, 10.0, summary.TotalReturnPercent, 0.001)

	// Today's simulated return is stable within a day
	again := GetPortfolioSummary("user_abc", 100000, 110000)
	assert.Equal(t, summary.TodayReturnCents, again.TodayReturnCents)
}

func TestGetPortfolioSummaryZeroBaseline(t *testing.T) {
	// A zero baseline must not divide by zero
	summary := GetPortfolioSummary("user_abc", 0, 0)
	assert.Equal(t, 0.0, summary.TotalReturnPercent)
	assert.Equal(t, int64(0), summary.TotalReturnCents)
}
