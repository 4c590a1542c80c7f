package service

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
	"time"
)

// Daily return parameters for the simulated portfolio (mean ~0.03%, std ~1.5%).
const (
	meanDailyReturn = 0.0003
	stdDailyReturn  = 0.015
)

// PortfolioPoint is one day of simulated portfolio value.
type PortfolioPoint struct {
	Date       time.Time `json:"date"`        // Day of the sample
	ValueCents int64     `json:"value_cents"` // Simulated portfolio value in cents
}

// PortfolioSummary holds displayed (non-authoritative) portfolio returns.
type PortfolioSummary struct {
	CurrentValueCents  int64   `json:"current_value_cents"`  // Current investing balance
	TotalReturnCents   int64   `json:"total_return_cents"`   // All-time return in cents
	TotalReturnPercent float64 `json:"total_return_percent"` // All-time return percent
	TodayReturnCents   int64   `json:"today_return_cents"`   // Simulated return for today in cents
	TodayReturnPercent float64 `json:"today_return_percent"` // Simulated return for today in percent
}

// seedFor derives a deterministic RNG seed from a string key.
func seedFor(key string) int64 {
	sum := md5.Sum([]byte(key))
	return int64(binary.BigEndian.Uint64(sum[:8]) % (1 << 32))
}

// GeneratePortfolioReturns simulates daily portfolio values over the given
// number of days using a random walk seeded from the user's public ID, so the
// same user always sees the same history. Cosmetic only, no money moves.
func GeneratePortfolioReturns(userPublicID string, initialInvestmentCents int64, days int) []PortfolioPoint {
	rng := rand.New(rand.NewSource(seedFor(userPublicID))) // Seeded for per-user determinism
	points := make([]PortfolioPoint, 0, days)
	currentValueCents := initialInvestmentCents
	baseDate := time.Now().AddDate(0, 0, -days)
	for day := 0; day < days; day++ {
		// Gaussian daily return
		dailyReturn := rng.NormFloat64()*stdDailyReturn + meanDailyReturn
		currentValueCents = int64(float64(currentValueCents) * (1 + dailyReturn))
		points = append(points, PortfolioPoint{
			Date:       baseDate.AddDate(0, 0, day), // Day of the sample
			ValueCents: currentValueCents,           // Simulated value
		})
	}
	return points
}

// GetPortfolioSummary computes displayed returns for the user's investing
// balance. Today's return is seeded from the public ID plus the date so it is
// stable for the day but changes tomorrow.
func GetPortfolioSummary(userPublicID string, initialInvestmentCents, currentInvestmentCents int64) PortfolioSummary {
	// All-time return against the baseline
	totalReturnCents := currentInvestmentCents - initialInvestmentCents
	totalReturnPercent := 0.0
	if initialInvestmentCents > 0 {
		totalReturnPercent = float64(totalReturnCents) / float64(initialInvestmentCents) * 100
	}
	// Today's simulated return
	today := time.Now().Format("2006-01-02")
	rng := rand.New(rand.NewSource(seedFor(userPublicID + today)))
	todayReturn := rng.NormFloat64()*stdDailyReturn + meanDailyReturn
	return PortfolioSummary{
		CurrentValueCents:  currentInvestmentCents,                            // Current investing balance
		TotalReturnCents:   totalReturnCents,                                  // All-time return
		TotalReturnPercent: totalReturnPercent,                                // All-time return percent
		TodayReturnCents:   int64(float64(currentInvestmentCents) * todayReturn), // Today's return in cents
		TodayReturnPercent: todayReturn * 100,                                 // Today's return percent
	}
}
