package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletCacheKey(t *testing.T) {
	assert.Equal(t, "wallet:user:abc123", WalletCacheKey("abc123"))
}

func TestRoundupHistoryCacheKeyChangesWithVersion(t *testing.T) {
	// Same page and size produce distinct keys across versions, so a version
	// bump invalidates every cached page at once
	v0 := RoundupHistoryCacheKey("abc123", 0, 1, 20)
	v1 := RoundupHistoryCacheKey("abc123", 1, 1, 20)
	assert.Equal(t, "roundups:user:abc123:v:0:page:1:size:20", v0)
	assert.NotEqual(t, v0, v1)

	// Page and size still distinguish keys within one version
	assert.NotEqual(t, v0, RoundupHistoryCacheKey("abc123", 0, 2, 20))
	assert.NotEqual(t, v0, RoundupHistoryCacheKey("abc123", 0, 1, 50))
}
