package service

import (
	"testing"

	"piggie_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDemoTransactions(t *testing.T) {
	db := setupDB(t)
	transactions, err := GenerateDemoTransactions(db, "testuser01", 20)
	require.NoError(t, err)
	require.Len(t, transactions, 20)

	seen := map[string]bool{}
	for _, txn := range transactions {
		// Demo amounts stay between $1 and $50
		assert.GreaterOrEqual(t, txn.AmountCents, int64(100))
		assert.LessOrEqual(t, txn.AmountCents, int64(5000))
		assert.Equal(t, "local", txn.Source)
		assert.False(t, txn.Pending)
		assert.NotEmpty(t, txn.Merchant)
		// IDs are unique
		assert.False(t, seen[txn.TransactionID])
		seen[txn.TransactionID] = true
	}

	// Transactions are persisted so round-ups can target them
	var count int64
	require.NoError(t, db.Model(&domain.Transaction{}).Where("user_public_id = ?", "testuser01").Count(&count).Error)
	assert.Equal(t, int64(20), count)
}
